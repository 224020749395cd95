package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWriteCmd(a *app) *cobra.Command {
	var (
		name  string
		value uint32
	)

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write a variable to the process image",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.ctl.GetVariableInfo(name)
			if err != nil {
				return fmt.Errorf("variable %s: %w", name, err)
			}

			if err := a.ctl.WriteVariable(v, value); err != nil {
				return fmt.Errorf("write variable %s: %w", name, err)
			}

			a.log.WithField("prefix", "write").
				Infof("written value %d (0x%x) to %s at offset %d", value, value, name, v.Address)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "the variable name")
	cmd.Flags().Uint32VarP(&value, "value", "v", 0, "the variable value")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("value")

	return cmd
}
