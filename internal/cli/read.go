package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReadCmd(a *app) *cobra.Command {
	var (
		name   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read a variable from the process image",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}

			v, err := a.ctl.GetVariableInfo(name)
			if err != nil {
				return fmt.Errorf("variable %s: %w", name, err)
			}

			value, err := a.ctl.ReadVariable(v)
			if err != nil {
				return fmt.Errorf("read variable %s: %w", name, err)
			}

			if v.Length == 1 {
				a.log.WithField("prefix", "read").
					Debugf("bit %d at address %d", v.Bit, v.Address)
				fmt.Printf("Bit value: %d\n", value)
				return nil
			}

			a.log.WithField("prefix", "read").
				Debugf("%d bit variable at address %d", v.Length, v.Address)
			fmt.Println(formatValue(value, f))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "the variable name")
	cmd.Flags().StringVarP(&format, "format", "f", "d", "output format: d, h or b")
	cmd.MarkFlagRequired("name")

	return cmd
}
