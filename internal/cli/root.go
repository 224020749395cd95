// Package cli implements the pitest command tree.
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/revpi-tools/picontrol/internal/config"
	"github.com/revpi-tools/picontrol/internal/logrusconfig"
	"github.com/revpi-tools/picontrol/picontrol"
)

// Execute runs the pitest command tree.
func Execute() error {
	return newRootCmd().Execute()
}

// app carries the state shared by all commands, set up by the root
// PersistentPreRunE before any RunE fires.
type app struct {
	log *logrus.Entry
	cfg config.Config
	ctl *picontrol.PiControl
}

func newRootCmd() *cobra.Command {
	var (
		configFile  string
		devicePath  string
		logLevel    int
		listDevices bool
		reset       bool
		stop        bool
		resume      bool
		lastMessage bool
	)

	a := &app{}

	cmd := &cobra.Command{
		Use:           "pitest",
		Short:         "Command line tool for the piControl process image",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("loglevel") {
				cfg.LogLevel = logLevel
			}
			if devicePath != "" {
				cfg.Device = devicePath
			}

			a.cfg = cfg
			a.log = logrusconfig.GetLogger(logrus.Level(cfg.LogLevel))
			a.ctl = picontrol.NewAt(cfg.Device)

			return a.ctl.Open()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.ctl != nil {
				a.ctl.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case reset:
				if err := a.ctl.Reset(); err != nil {
					return fmt.Errorf("reset: %w", err)
				}
				a.log.WithField("prefix", "pitest").Info("piControl driver reset")
				return nil
			case listDevices:
				return a.showDeviceList()
			case stop:
				if err := a.ctl.StopIO(true); err != nil {
					return fmt.Errorf("stop io: %w", err)
				}
				a.log.WithField("prefix", "pitest").Info("I/O communication stopped")
				return nil
			case resume:
				if err := a.ctl.StopIO(false); err != nil {
					return fmt.Errorf("resume io: %w", err)
				}
				a.log.WithField("prefix", "pitest").Info("I/O communication resumed")
				return nil
			case lastMessage:
				msg, err := a.ctl.GetLastMessage()
				if err != nil {
					return fmt.Errorf("last message: %w", err)
				}
				fmt.Println(msg)
				return nil
			}

			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultFile, "configuration file")
	cmd.PersistentFlags().StringVarP(&devicePath, "source", "s", "", "override the piControl device path")
	cmd.PersistentFlags().IntVar(&logLevel, "loglevel", config.Default().LogLevel, "loglevel, 0 to 6. Higher values output more information")

	cmd.Flags().BoolVarP(&listDevices, "list", "l", false, "show the device list")
	cmd.Flags().BoolVarP(&reset, "reset", "x", false, "reset the piControl driver")
	cmd.Flags().BoolVar(&stop, "stop", false, "stop the cyclic I/O communication")
	cmd.Flags().BoolVar(&resume, "resume", false, "resume the cyclic I/O communication")
	cmd.Flags().BoolVarP(&lastMessage, "last-message", "m", false, "print the last driver message")

	cmd.AddCommand(newReadCmd(a))
	cmd.AddCommand(newWriteCmd(a))
	cmd.AddCommand(newDumpCmd(a))

	return cmd
}

func (a *app) showDeviceList() error {
	devices, err := a.ctl.GetDeviceInfoList()
	if err != nil {
		return fmt.Errorf("device list: %w", err)
	}

	fmt.Printf("Found %d devices:\n\n", len(devices))

	for _, dev := range devices {
		name := picontrol.ModuleName(uint32(dev.ModuleType))

		fmt.Printf("Address: %d module type: %d (0x%x) %s V%d.%d\n",
			dev.Address, dev.ModuleType, dev.ModuleType, name, dev.SWMajor, dev.SWMinor)

		switch {
		case dev.Active:
			fmt.Println("Module is present")
		case !picontrol.IsModuleConnected(uint32(dev.ModuleType)):
			fmt.Println("Module is NOT present, data is NOT available!!!")
		default:
			fmt.Println("Module is present, but NOT CONFIGURED!!!")
		}

		fmt.Printf("     input offset: %d length: %d\n", dev.InputOffset, dev.InputLength)
		fmt.Printf("    output offset: %d length: %d\n\n", dev.OutputOffset, dev.OutputLength)
	}

	return nil
}
