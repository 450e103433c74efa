// Serialembed scans for serial ports, opens one at 115200 baud and sends
// text messages to it.
//
// Usage:
//
//	serialembed [command] [flags]
//
// Running without a command starts the terminal ui.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/serialembed/serialembed/internal"
	"github.com/serialembed/serialembed/internal/config"
	"github.com/serialembed/serialembed/internal/logging"
	"github.com/serialembed/serialembed/internal/session"
	"github.com/serialembed/serialembed/internal/transport"
	"github.com/serialembed/serialembed/internal/version"
)

var (
	flagMock     bool
	flagLogLevel string
	flagConfig   string
	flagForce    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "serialembed",
	Short: "Send text messages to a serial port",
	Long: `Scan for serial ports, open one at 115200 baud (8N1) and send
text messages to it from an interactive terminal ui.`,
	Version:      version.Version,
	SilenceUsage: true,
	RunE:         runTui,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&flagMock, "mock", false, "use a simulated serial port instead of hardware")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error); logs go to the configured log file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default is the user config dir)")

	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func runTui(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	level := flagLogLevel
	if level == "" {
		level = cfg.LogLevel
	}
	if err := logging.Initialize(level, cfg.LogFile); err != nil {
		return err
	}
	defer logging.Sync()

	logging.Info("Starting serialembed", zap.String("version", version.Full()), zap.Bool("mock", flagMock))

	sess := session.New(transport.New(flagMock),
		session.WithConsoleLimit(cfg.ConsoleLimit),
		session.WithTimestamps(cfg.ShowTimestamp),
	)
	defer sess.Close()

	return internal.RunTui(sess, cfg)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available serial ports",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagMock {
			for _, name := range transport.MockPorts {
				fmt.Fprintf(cmd.OutOrStdout(), "Found port: %s\n", name)
			}
			return nil
		}

		ports, err := transport.NewSerial().Details()
		if err != nil {
			return err
		}
		printPorts(cmd, ports)
		return nil
	},
}

func printPorts(cmd *cobra.Command, ports []transport.PortDetails) {
	out := cmd.OutOrStdout()
	if len(ports) == 0 {
		fmt.Fprintln(out, "No serial ports found!")
		return
	}

	for _, port := range ports {
		fmt.Fprintf(out, "Found port: %s\n", port.Name)
		if port.IsUSB {
			fmt.Fprintf(out, "   USB ID     %s:%s\n", port.VID, port.PID)
			fmt.Fprintf(out, "   USB serial %s\n", port.SerialNumber)
			if port.Product != "" {
				fmt.Fprintf(out, "   Product    %s\n", port.Product)
			}
		}
	}
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !flagForce {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}

		if err := config.Save(path, config.Default()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func configPath() (string, error) {
	if flagConfig != "" {
		return flagConfig, nil
	}
	return config.GetConfigPath()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "serialembed %s\n", version.Full())
	},
}
