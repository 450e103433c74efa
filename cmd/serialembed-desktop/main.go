// Command serialembed-desktop runs the serial session in a desktop window.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/serialembed/serialembed/internal/config"
	"github.com/serialembed/serialembed/internal/desktop"
	"github.com/serialembed/serialembed/internal/logging"
	"github.com/serialembed/serialembed/internal/session"
	"github.com/serialembed/serialembed/internal/transport"
	"github.com/serialembed/serialembed/internal/version"
)

func main() {
	mock := flag.Bool("mock", false, "use a simulated serial port instead of hardware")
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	logging.Info("Starting serialembed-desktop", zap.String("version", version.Full()), zap.Bool("mock", *mock))

	sess := session.New(transport.New(*mock),
		session.WithConsoleLimit(cfg.ConsoleLimit),
		session.WithTimestamps(cfg.ShowTimestamp),
	)
	defer sess.Close()

	desktop.Run(sess)
}
