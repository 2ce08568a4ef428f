// Command lark is a terminal file viewer with vi-style navigation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/larkterm/lark/internal/app"
	"github.com/larkterm/lark/internal/config"
	"github.com/larkterm/lark/internal/renderer/backend"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		logFile     string
		logLevel    string
		writeConfig bool
	)

	root := &cobra.Command{
		Use:     "lark FILE",
		Short:   "A terminal file viewer",
		Long:    "Lark is a read-only terminal file viewer with vi-style navigation,\nline numbers, and lookahead scrolling.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				configPath = p
			}

			if writeConfig {
				if err := config.WriteDefault(configPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("expected a file to view")
			}
			return view(args[0], configPath, logFile, logLevel)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/lark/config.json)")
	root.Flags().StringVar(&logFile, "log-file", "", "write diagnostics to this file")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.Flags().BoolVar(&writeConfig, "write-config", false, "write a starter config file and exit")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lark: %v\n", err)
		return 1
	}
	return 0
}

// view loads everything and runs the viewer. All startup errors are
// reported before the terminal enters raw mode.
func view(path, configPath, logFile, logLevel string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	scriptPath, err := config.DefaultScriptPath()
	if err == nil {
		if err := config.RunInitScript(scriptPath, &cfg); err != nil {
			return err
		}
	}

	logger := app.NullLogger()
	if logFile != "" {
		logger, err = app.NewFileLogger(logFile, app.ParseLevel(logLevel))
		if err != nil {
			return err
		}
		defer logger.Close()
	}

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}

	a, err := app.New(app.Options{
		Path:       path,
		Config:     cfg,
		ConfigPath: configPath,
		Backend:    term,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	return a.Run()
}
