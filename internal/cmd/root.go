package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/patterns/internal/config"
	"github.com/harrison/patterns/internal/logger"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for patterns
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Runnable catalog of classic design patterns",
		Long: `Patterns runs narrated demonstrations of classic object-oriented
design patterns: Adapter, Decorator, Factory Method, Observer, Singleton
and Visitor.

Each demo builds a small toy scenario and prints its mechanics step by step.
Configuration is loaded from .patterns/config.yaml (or $PATTERNS_HOME/config.yaml)
if present. CLI flags override configuration file settings.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: .patterns/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colour output")

	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewDescribeCommand())
	cmd.AddCommand(NewRunCommand())

	return cmd
}

// loadConfig resolves the config file, applies the global flags and validates.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		var err error
		configPath, err = config.DefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var logLevel, color *string
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevel = &v
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		v := config.ColorNever
		color = &v
	}
	cfg.MergeWithFlags(logLevel, color)

	return cfg, nil
}

// newConsole builds the narration console for cmd's output stream.
func newConsole(cmd *cobra.Command, cfg *config.Config) *logger.ConsoleLogger {
	console := logger.NewConsoleLogger(cmd.OutOrStdout(), cfg.LogLevel)
	switch cfg.Color {
	case config.ColorAlways:
		console.SetColor(true)
	case config.ColorNever:
		console.SetColor(false)
	}
	return console
}
