package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/patterns/internal/config"
	"github.com/harrison/patterns/internal/demo"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [pattern]...",
		Short: "Run one or more pattern demos",
		Long: `Run pattern demos in the order given. With no names, or with --all,
every demo runs in catalog order. The first failing demo stops the run.

Configuration is loaded from .patterns/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  patterns run --all
  patterns run visitor --format yaml --indent 4
  patterns run adapter --amount 5000
  patterns run decorator --channels email,slack --message "disk full"
  patterns run factory --os mac --os windows
  patterns run observer --prices 90,150,70 --threshold 120
  patterns run --log-level debug singleton visitor`,
		RunE: runCommand,
	}

	cmd.Flags().Bool("all", false, "Run every demo in catalog order")
	cmd.Flags().Int64("amount", 0, "Adapter: payment amount")
	cmd.Flags().String("message", "", "Decorator: notification message")
	cmd.Flags().StringSlice("channels", nil, "Decorator: channels to wrap, innermost first (email, sms, slack, push)")
	cmd.Flags().StringSlice("os", nil, "Factory: OS types to render (Windows, Mac)")
	cmd.Flags().Float64Slice("prices", nil, "Observer: prices applied in order")
	cmd.Flags().Float64("threshold", 0, "Observer: price alert threshold")
	cmd.Flags().Int("indent", 0, "Visitor: spaces per nesting level")
	cmd.Flags().String("format", "", "Visitor: record format (json, yaml)")

	return cmd
}

// runCommand implements the run command logic
func runCommand(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	if all && len(args) > 0 {
		return fmt.Errorf("--all cannot be combined with demo names")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyRunFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	demos, err := demo.Default().Resolve(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return demo.NewRunner(newConsole(cmd, cfg), cfg).Run(ctx, demos)
}

// applyRunFlags copies explicitly set per-demo flags onto cfg.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("amount") {
		cfg.Adapter.Amount, _ = flags.GetInt64("amount")
	}
	if flags.Changed("message") {
		cfg.Decorator.Message, _ = flags.GetString("message")
	}
	if flags.Changed("channels") {
		cfg.Decorator.Channels, _ = flags.GetStringSlice("channels")
	}
	if flags.Changed("os") {
		cfg.Factory.OSTypes, _ = flags.GetStringSlice("os")
	}
	if flags.Changed("prices") {
		cfg.Observer.Prices, _ = flags.GetFloat64Slice("prices")
	}
	if flags.Changed("threshold") {
		cfg.Observer.AlertThreshold, _ = flags.GetFloat64("threshold")
	}
	if flags.Changed("indent") {
		cfg.Visitor.IndentStep, _ = flags.GetInt("indent")
	}
	if flags.Changed("format") {
		cfg.Visitor.RecordFormat, _ = flags.GetString("format")
	}
}
