package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/patterns/internal/catalog"
	"github.com/harrison/patterns/internal/demo"
)

// NewDescribeCommand creates the describe command
func NewDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <pattern>",
		Short: "Show the reference note for a pattern",
		Long: `Show the reference note for a pattern: intent, participants and
what the demo does.

Examples:
  patterns describe visitor
  patterns describe "Factory"`,
		Args: cobra.ExactArgs(1),
		RunE: describeCommand,
	}
}

func describeCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	console := newConsole(cmd, cfg)

	d, err := demo.Default().Lookup(args[0])
	if err != nil {
		return err
	}

	notes, err := catalog.Load()
	if err != nil {
		return err
	}
	entry, err := notes.Lookup(d.Name)
	if err != nil {
		return err
	}

	console.Group(fmt.Sprintf("%s (%s)", entry.Title, entry.Category))
	defer console.GroupEnd()
	fmt.Fprint(console, entry.Body)
	return nil
}
