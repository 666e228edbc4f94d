package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/patterns/internal/catalog"
	"github.com/harrison/patterns/internal/demo"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available pattern demos",
		Args:  cobra.NoArgs,
		RunE:  listCommand,
	}
}

func listCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	console := newConsole(cmd, cfg)

	notes, err := catalog.Load()
	if err != nil {
		return err
	}

	for _, d := range demo.Default().All() {
		entry, err := notes.Lookup(d.Name)
		if err != nil {
			return err
		}
		console.Printf("%-10s %-11s %s", d.Name, entry.Category, entry.Summary)
	}
	return nil
}
