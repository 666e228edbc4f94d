package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/harrison/patterns/internal/cmd"
)

// Version is the current version of the patterns application
const Version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
