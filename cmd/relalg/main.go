package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/logging"
)

func main() {
	root := &cobra.Command{
		Use:   "relalg",
		Short: "In-memory relational algebra engine",
	}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run every relational operator against a sample dataset",
		Run:   runDemo,
	}
	cmd.Flags().String("tables", "", "YAML file of table literals (default: built-in employees/tasks dataset)")
	root.AddCommand(cmd)

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// setupLogging installs the global logger and returns its cleanup function.
func setupLogging() func() {
	logger, closeFn := logging.SetupLogger()
	slog.SetDefault(logger)
	return closeFn
}
