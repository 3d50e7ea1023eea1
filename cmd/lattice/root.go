package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/lattice/internal/logging"
	"github.com/aretw0/lattice/pkg/plan"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Lattice runs transactional plans against an in-memory model",
	Long:  `Lattice compiles declarative plans (YAML or JSON) into a dependency graph of transactions and runs them against a model.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.New(logging.ParseLevel(level))
}

func loadPlan(args []string) (*plan.Plan, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing plan file")
	}
	return plan.Load(args[0])
}
