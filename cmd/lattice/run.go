package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <plan>",
	Short: "Run a plan and print the final model",
	Long:  `Validates and runs the plan, then prints the final model and the delta against the initial model as JSON.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPlan(cmd, args); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("metrics", false, "Print Prometheus metrics to stderr after the run")
}

func runPlan(cmd *cobra.Command, args []string) error {
	p, err := loadPlan(args)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	hooks := observability.Chain(metrics.Hooks(), observability.LoggingHooks(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := lattice.RunPlan(ctx, p,
		lattice.WithLogger(logger),
		lattice.WithLifecycleHooks(hooks),
	)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any{
		"plan":  p.Name,
		"model": res.Model,
		"delta": res.Delta,
	}); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if withMetrics, _ := cmd.Flags().GetBool("metrics"); withMetrics {
		return writeMetrics(cmd.ErrOrStderr(), reg)
	}
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
