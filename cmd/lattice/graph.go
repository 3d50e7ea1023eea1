package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/lattice/internal/presentation/graph"
	"github.com/aretw0/lattice/pkg/plan"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <plan>",
	Short: "Export the transaction graph visualization",
	Long:  `Compiles the plan and outputs a Mermaid diagram (graph TD) of its transactions and dependencies.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := loadPlan(args)
		if err != nil {
			fmt.Printf("Error loading plan: %v\n", err)
			os.Exit(1)
		}

		compiled, err := plan.Compile(p, nil)
		if err != nil {
			fmt.Printf("Error compiling plan: %v\n", err)
			os.Exit(1)
		}

		var overlay *graph.GraphOverlay
		if withRun, _ := cmd.Flags().GetBool("run"); withRun {
			overlay = &graph.GraphOverlay{}
			if err := compiled.Store.Run(context.Background(), compiled.Transactions); err != nil {
				fmt.Fprintf(os.Stderr, "Run failed: %v\n", err)
			}
			for _, tx := range compiled.Transactions {
				if tx.Fulfilled() {
					overlay.Fulfilled = append(overlay.Fulfilled, tx.ID())
				} else if overlay.Failed == "" {
					overlay.Failed = tx.ID()
				}
			}
		}

		fmt.Print(graph.GenerateMermaid(compiled.Transactions, overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().Bool("run", false, "Run the plan and highlight fulfilled transactions")
}
