package main

import (
	"fmt"
	"os"

	"github.com/aretw0/lattice/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <plan>",
	Short: "Check a plan for consistency",
	Long:  `Decodes every step, checks ids, actions and arguments, then verifies the dependency graph is acyclic.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := loadPlan(args)
		if err != nil {
			fmt.Printf("Error loading plan: %v\n", err)
			os.Exit(1)
		}
		if err := validator.ValidatePlan(p, nil); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Plan %q is valid! ✅\n", p.Name)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
