package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// operatorsCmd represents the operators command.
var operatorsCmd = newOperatorsCmd()

func newOperatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operators",
		Short: "List the known mutation operators",
		Long:  "List the mutation operators mutator identifiers in reports are resolved against.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Operators(context.Background())
		},
	}
}

func init() {
	rootCmd.AddCommand(operatorsCmd)
}
