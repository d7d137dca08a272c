package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"gooze.dev/pkg/mutanalysis/internal/domain"
)

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the analysis rules",
		Long:  "List the rules findings are reported for and whether each one is active.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Rules(context.Background(), domain.RulesArgs{ProfileArgs: profileArgsFromConfig()})
		},
	}
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
