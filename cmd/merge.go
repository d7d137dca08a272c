package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gooze.dev/pkg/mutanalysis/internal/domain"
	m "gooze.dev/pkg/mutanalysis/internal/model"
)

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge sharded analyses into a single analysis",
		Long: `Merge the analyses in shard_* subdirectories of the output directory, as
written by analyze --shard, into a single analysis in the output directory.

The merged score uses the policy the shards were analysed with. Setting
--exclude-no-coverage (or analysis.exclude_no_coverage in the config file)
overrides it. Shards analysed with different policies are rejected.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))

			return workflow.Merge(context.Background(), domain.MergeArgs{
				ProfileArgs: profileArgsFromConfig(),
				Reports:     reportsPath,
				Policy:      mergePolicyOverride(cmd),
			})
		},
	}

	return cmd
}

// mergePolicyOverride returns nil unless the score policy was set explicitly.
func mergePolicyOverride(cmd *cobra.Command) *m.ScorePolicy {
	if !cmd.Flags().Changed(excludeNoCoverageFlagName) && !viper.InConfig(excludeNoCoverageConfigKey) {
		return nil
	}

	policy := scorePolicyFromConfig()

	return &policy
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
