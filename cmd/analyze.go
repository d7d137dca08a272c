package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var parallelFlag int
var onUnknownOperatorFlag string
var minScoreFlag float64
var metricsFileFlag string
var summaryFileFlag string
var shardFlag string

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "analyze [paths...]",
		Aliases: []string{"analyse"},
		Short:   "Analyse mutation reports",
		Long:    analyzeLongDescription,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindAnalysisFlags(cmd.Flags())
		},
		RunE: func(_ *cobra.Command, args []string) error {
			analyzeArgs, err := analyzeArgsFromConfig(args)
			if err != nil {
				return err
			}

			shardIndex, totalShards, err := parseShardFlag(shardFlag)
			if err != nil {
				return err
			}

			analyzeArgs.ShardIndex = shardIndex
			analyzeArgs.TotalShardCount = totalShards

			return workflow.Analyze(context.Background(), analyzeArgs)
		},
	}

	configureAnalysisFlags(cmd)
	cmd.Flags().StringVarP(&shardFlag, shardFlagName, "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")

	return cmd
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// configureAnalysisFlags declares the flags shared by analyze and watch. They
// are bound to viper in PreRun so the command that actually runs owns the keys.
func configureAnalysisFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVarP(&parallelFlag, parallelFlagName, "p", defaultParallel, "number of reports parsed in parallel")
	flags.StringVar(&onUnknownOperatorFlag, onUnknownOperatorFlagName, defaultOnUnknownOperator, "what to do with mutants of unknown operators: skip or fail")
	flags.Float64Var(&minScoreFlag, minScoreFlagName, defaultMinScore, "fail when the total mutation score is below this value (0-1)")
	flags.StringVar(&metricsFileFlag, metricsFileFlagName, "", "write Prometheus metrics to this textfile")
	flags.StringVar(&summaryFileFlag, summaryFileFlagName, "", "write a markdown summary to this file")
}

func bindAnalysisFlags(flags *pflag.FlagSet) {
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)
	bindFlagToConfig(flags.Lookup(onUnknownOperatorFlagName), onUnknownOperatorConfigKey)
	bindFlagToConfig(flags.Lookup(minScoreFlagName), minScoreConfigKey)
	bindFlagToConfig(flags.Lookup(metricsFileFlagName), metricsFileConfigKey)
	bindFlagToConfig(flags.Lookup(summaryFileFlagName), summaryFileConfigKey)
}

func parseShardFlag(shard string) (int, int, error) {
	if shard == "" {
		return 0, 1, nil
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 0, fmt.Errorf("invalid shard %q: want INDEX/TOTAL with 0 <= INDEX < TOTAL", shard)
	}

	return index, total, nil
}
