// Package cmd provides the root command and CLI setup for mutanalysis.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gooze.dev/pkg/mutanalysis/internal/adapter"
	"gooze.dev/pkg/mutanalysis/internal/controller"
	"gooze.dev/pkg/mutanalysis/internal/domain"
	m "gooze.dev/pkg/mutanalysis/internal/model"
)

var reportFSAdapter adapter.ReportFSAdapter
var reportReader adapter.ReportReader
var reportStore adapter.ReportStore
var reportWatcher adapter.ReportWatcher
var summaryRenderer adapter.SummaryRenderer
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write analyses.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters report paths for applicable commands.
var excludePatterns []string

var reportNameFlag string
var verboseFlag bool
var disabledRulesFlag []string
var coverageThresholdFlag float64
var excludeNoCoverageFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportFSAdapter = adapter.NewLocalReportFSAdapter()
	reportReader = adapter.NewPitReportReader(reportFSAdapter)
	reportStore = adapter.NewReportStore(reportFSAdapter)
	reportWatcher = adapter.NewFSNotifyReportWatcher(reportFSAdapter, adapter.DefaultWatchDebounce)

	renderer, err := adapter.NewMarkdownSummaryRenderer()
	cobra.CheckErr(err)

	summaryRenderer = renderer
	workflow = domain.NewWorkflow(
		reportFSAdapter,
		reportReader,
		reportStore,
		reportWatcher,
		summaryRenderer,
		func() adapter.Metrics { return adapter.NewPrometheusMetrics() },
		ui,
		domain.Operators(),
	)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...                    recursively search the current directory for reports
  - ./core/...               recursively search the core directory
  - ./core/target/pit-reports/mutations.xml
                             analyse a single report file`

const rootLongDescription = `Mutanalysis reads the mutations.xml reports written by the PIT mutation
testing engine, resolves every mutant to its mutation operator, aggregates
kill statistics per source file and class and reports the mutants and files
that need better tests.

` + pathPatternsHelp

const analyzeLongDescription = `Analyse mutation reports found under the given paths (default: ./...).

` + pathPatternsHelp

const watchLongDescription = `Analyse mutation reports and analyse them again whenever a report is
written, until interrupted.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutanalysis",
		Short: "Mutation report analysis tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a root command with the persistent flags but no subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&reportsOutputDirFlag, outputFlagName, "o", defaultReportsDir, "output directory for analysis results")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputFlagName)

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "exclude report paths matching regex (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.StringVar(&reportNameFlag, reportNameFlagName, defaultReportName, "file name of the mutation reports to search for")
	bindFlagToConfig(flags.Lookup(reportNameFlagName), reportNameConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringArrayVar(&disabledRulesFlag, disableRuleFlagName, nil, "disable the rule with this key (can be repeated)")
	bindFlagToConfig(flags.Lookup(disableRuleFlagName), disabledRulesConfigKey)

	flags.Float64Var(&coverageThresholdFlag, coverageThresholdFlagName, defaultCoverageThreshold, "minimum file score before the coverage rule reports it (0-1)")
	bindFlagToConfig(flags.Lookup(coverageThresholdFlagName), coverageThresholdConfigKey)

	flags.BoolVar(&excludeNoCoverageFlag, excludeNoCoverageFlagName, defaultExcludeNoCoverage, "leave uncovered mutants out of the score")
	bindFlagToConfig(flags.Lookup(excludeNoCoverageFlagName), excludeNoCoverageConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
