package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gooze.dev/pkg/mutanalysis/internal/domain"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Re-analyse mutation reports when they change",
		Long:  watchLongDescription,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindAnalysisFlags(cmd.Flags())
		},
		RunE: func(_ *cobra.Command, args []string) error {
			analyzeArgs, err := analyzeArgsFromConfig(args)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return workflow.Watch(ctx, domain.WatchArgs{AnalyzeArgs: analyzeArgs})
		},
	}

	configureAnalysisFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
