package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	m "gooze.dev/pkg/mutanalysis/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayReports prints the reports about to be analysed.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.ReportFile) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Analyzing %d report(s)\n", len(reports))

	for _, report := range reports {
		s.printf("  %s\n", report.ShortPath)
	}
}

// DisplayAnalysis prints the per-file table, the findings and the score.
func (s *SimpleUI) DisplayAnalysis(ctx context.Context, analysis m.Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderFilesTable(analysis.Aggregate))

	if len(analysis.Findings) > 0 {
		s.printf("\nFindings: %d\n%s", len(analysis.Findings), renderFindingsTable(analysis.Findings))
	}

	if analysis.SkippedRecords > 0 {
		s.printf("Skipped records: %d\n", analysis.SkippedRecords)
	}

	s.printf("Mutation score: %s\n", formatScore(analysis.Aggregate.Score))

	return nil
}

// DisplayOperators prints the operator catalog.
func (s *SimpleUI) DisplayOperators(ctx context.Context, operators []*m.MutationOperator) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderOperatorsTable(operators))

	return nil
}

// DisplayRules prints the rule profile.
func (s *SimpleUI) DisplayRules(ctx context.Context, rules []m.Rule) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderRulesTable(rules))

	return nil
}

// DisplayWatchEvent prints a changed report.
func (s *SimpleUI) DisplayWatchEvent(ctx context.Context, report m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Report changed: %s\n", report)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
