package domain

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"gooze.dev/pkg/mutanalysis/internal/adapter"
	m "gooze.dev/pkg/mutanalysis/internal/model"
	pkg "gooze.dev/pkg/mutanalysis/pkg"
)

const skipReasonUnknownOperator = "unknown_operator"

type pipelineArgs struct {
	reports   []m.ReportFile
	threads   int
	onUnknown UnknownOperatorPolicy
	policy    m.ScorePolicy
	profile   *Profile
	metrics   adapter.Metrics
}

type pipelineResult struct {
	aggregate m.Aggregate
	findings  []m.Finding
	skipped   int
}

// runPipeline parses reports in parallel into a spill file, then builds,
// aggregates and evaluates the mutants on a single goroutine.
func (w *workflow) runPipeline(ctx context.Context, args pipelineArgs) (pipelineResult, error) {
	spill, err := pkg.NewFileSpill[m.MutantRecord]("")
	if err != nil {
		return pipelineResult{}, fmt.Errorf("create spill: %w", err)
	}

	defer func() {
		if err := spill.Close(); err != nil {
			slog.Warn("Failed to close spill", "path", spill.Path(), "error", err)
		}
	}()

	if err := w.parseReports(ctx, args.reports, args.threads, spill, args.metrics); err != nil {
		return pipelineResult{}, err
	}

	slog.Debug("Parsed reports", "reports", len(args.reports), "records", spill.Len())

	return buildMutants(ctx, w.registry, spill, args)
}

func (w *workflow) parseReports(ctx context.Context, reports []m.ReportFile, threads int, spill pkg.FileSpill[m.MutantRecord], metrics adapter.Metrics) error {
	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for _, report := range reports {
		currentReport := report

		group.Go(func() error {
			err := w.ReadReport(groupCtx, currentReport, func(record m.MutantRecord) error {
				return spill.Append(record)
			})
			if err != nil {
				return fmt.Errorf("parse report %s: %w", currentReport.ShortPath, err)
			}

			metrics.ReportParsed()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Failed to parse reports", "error", err)
		return err
	}

	return nil
}

func buildMutants(ctx context.Context, resolver m.OperatorResolver, spill pkg.FileSpill[m.MutantRecord], args pipelineArgs) (pipelineResult, error) {
	aggregator := NewAggregator(args.policy)

	var result pipelineResult

	err := spill.Range(func(_ uint64, record m.MutantRecord) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		mutant, err := m.NewMutantBuilder(resolver).FromRecord(record).Build()
		if err != nil {
			if !errors.Is(err, m.ErrOperatorNotFound) || args.onUnknown == OnUnknownOperatorFail {
				return fmt.Errorf("build mutant from %s (%s:%d): %w", record.Report, record.ClassName, record.LineNumber, err)
			}

			slog.Warn("Skipping mutant with unknown operator",
				"report", record.Report,
				"mutator", record.Mutator,
				"class", record.ClassName,
				"line", record.LineNumber)

			result.skipped++
			args.metrics.RecordSkipped(skipReasonUnknownOperator)

			return nil
		}

		args.metrics.MutantBuilt(mutant.State())
		aggregator.Add(mutant)
		result.findings = append(result.findings, args.profile.EvaluateMutant(mutant)...)

		return nil
	})
	if err != nil {
		return pipelineResult{}, err
	}

	result.aggregate = aggregator.Result()
	result.findings = append(result.findings, args.profile.Evaluate(result.aggregate)...)
	sortFindings(result.findings)

	return result, nil
}

// sortFindings orders findings by location so output does not depend on parse order.
func sortFindings(findings []m.Finding) {
	slices.SortStableFunc(findings, func(a, b m.Finding) int {
		return cmp.Or(
			strings.Compare(a.SourcePath, b.SourcePath),
			cmp.Compare(a.Line, b.Line),
			strings.Compare(a.Class, b.Class),
			strings.Compare(a.Method, b.Method),
			strings.Compare(a.RuleKey, b.RuleKey),
			strings.Compare(a.Message, b.Message),
		)
	})
}
