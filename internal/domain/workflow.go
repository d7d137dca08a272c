package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gooze.dev/pkg/mutanalysis/internal/adapter"
	"gooze.dev/pkg/mutanalysis/internal/controller"
	m "gooze.dev/pkg/mutanalysis/internal/model"
)

var (
	// ErrNoReports is returned when no mutation report could be found.
	ErrNoReports = errors.New("no mutation reports found")
	// ErrScoreBelowMinimum is returned when the total score misses the configured minimum.
	ErrScoreBelowMinimum = errors.New("mutation score below minimum")
	// ErrPolicyMismatch is returned when shards to merge were scored with different policies.
	ErrPolicyMismatch = errors.New("shards use different score policies")
)

// UnknownOperatorPolicy decides what happens to records whose mutator cannot be resolved.
type UnknownOperatorPolicy string

// Available UnknownOperatorPolicy values.
const (
	OnUnknownOperatorSkip UnknownOperatorPolicy = "skip"
	OnUnknownOperatorFail UnknownOperatorPolicy = "fail"
)

// ParseUnknownOperatorPolicy parses a policy name. The empty string means skip.
func ParseUnknownOperatorPolicy(value string) (UnknownOperatorPolicy, error) {
	switch UnknownOperatorPolicy(value) {
	case "", OnUnknownOperatorSkip:
		return OnUnknownOperatorSkip, nil
	case OnUnknownOperatorFail:
		return OnUnknownOperatorFail, nil
	}

	return "", fmt.Errorf("invalid unknown operator policy %q (want %s or %s)", value, OnUnknownOperatorSkip, OnUnknownOperatorFail)
}

// ProfileArgs configures the rule profile.
type ProfileArgs struct {
	DisabledRules     []string
	CoverageThreshold float64
}

// AnalyzeArgs contains the arguments for analysing mutation reports.
type AnalyzeArgs struct {
	ProfileArgs
	Paths             []m.Path
	Exclude           []string
	ReportName        string
	Output            m.Path
	Threads           int
	OnUnknownOperator UnknownOperatorPolicy
	Policy            m.ScorePolicy
	MinScore          float64
	MetricsFile       m.Path
	SummaryFile       m.Path
	ShardIndex        int
	TotalShardCount   int
}

// ViewArgs contains the arguments for displaying a saved analysis.
type ViewArgs struct {
	Reports m.Path
}

// MergeArgs contains the arguments for merging sharded analyses. A nil Policy
// keeps the policy the shards were analysed with.
type MergeArgs struct {
	ProfileArgs
	Reports m.Path
	Policy  *m.ScorePolicy
}

// WatchArgs contains the arguments for re-analysing on report changes.
type WatchArgs struct {
	AnalyzeArgs
}

// RulesArgs contains the arguments for listing rules.
type RulesArgs struct {
	ProfileArgs
}

// Workflow is the mutation analysis application service.
type Workflow interface {
	Analyze(ctx context.Context, args AnalyzeArgs) error
	View(ctx context.Context, args ViewArgs) error
	Merge(ctx context.Context, args MergeArgs) error
	Watch(ctx context.Context, args WatchArgs) error
	Operators(ctx context.Context) error
	Rules(ctx context.Context, args RulesArgs) error
}

// MetricsFactory creates the metrics of one analysis run.
type MetricsFactory func() adapter.Metrics

type workflow struct {
	adapter.ReportFSAdapter
	adapter.ReportReader
	adapter.ReportStore
	controller.UI

	watcher    adapter.ReportWatcher
	summary    adapter.SummaryRenderer
	newMetrics MetricsFactory
	registry   *OperatorRegistry
	now        func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.ReportFSAdapter,
	reader adapter.ReportReader,
	store adapter.ReportStore,
	watcher adapter.ReportWatcher,
	summary adapter.SummaryRenderer,
	newMetrics MetricsFactory,
	ui controller.UI,
	registry *OperatorRegistry,
) Workflow {
	if registry == nil {
		registry = Operators()
	}

	return &workflow{
		ReportFSAdapter: fsAdapter,
		ReportReader:    reader,
		ReportStore:     store,
		UI:              ui,
		watcher:         watcher,
		summary:         summary,
		newMetrics:      newMetrics,
		registry:        registry,
		now:             time.Now,
	}
}

// Analyze parses, aggregates, evaluates, stores and displays mutation reports.
func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) error {
	if err := w.Start(ctx, controller.WithAnalyzeMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	analysis, err := w.analyze(ctx, args)
	if err != nil {
		return err
	}

	if err := w.DisplayAnalysis(ctx, analysis); err != nil {
		slog.Error("Failed to display analysis", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return checkMinScore(args.MinScore, analysis.Aggregate.Score)
}

func (w *workflow) analyze(ctx context.Context, args AnalyzeArgs) (m.Analysis, error) {
	profile, err := w.profile(args.ProfileArgs)
	if err != nil {
		return m.Analysis{}, err
	}

	reports, err := w.FindReports(ctx, args.Paths, args.ReportName, args.Exclude...)
	if err != nil {
		slog.Error("Failed to find reports", "error", err)
		return m.Analysis{}, fmt.Errorf("find reports: %w", err)
	}

	if len(reports) == 0 {
		return m.Analysis{}, fmt.Errorf("%w in %v", ErrNoReports, args.Paths)
	}

	reports = shardReports(reports, args.ShardIndex, args.TotalShardCount)

	w.DisplayReports(ctx, reports)

	metrics := w.newMetrics()

	result, err := w.runPipeline(ctx, pipelineArgs{
		reports:   reports,
		threads:   args.Threads,
		onUnknown: args.OnUnknownOperator,
		policy:    args.Policy,
		profile:   profile,
		metrics:   metrics,
	})
	if err != nil {
		return m.Analysis{}, err
	}

	analysis := m.Analysis{
		RunID:          uuid.NewString(),
		CreatedAt:      w.now().UTC(),
		Reports:        reportPaths(reports),
		SkippedRecords: result.skipped,
		Aggregate:      result.aggregate,
		Findings:       result.findings,
	}

	metrics.ObserveAnalysis(analysis)

	if err := w.publish(analysis, args, metrics); err != nil {
		return m.Analysis{}, err
	}

	slog.Info("Analysis complete",
		"runID", analysis.RunID,
		"reports", len(analysis.Reports),
		"mutants", analysis.Aggregate.Total.Total(),
		"skipped", analysis.SkippedRecords,
		"score", analysis.Aggregate.Score)

	return analysis, nil
}

func (w *workflow) publish(analysis m.Analysis, args AnalyzeArgs, metrics adapter.Metrics) error {
	if err := w.SaveAnalysis(shardOutput(args), analysis); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}

	if args.MetricsFile != "" {
		if err := metrics.WriteTextfile(args.MetricsFile); err != nil {
			return err
		}
	}

	if args.SummaryFile != "" {
		if err := w.writeSummary(args.SummaryFile, analysis); err != nil {
			return err
		}
	}

	return nil
}

func (w *workflow) writeSummary(path m.Path, analysis m.Analysis) error {
	content, err := w.summary.Render(analysis)
	if err != nil {
		slog.Error("Failed to render summary", "error", err)
		return err
	}

	if err := w.WriteFile(path, content, 0o644); err != nil {
		slog.Error("Failed to write summary", "path", path, "error", err)
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}

func (w *workflow) profile(args ProfileArgs) (*Profile, error) {
	profile := NewProfile(w.registry)

	if err := profile.Disable(args.DisabledRules...); err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}

	if args.CoverageThreshold > 0 {
		profile.WithCoverageThreshold(args.CoverageThreshold)
	}

	return profile, nil
}

// shardReports keeps every report whose position modulo total equals index.
func shardReports(reports []m.ReportFile, index, total int) []m.ReportFile {
	if total <= 1 {
		return reports
	}

	shard := make([]m.ReportFile, 0, len(reports)/total+1)
	for i, report := range reports {
		if i%total == index {
			shard = append(shard, report)
		}
	}

	return shard
}

// shardOutput returns the shard_<index> directory under Output when sharding.
func shardOutput(args AnalyzeArgs) m.Path {
	if args.TotalShardCount <= 1 {
		return args.Output
	}

	return m.Path(filepath.Join(string(args.Output), fmt.Sprintf("shard_%d", args.ShardIndex)))
}

func reportPaths(reports []m.ReportFile) []m.Path {
	paths := make([]m.Path, 0, len(reports))
	for _, report := range reports {
		paths = append(paths, report.ShortPath)
	}

	return paths
}

// View loads and displays a saved analysis.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	analysis, err := w.LoadAnalysis(args.Reports)
	if err != nil {
		slog.Error("Failed to load analysis", "path", args.Reports, "error", err)
		return fmt.Errorf("load analysis: %w", err)
	}

	if err := w.DisplayAnalysis(ctx, analysis); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

// shardGlob matches the per-shard result directories inside a results directory.
const shardGlob = "shard_*"

// Merge combines the analyses in shard_* subdirectories into the results directory.
func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	profile, err := w.profile(args.ProfileArgs)
	if err != nil {
		return err
	}

	shards, err := w.Glob(filepath.Join(string(args.Reports), shardGlob))
	if err != nil {
		return fmt.Errorf("list shards: %w", err)
	}

	analyses := make([]m.Analysis, 0, len(shards))

	for _, shard := range shards {
		if err := ctx.Err(); err != nil {
			return err
		}

		info, err := w.FileInfo(shard)
		if err != nil || !info.IsDir() {
			continue
		}

		analysis, err := w.LoadAnalysis(shard)
		if err != nil {
			slog.Error("Failed to load shard", "path", shard, "error", err)
			return fmt.Errorf("load shard %s: %w", shard, err)
		}

		analyses = append(analyses, analysis)
	}

	if len(analyses) == 0 {
		return fmt.Errorf("%w: no %s directories in %s", ErrNoReports, shardGlob, args.Reports)
	}

	policy, err := mergePolicy(args.Policy, analyses)
	if err != nil {
		return err
	}

	merged := mergeAnalyses(policy, profile, analyses)
	merged.RunID = uuid.NewString()
	merged.CreatedAt = w.now().UTC()

	if err := w.SaveAnalysis(args.Reports, merged); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}

	slog.Info("Merged shards", "shards", len(analyses), "path", args.Reports, "score", merged.Aggregate.Score)

	return nil
}

// mergePolicy returns override when set, otherwise the policy shared by all shards.
func mergePolicy(override *m.ScorePolicy, analyses []m.Analysis) (m.ScorePolicy, error) {
	if override != nil {
		return *override, nil
	}

	policy := analyses[0].Aggregate.Policy
	for _, analysis := range analyses[1:] {
		if analysis.Aggregate.Policy != policy {
			return m.ScorePolicy{}, fmt.Errorf("%w: %+v and %+v", ErrPolicyMismatch, policy, analysis.Aggregate.Policy)
		}
	}

	return policy, nil
}

func mergeAnalyses(policy m.ScorePolicy, profile *Profile, analyses []m.Analysis) m.Analysis {
	aggregates := make([]m.Aggregate, 0, len(analyses))

	var merged m.Analysis

	for _, analysis := range analyses {
		aggregates = append(aggregates, analysis.Aggregate)
		merged.Reports = append(merged.Reports, analysis.Reports...)
		merged.SkippedRecords += analysis.SkippedRecords

		for _, finding := range analysis.Findings {
			if _, ok := profile.active(finding.RuleKey); ok && finding.RuleKey != RuleCoverage {
				merged.Findings = append(merged.Findings, finding)
			}
		}
	}

	merged.Aggregate = MergeAggregates(policy, aggregates...)
	merged.Findings = append(merged.Findings, profile.Evaluate(merged.Aggregate)...)
	sortFindings(merged.Findings)

	return merged
}

// Watch analyses once and again whenever a report changes, until ctx ends.
func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	if err := w.Start(ctx, controller.WithWatchMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	changes, err := w.watcher.Watch(ctx, args.Paths, args.ReportName)
	if err != nil {
		slog.Error("Failed to watch reports", "error", err)
		return fmt.Errorf("watch: %w", err)
	}

	if err := w.analyzeAndDisplay(ctx, args.AnalyzeArgs); err != nil && !errors.Is(err, ErrNoReports) {
		return err
	}

	for report := range changes {
		w.DisplayWatchEvent(ctx, report)

		if err := w.analyzeAndDisplay(ctx, args.AnalyzeArgs); err != nil {
			slog.Warn("Analysis failed", "trigger", report, "error", err)
		}
	}

	return nil
}

func (w *workflow) analyzeAndDisplay(ctx context.Context, args AnalyzeArgs) error {
	analysis, err := w.analyze(ctx, args)
	if err != nil {
		return err
	}

	return w.DisplayAnalysis(ctx, analysis)
}

// Operators displays the operator catalog.
func (w *workflow) Operators(ctx context.Context) error {
	return w.DisplayOperators(ctx, w.registry.All())
}

// Rules displays the rule profile.
func (w *workflow) Rules(ctx context.Context, args RulesArgs) error {
	profile, err := w.profile(args.ProfileArgs)
	if err != nil {
		return err
	}

	return w.DisplayRules(ctx, profile.Rules())
}
