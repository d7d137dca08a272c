package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/mutanalysis/internal/model"
	pkg "gooze.dev/pkg/mutanalysis/pkg"
)

type countingMetrics struct {
	parsed  int
	built   map[m.State]int
	skipped map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{built: map[m.State]int{}, skipped: map[string]int{}}
}

func (c *countingMetrics) ReportParsed() { c.parsed++ }

func (c *countingMetrics) MutantBuilt(state m.State) { c.built[state]++ }

func (c *countingMetrics) RecordSkipped(reason string) { c.skipped[reason]++ }

func (c *countingMetrics) ObserveAnalysis(_ m.Analysis) {}

func (c *countingMetrics) WriteTextfile(_ m.Path) error { return nil }

func spillOf(t *testing.T, records ...m.MutantRecord) pkg.FileSpill[m.MutantRecord] {
	t.Helper()

	spill, err := pkg.NewFileSpill[m.MutantRecord](t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = spill.Close() })

	for _, record := range records {
		require.NoError(t, spill.Append(record))
	}

	return spill
}

func pipelineRecords() []m.MutantRecord {
	return []m.MutantRecord{
		{Report: "a.xml", SourceFile: "B.java", ClassName: "p.B", MethodName: "run", LineNumber: 7, Mutator: "MATH", Status: "SURVIVED"},
		{Report: "a.xml", SourceFile: "A.java", ClassName: "p.A", MethodName: "run", LineNumber: 3, Mutator: "NEGATE_CONDITIONALS", Status: "KILLED", Detected: true},
		{Report: "a.xml", SourceFile: "A.java", ClassName: "p.A", MethodName: "run", LineNumber: 2, Mutator: "BOGUS", Status: "SURVIVED"},
		{Report: "a.xml", SourceFile: "A.java", ClassName: "p.A", MethodName: "go", LineNumber: 1, Mutator: "VOID_METHOD_CALLS", Status: "NO_COVERAGE"},
	}
}

func TestBuildMutants_SkipsUnknownOperators(t *testing.T) {
	metrics := newCountingMetrics()

	result, err := buildMutants(context.Background(), Operators(), spillOf(t, pipelineRecords()...), pipelineArgs{
		onUnknown: OnUnknownOperatorSkip,
		profile:   DefaultProfile(),
		metrics:   metrics,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.skipped)
	assert.Equal(t, 1, metrics.skipped[skipReasonUnknownOperator])
	assert.Equal(t, 3, result.aggregate.Total.Total())
	assert.Equal(t, 1, metrics.built[m.StateKilled])

	require.NotEmpty(t, result.findings)
	assert.Equal(t, "p/A.java", result.findings[0].SourcePath)
	assert.Equal(t, "p/B.java", result.findings[len(result.findings)-1].SourcePath)

	for i := 1; i < len(result.findings); i++ {
		prev, cur := result.findings[i-1], result.findings[i]
		if prev.SourcePath == cur.SourcePath {
			assert.LessOrEqual(t, prev.Line, cur.Line)
		}
	}
}

func TestBuildMutants_FailsOnUnknownOperators(t *testing.T) {
	_, err := buildMutants(context.Background(), Operators(), spillOf(t, pipelineRecords()...), pipelineArgs{
		onUnknown: OnUnknownOperatorFail,
		profile:   DefaultProfile(),
		metrics:   newCountingMetrics(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, m.ErrOperatorNotFound))
}

func TestBuildMutants_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := buildMutants(ctx, Operators(), spillOf(t, pipelineRecords()...), pipelineArgs{
		profile: DefaultProfile(),
		metrics: newCountingMetrics(),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSortFindings(t *testing.T) {
	findings := []m.Finding{
		{SourcePath: "b", Line: 1, RuleKey: RuleSurvived},
		{SourcePath: "a", Line: 9, RuleKey: RuleSurvived},
		{SourcePath: "a", Line: 2, RuleKey: RuleUncovered},
		{SourcePath: "a", Line: 2, RuleKey: RuleSurvived},
		{SourcePath: "a", RuleKey: RuleCoverage},
	}

	sortFindings(findings)

	got := make([]string, 0, len(findings))
	for _, finding := range findings {
		got = append(got, finding.SourcePath+":"+finding.RuleKey)
	}

	assert.Equal(t, []string{
		"a:" + RuleCoverage,
		"a:" + RuleSurvived,
		"a:" + RuleUncovered,
		"a:" + RuleSurvived,
		"b:" + RuleSurvived,
	}, got)
}
