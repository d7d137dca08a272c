package adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/mutanalysis/internal/model"
)

func TestReportStore_SaveAndLoad(t *testing.T) {
	dir := m.Path(t.TempDir())
	store := NewReportStore(NewLocalReportFSAdapter())

	stats := m.MutationStats{Killed: 2, Survived: 1, NoCoverage: 1}
	analysis := m.Analysis{
		RunID:          "run-1",
		CreatedAt:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Reports:        []m.Path{"target/pit-reports/mutations.xml"},
		SkippedRecords: 1,
		Aggregate: m.Aggregate{
			Policy: m.ScorePolicy{ExcludeNoCoverage: true},
			Total:  stats,
			Score:  2.0 / 3.0,
			Files: []m.FileStats{{
				Path:      "com/example/Calculator.java",
				Stats:     stats,
				Score:     2.0 / 3.0,
				Operators: map[string]int{"MATH": 4},
				Classes:   []m.ClassStats{{Name: "com.example.Calculator", Stats: stats, Score: 2.0 / 3.0}},
			}},
		},
		Findings: []m.Finding{
			{RuleKey: "mutant.MATH", Severity: m.SeverityMinor, SourcePath: "com/example/Calculator.java", Line: 12, State: m.StateSurvived, Message: "survived"},
			{RuleKey: "mutant.unknown", Severity: m.SeverityInfo, SourcePath: "com/example/Calculator.java", State: m.StateUnknown, Message: "unknown"},
		},
	}

	require.NoError(t, store.SaveAnalysis(dir, analysis))
	require.FileExists(t, string(dir)+"/"+AnalysisFileName)

	loaded, err := store.LoadAnalysis(dir)
	require.NoError(t, err)
	require.Equal(t, analysis, loaded)
}

func TestReportStore_LoadMissing(t *testing.T) {
	store := NewReportStore(NewLocalReportFSAdapter())

	_, err := store.LoadAnalysis(m.Path(t.TempDir()))
	require.Error(t, err)
}
