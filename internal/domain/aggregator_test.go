package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/mutanalysis/internal/model"
)

func testMutant(t *testing.T, class, file, mutator string, state m.State) m.Mutant {
	t.Helper()

	mutant, err := NewMutantBuilder().
		InClass(class).
		InSourceFile(file).
		InMethod("run").
		UsingMutator(mutator).
		WithState(state).
		Build()
	require.NoError(t, err)

	return mutant
}

func TestAggregate_Score(t *testing.T) {
	mutants := []m.Mutant{
		testMutant(t, "com.example.Calc", "Calc.java", "MATH", m.StateKilled),
		testMutant(t, "com.example.Calc", "Calc.java", "MATH", m.StateKilled),
		testMutant(t, "com.example.Calc", "Calc.java", "NEGATE_CONDITIONALS", m.StateSurvived),
	}

	aggregate := Aggregate(m.ScorePolicy{}, mutants...)

	assert.InDelta(t, 2.0/3.0, aggregate.Score, 1e-9)
	require.Len(t, aggregate.Files, 1)

	file := aggregate.Files[0]
	assert.Equal(t, "com/example/Calc.java", file.Path)
	assert.InDelta(t, 2.0/3.0, file.Score, 1e-9)
	assert.Equal(t, 2, file.Counts()[m.StateKilled])
	assert.Equal(t, map[string]int{"MATH": 2, "NEGATE_CONDITIONALS": 1}, file.Operators)
	require.Len(t, file.Classes, 1)
	assert.Equal(t, "com.example.Calc", file.Classes[0].Name)
	assert.Equal(t, 3, file.Classes[0].Stats.Total())
}

func TestAggregate_Empty(t *testing.T) {
	aggregate := Aggregate(m.ScorePolicy{})

	assert.Zero(t, aggregate.Score)
	assert.Empty(t, aggregate.Files)
	assert.Zero(t, aggregate.Total.Total())
}

func TestAggregate_GroupsBySourcePath(t *testing.T) {
	aggregate := Aggregate(m.ScorePolicy{},
		testMutant(t, "com.b.Util", "Util.java", "MATH", m.StateSurvived),
		testMutant(t, "com.a.Util", "Util.java", "MATH", m.StateKilled),
		testMutant(t, "com.a.Util$Inner", "Util.java", "MATH", m.StateKilled),
	)

	require.Len(t, aggregate.Files, 2)
	assert.Equal(t, "com/a/Util.java", aggregate.Files[0].Path)
	assert.Equal(t, "com/b/Util.java", aggregate.Files[1].Path)
	assert.Equal(t, 1.0, aggregate.Files[0].Score)
	assert.Equal(t, 0.0, aggregate.Files[1].Score)

	classes := aggregate.Files[0].Classes
	require.Len(t, classes, 2)
	assert.Equal(t, "com.a.Util", classes[0].Name)
	assert.Equal(t, "com.a.Util$Inner", classes[1].Name)
}

func TestAggregate_ExcludeNoCoverage(t *testing.T) {
	mutants := []m.Mutant{
		testMutant(t, "com.example.Calc", "Calc.java", "MATH", m.StateKilled),
		testMutant(t, "com.example.Calc", "Calc.java", "MATH", m.StateNoCoverage),
		testMutant(t, "com.example.Calc", "Calc.java", "MATH", m.StateUnknown),
	}

	assert.Equal(t, 0.5, Aggregate(m.ScorePolicy{}, mutants...).Score)
	assert.Equal(t, 1.0, Aggregate(m.ScorePolicy{ExcludeNoCoverage: true}, mutants...).Score)
}

func TestMergeAggregates(t *testing.T) {
	first := Aggregate(m.ScorePolicy{},
		testMutant(t, "com.example.Calc", "Calc.java", "MATH", m.StateKilled),
		testMutant(t, "com.example.Other", "Other.java", "MATH", m.StateSurvived),
	)
	second := Aggregate(m.ScorePolicy{},
		testMutant(t, "com.example.Calc", "Calc.java", "INCREMENTS", m.StateSurvived),
	)

	merged := MergeAggregates(m.ScorePolicy{}, first, second)

	assert.Equal(t, 3, merged.Total.Total())
	assert.InDelta(t, 1.0/3.0, merged.Score, 1e-9)
	require.Len(t, merged.Files, 2)

	calc := merged.Files[0]
	assert.Equal(t, "com/example/Calc.java", calc.Path)
	assert.Equal(t, 0.5, calc.Score)
	assert.Equal(t, map[string]int{"MATH": 1, "INCREMENTS": 1}, calc.Operators)
	require.Len(t, calc.Classes, 1)
	assert.Equal(t, 2, calc.Classes[0].Stats.Total())

	assert.Equal(t, 1, first.Files[0].Stats.Total())
}
