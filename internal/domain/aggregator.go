package domain

import (
	"maps"
	"slices"

	m "gooze.dev/pkg/mutanalysis/internal/model"
)

type fileGroup struct {
	stats     m.MutationStats
	operators map[string]int
	classes   map[string]*m.MutationStats
}

// Aggregator groups mutants by source path, then by class, and counts them
// per state. It is not safe for concurrent use.
type Aggregator struct {
	policy m.ScorePolicy
	total  m.MutationStats
	files  map[string]*fileGroup
}

// NewAggregator creates an empty aggregator scoring with policy.
func NewAggregator(policy m.ScorePolicy) *Aggregator {
	return &Aggregator{
		policy: policy,
		files:  make(map[string]*fileGroup),
	}
}

// Add counts a single mutant.
func (a *Aggregator) Add(mutant m.Mutant) {
	path := mutant.SourcePath()

	group, ok := a.files[path]
	if !ok {
		group = &fileGroup{
			operators: make(map[string]int),
			classes:   make(map[string]*m.MutationStats),
		}
		a.files[path] = group
	}

	state := mutant.State()
	a.total.Add(state)
	group.stats.Add(state)

	if operator := mutant.Operator(); operator != nil {
		group.operators[operator.ID()]++
	}

	class, ok := group.classes[mutant.MutatedClass()]
	if !ok {
		class = &m.MutationStats{}
		group.classes[mutant.MutatedClass()] = class
	}

	class.Add(state)
}

// AddAll counts every mutant.
func (a *Aggregator) AddAll(mutants ...m.Mutant) {
	for _, mutant := range mutants {
		a.Add(mutant)
	}
}

// Result returns the aggregate with files sorted by path and classes by name.
func (a *Aggregator) Result() m.Aggregate {
	files := make([]m.FileStats, 0, len(a.files))

	for _, path := range slices.Sorted(maps.Keys(a.files)) {
		group := a.files[path]

		classes := make([]m.ClassStats, 0, len(group.classes))
		for _, name := range slices.Sorted(maps.Keys(group.classes)) {
			stats := *group.classes[name]
			classes = append(classes, m.ClassStats{
				Name:  name,
				Stats: stats,
				Score: a.policy.Score(stats),
			})
		}

		files = append(files, m.FileStats{
			Path:      path,
			Stats:     group.stats,
			Score:     a.policy.Score(group.stats),
			Operators: maps.Clone(group.operators),
			Classes:   classes,
		})
	}

	return m.Aggregate{
		Policy: a.policy,
		Total:  a.total,
		Score:  a.policy.Score(a.total),
		Files:  files,
	}
}

// Aggregate groups mutants in one call.
func Aggregate(policy m.ScorePolicy, mutants ...m.Mutant) m.Aggregate {
	aggregator := NewAggregator(policy)
	aggregator.AddAll(mutants...)

	return aggregator.Result()
}

// MergeAggregates sums aggregates file by file and class by class and rescores
// them with policy.
func MergeAggregates(policy m.ScorePolicy, aggregates ...m.Aggregate) m.Aggregate {
	merged := NewAggregator(policy)

	for _, aggregate := range aggregates {
		for _, file := range aggregate.Files {
			group, ok := merged.files[file.Path]
			if !ok {
				group = &fileGroup{
					operators: make(map[string]int),
					classes:   make(map[string]*m.MutationStats),
				}
				merged.files[file.Path] = group
			}

			group.stats = group.stats.Merge(file.Stats)
			merged.total = merged.total.Merge(file.Stats)

			for id, count := range file.Operators {
				group.operators[id] += count
			}

			for _, class := range file.Classes {
				stats, ok := group.classes[class.Name]
				if !ok {
					stats = &m.MutationStats{}
					group.classes[class.Name] = stats
				}

				*stats = stats.Merge(class.Stats)
			}
		}
	}

	return merged.Result()
}
