package model

import "time"

// Analysis is the outcome of one analysis run.
type Analysis struct {
	RunID          string    `yaml:"run_id"`
	CreatedAt      time.Time `yaml:"created_at"`
	Reports        []Path    `yaml:"reports"`
	SkippedRecords int       `yaml:"skipped_records"`
	Aggregate      Aggregate `yaml:"aggregate"`
	Findings       []Finding `yaml:"findings"`
}
