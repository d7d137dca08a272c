package model

// MutationStats counts mutants per survival state.
type MutationStats struct {
	Killed      int `yaml:"killed"`
	Survived    int `yaml:"survived"`
	NoCoverage  int `yaml:"no_coverage"`
	TimedOut    int `yaml:"timed_out"`
	MemoryError int `yaml:"memory_error"`
	Unknown     int `yaml:"unknown"`
}

// Add counts one mutant in the given state.
func (s *MutationStats) Add(state State) {
	switch state {
	case StateKilled:
		s.Killed++
	case StateSurvived:
		s.Survived++
	case StateNoCoverage:
		s.NoCoverage++
	case StateTimedOut:
		s.TimedOut++
	case StateMemoryError:
		s.MemoryError++
	case StateUnknown:
		s.Unknown++
	default:
		s.Unknown++
	}
}

// Merge returns the sum of both stats.
func (s MutationStats) Merge(other MutationStats) MutationStats {
	return MutationStats{
		Killed:      s.Killed + other.Killed,
		Survived:    s.Survived + other.Survived,
		NoCoverage:  s.NoCoverage + other.NoCoverage,
		TimedOut:    s.TimedOut + other.TimedOut,
		MemoryError: s.MemoryError + other.MemoryError,
		Unknown:     s.Unknown + other.Unknown,
	}
}

// Count returns the number of mutants in state.
func (s MutationStats) Count(state State) int {
	switch state {
	case StateKilled:
		return s.Killed
	case StateSurvived:
		return s.Survived
	case StateNoCoverage:
		return s.NoCoverage
	case StateTimedOut:
		return s.TimedOut
	case StateMemoryError:
		return s.MemoryError
	case StateUnknown:
		return s.Unknown
	}

	return 0
}

// Counts returns the per-state counts for every state.
func (s MutationStats) Counts() map[State]int {
	counts := make(map[State]int, len(stateTokens))
	for _, state := range States() {
		counts[state] = s.Count(state)
	}

	return counts
}

// Total returns the number of mutants counted, UNKNOWN included.
func (s MutationStats) Total() int {
	return s.Killed + s.Survived + s.NoCoverage + s.TimedOut + s.MemoryError + s.Unknown
}

// Detected returns the number of mutants in a detected state.
func (s MutationStats) Detected() int {
	return s.Killed + s.TimedOut + s.MemoryError
}

// Alive returns the number of survived and uncovered mutants.
func (s MutationStats) Alive() int {
	return s.Survived + s.NoCoverage
}

// ScorePolicy decides which states form the mutation score denominator.
//
// The score is detected / evaluated where detected is KILLED + TIMED_OUT +
// MEMORY_ERROR and evaluated is detected + SURVIVED + NO_COVERAGE. UNKNOWN
// mutants never count. With ExcludeNoCoverage set NO_COVERAGE mutants are left
// out of evaluated as well.
type ScorePolicy struct {
	ExcludeNoCoverage bool `yaml:"exclude_no_coverage"`
}

// Evaluated returns the score denominator for s.
func (p ScorePolicy) Evaluated(s MutationStats) int {
	evaluated := s.Detected() + s.Survived
	if !p.ExcludeNoCoverage {
		evaluated += s.NoCoverage
	}

	return evaluated
}

// Score returns the mutation score in [0, 1]; 0 when nothing was evaluated.
func (p ScorePolicy) Score(s MutationStats) float64 {
	evaluated := p.Evaluated(s)
	if evaluated == 0 {
		return 0.0
	}

	return float64(s.Detected()) / float64(evaluated)
}

// ClassStats holds the statistics of one mutated class.
type ClassStats struct {
	Name  string        `yaml:"name"`
	Stats MutationStats `yaml:"stats"`
	Score float64       `yaml:"score"`
}

// FileStats holds the statistics of one source file and its classes.
type FileStats struct {
	Path      string         `yaml:"path"`
	Stats     MutationStats  `yaml:"stats"`
	Score     float64        `yaml:"score"`
	Operators map[string]int `yaml:"operators,omitempty"`
	Classes   []ClassStats   `yaml:"classes"`
}

// Counts returns the per-state counts of the file.
func (f FileStats) Counts() map[State]int {
	return f.Stats.Counts()
}

// Aggregate is the per-file view over a set of mutants.
type Aggregate struct {
	Policy ScorePolicy   `yaml:"policy"`
	Total  MutationStats `yaml:"total"`
	Score  float64       `yaml:"score"`
	Files  []FileStats   `yaml:"files"`
}
