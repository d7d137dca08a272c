package model

// State is the survival state of a mutant after the test suite ran against it.
type State int

const (
	// StateUnknown is used when the engine reported no or an unrecognized status.
	StateUnknown State = iota
	// StateKilled indicates the mutation was detected by a failing test.
	StateKilled
	// StateSurvived indicates tests covered the mutation but none failed.
	StateSurvived
	// StateNoCoverage indicates no test executed the mutated code.
	StateNoCoverage
	// StateTimedOut indicates the tests did not finish in time.
	StateTimedOut
	// StateMemoryError indicates the tests ran out of memory.
	StateMemoryError
)

var stateTokens = map[State]string{
	StateUnknown:     "UNKNOWN",
	StateKilled:      "KILLED",
	StateSurvived:    "SURVIVED",
	StateNoCoverage:  "NO_COVERAGE",
	StateTimedOut:    "TIMED_OUT",
	StateMemoryError: "MEMORY_ERROR",
}

var statesByToken = func() map[string]State {
	byToken := make(map[string]State, len(stateTokens))
	for state, token := range stateTokens {
		byToken[token] = state
	}

	return byToken
}()

// States returns all states in display order.
func States() []State {
	return []State{StateKilled, StateSurvived, StateNoCoverage, StateTimedOut, StateMemoryError, StateUnknown}
}

// ParseState classifies a raw status token. Matching is case-sensitive and
// anything unrecognized resolves to StateUnknown.
func ParseState(status string) State {
	if state, ok := statesByToken[status]; ok {
		return state
	}

	return StateUnknown
}

// String returns the canonical status token.
func (s State) String() string {
	if token, ok := stateTokens[s]; ok {
		return token
	}

	return stateTokens[StateUnknown]
}

// Alive reports whether the mutant escaped the test suite.
func (s State) Alive() bool {
	return s == StateSurvived || s == StateNoCoverage
}

// Detected reports whether the engine counts the state as detected.
func (s State) Detected() bool {
	return s == StateKilled || s == StateTimedOut || s == StateMemoryError
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	*s = ParseState(string(text))
	return nil
}
