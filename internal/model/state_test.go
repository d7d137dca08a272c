package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		status string
		want   State
	}{
		{"KILLED", StateKilled},
		{"SURVIVED", StateSurvived},
		{"NO_COVERAGE", StateNoCoverage},
		{"TIMED_OUT", StateTimedOut},
		{"MEMORY_ERROR", StateMemoryError},
		{"UNKNOWN", StateUnknown},
		{"killed", StateUnknown},
		{"RUN_ERROR", StateUnknown},
		{"", StateUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseState(tt.status))
		})
	}
}

func TestState_StringRoundTrip(t *testing.T) {
	for _, state := range States() {
		assert.Equal(t, state, ParseState(state.String()))
	}

	assert.Equal(t, "UNKNOWN", State(99).String())
}

func TestState_Classification(t *testing.T) {
	assert.True(t, StateSurvived.Alive())
	assert.True(t, StateNoCoverage.Alive())
	assert.False(t, StateKilled.Alive())
	assert.False(t, StateUnknown.Alive())

	assert.True(t, StateKilled.Detected())
	assert.True(t, StateTimedOut.Detected())
	assert.True(t, StateMemoryError.Detected())
	assert.False(t, StateSurvived.Detected())
	assert.False(t, StateUnknown.Detected())
}

func TestState_YAML(t *testing.T) {
	type wrapper struct {
		State State `yaml:"state"`
	}

	out, err := yaml.Marshal(wrapper{State: StateTimedOut})
	require.NoError(t, err)
	assert.Equal(t, "state: TIMED_OUT\n", string(out))

	var decoded wrapper
	require.NoError(t, yaml.Unmarshal([]byte("state: NO_COVERAGE\n"), &decoded))
	assert.Equal(t, StateNoCoverage, decoded.State)

	require.NoError(t, yaml.Unmarshal([]byte("state: bogus\n"), &decoded))
	assert.Equal(t, StateUnknown, decoded.State)
}
