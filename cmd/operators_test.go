package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/mutanalysis/internal/domain"
)

func TestOperatorsCmd(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t, newOperatorsCmd())

	mockWorkflow.On("Operators", mock.Anything).Return(nil)

	cmd.SetArgs([]string{"operators"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestRulesCmd_PassesProfileFlags(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t, newRulesCmd())

	mockWorkflow.On("Rules", mock.Anything, mock.MatchedBy(func(args domain.RulesArgs) bool {
		return args.CoverageThreshold == 0.5 &&
			len(args.DisabledRules) == 2 &&
			args.DisabledRules[0] == "mutant.survived" &&
			args.DisabledRules[1] == "mutant.MATH"
	})).Return(nil)

	cmd.SetArgs([]string{"rules", "--coverage-threshold", "0.5", "--disable-rule", "mutant.survived", "--disable-rule", "mutant.MATH"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestRulesCmd_ErrorIsReturned(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t, newRulesCmd())

	mockWorkflow.On("Rules", mock.Anything, mock.Anything).Return(errors.New("unknown rule"))

	cmd.SetArgs([]string{"rules"})
	assert.Error(t, cmd.Execute())
}
