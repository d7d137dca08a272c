// Package controller provides output adapters for displaying mutation analysis results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	m "gooze.dev/pkg/mutanalysis/internal/model"
	"golang.org/x/term"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeAnalyze StartMode = iota
	ModeView
	ModeWatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// Mode returns the configured start mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// WithAnalyzeMode sets the UI to analysis mode.
func WithAnalyzeMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeAnalyze
	}
}

// WithViewMode sets the UI to display a saved analysis.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithWatchMode sets the UI to repeated, non-interactive output.
func WithWatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeWatch
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	var config StartConfig
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines the interface for displaying analysis results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayReports(ctx context.Context, reports []m.ReportFile)
	DisplayAnalysis(ctx context.Context, analysis m.Analysis) error
	DisplayOperators(ctx context.Context, operators []*m.MutationOperator) error
	DisplayRules(ctx context.Context, rules []m.Rule) error
	DisplayWatchEvent(ctx context.Context, report m.Path)
}

// NewUI returns the interactive TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
