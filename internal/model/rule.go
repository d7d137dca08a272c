package model

import "fmt"

// Severity is the importance of a rule.
type Severity string

const (
	// SeverityBlocker must be fixed before release.
	SeverityBlocker Severity = "blocker"
	// SeverityCritical indicates a weakness likely to hide real defects.
	SeverityCritical Severity = "critical"
	// SeverityMajor indicates a test gap worth closing.
	SeverityMajor Severity = "major"
	// SeverityMinor indicates a small test gap.
	SeverityMinor Severity = "minor"
	// SeverityInfo is informational.
	SeverityInfo Severity = "info"
)

// IsValid reports whether s is a known severity.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityBlocker, SeverityCritical, SeverityMajor, SeverityMinor, SeverityInfo:
		return true
	default:
		return false
	}
}

// ParseSeverity parses a severity name.
func ParseSeverity(s string) (Severity, error) {
	severity := Severity(s)
	if !severity.IsValid() {
		return "", fmt.Errorf("invalid severity: %s", s)
	}

	return severity, nil
}

// Rule maps mutant outcomes to findings.
type Rule struct {
	Key         string
	Name        string
	Severity    Severity
	Description string
	// OperatorID is set for operator specific rules.
	OperatorID string
	Active     bool
}

// Finding is a single rule violation.
type Finding struct {
	RuleKey    string   `yaml:"rule"`
	Severity   Severity `yaml:"severity"`
	SourcePath string   `yaml:"source"`
	Class      string   `yaml:"class,omitempty"`
	Method     string   `yaml:"method,omitempty"`
	Line       int      `yaml:"line,omitempty"`
	OperatorID string   `yaml:"operator,omitempty"`
	State      State    `yaml:"state,omitempty"`
	Message    string   `yaml:"message"`
}
