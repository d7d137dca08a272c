package domain

import (
	"fmt"
	"slices"

	m "gooze.dev/pkg/mutanalysis/internal/model"
)

// ProfileName is the name of the built-in rule profile.
const ProfileName = "Mutation Analysis"

// Generic rule keys.
const (
	RuleSurvived  = "mutant.survived"
	RuleUncovered = "mutant.uncovered"
	RuleUnknown   = "mutant.unknown"
	RuleCoverage  = "mutant.coverage"

	operatorRulePrefix = "mutant."
)

// DefaultCoverageThreshold is the minimum file score below which the coverage
// rule reports a finding.
const DefaultCoverageThreshold = 0.8

// Profile is a set of rules evaluated against mutants and file aggregates.
type Profile struct {
	rules             []m.Rule
	index             map[string]int
	coverageThreshold float64
}

// OperatorRuleKey returns the key of the rule dedicated to an operator.
func OperatorRuleKey(operatorID string) string {
	return operatorRulePrefix + operatorID
}

// NewProfile builds a profile with the generic rules and one rule per operator.
// All rules start active.
func NewProfile(registry *OperatorRegistry) *Profile {
	rules := []m.Rule{
		{
			Key:         RuleSurvived,
			Name:        "Survived Mutant",
			Severity:    m.SeverityMajor,
			Description: "A mutation was covered by tests but no test failed. The tests do not verify the mutated behaviour.",
		},
		{
			Key:         RuleUncovered,
			Name:        "Uncovered Mutant",
			Severity:    m.SeverityMajor,
			Description: "A mutation was not executed by any test.",
		},
		{
			Key:         RuleUnknown,
			Name:        "Mutant With Unknown Status",
			Severity:    m.SeverityInfo,
			Description: "The report contained a status that could not be classified.",
		},
		{
			Key:         RuleCoverage,
			Name:        "Insufficient Mutation Coverage",
			Severity:    m.SeverityCritical,
			Description: "The mutation score of a file is below the configured threshold.",
		},
	}

	for _, operator := range registry.All() {
		rules = append(rules, m.Rule{
			Key:         OperatorRuleKey(operator.ID()),
			Name:        "Survived Mutant: " + operator.Name(),
			Severity:    m.SeverityMinor,
			Description: operator.Description(),
			OperatorID:  operator.ID(),
		})
	}

	profile := &Profile{
		rules:             rules,
		index:             make(map[string]int, len(rules)),
		coverageThreshold: DefaultCoverageThreshold,
	}

	for i := range profile.rules {
		profile.rules[i].Active = true
		profile.index[profile.rules[i].Key] = i
	}

	return profile
}

// DefaultProfile builds the profile for the default operator registry.
func DefaultProfile() *Profile {
	return NewProfile(Operators())
}

// Disable deactivates the rules with the given keys. Unknown keys are reported.
func (p *Profile) Disable(keys ...string) error {
	for _, key := range keys {
		i, ok := p.index[key]
		if !ok {
			return fmt.Errorf("unknown rule %q", key)
		}

		p.rules[i].Active = false
	}

	return nil
}

// WithCoverageThreshold sets the minimum file score used by the coverage rule.
func (p *Profile) WithCoverageThreshold(threshold float64) *Profile {
	p.coverageThreshold = threshold
	return p
}

// CoverageThreshold returns the minimum file score.
func (p *Profile) CoverageThreshold() float64 {
	return p.coverageThreshold
}

// Rules returns a copy of all rules.
func (p *Profile) Rules() []m.Rule {
	return slices.Clone(p.rules)
}

// ActiveRules returns the active rules.
func (p *Profile) ActiveRules() []m.Rule {
	active := make([]m.Rule, 0, len(p.rules))
	for _, rule := range p.rules {
		if rule.Active {
			active = append(active, rule)
		}
	}

	return active
}

func (p *Profile) active(key string) (m.Rule, bool) {
	i, ok := p.index[key]
	if !ok || !p.rules[i].Active {
		return m.Rule{}, false
	}

	return p.rules[i], true
}

// EvaluateMutant returns the finding for an alive or unclassified mutant. The
// operator rule takes precedence over the generic state rule when active.
func (p *Profile) EvaluateMutant(mutant m.Mutant) []m.Finding {
	state := mutant.State()

	var (
		rule m.Rule
		ok   bool
	)

	switch {
	case state == m.StateUnknown:
		rule, ok = p.active(RuleUnknown)
	case state.Alive():
		if operator := mutant.Operator(); operator != nil {
			rule, ok = p.active(OperatorRuleKey(operator.ID()))
		}

		if !ok && state == m.StateSurvived {
			rule, ok = p.active(RuleSurvived)
		}

		if !ok && state == m.StateNoCoverage {
			rule, ok = p.active(RuleUncovered)
		}
	}

	if !ok {
		return nil
	}

	finding := m.Finding{
		RuleKey:    rule.Key,
		Severity:   rule.Severity,
		SourcePath: mutant.SourcePath(),
		Class:      mutant.MutatedClass(),
		Method:     mutant.MutatedMethod(),
		Line:       mutant.LineNumber(),
		State:      state,
		Message:    mutantMessage(mutant),
	}

	if operator := mutant.Operator(); operator != nil {
		finding.OperatorID = operator.ID()
	}

	return []m.Finding{finding}
}

func mutantMessage(mutant m.Mutant) string {
	operatorName := "unknown operator"
	if operator := mutant.Operator(); operator != nil {
		operatorName = operator.Name()
	}

	if suffix := mutant.OperatorSuffix(); suffix != "" {
		operatorName += " (" + suffix + ")"
	}

	switch mutant.State() {
	case m.StateSurvived:
		return fmt.Sprintf("Mutant survived: %s in %s", operatorName, mutant.MutatedMethod())
	case m.StateNoCoverage:
		return fmt.Sprintf("Mutant not covered by tests: %s in %s", operatorName, mutant.MutatedMethod())
	default:
		return fmt.Sprintf("Mutant has unknown status: %s in %s", operatorName, mutant.MutatedMethod())
	}
}

// EvaluateFile returns the coverage finding for a file scoring below the
// threshold. Files without evaluated mutants are never reported.
func (p *Profile) EvaluateFile(policy m.ScorePolicy, file m.FileStats) []m.Finding {
	rule, ok := p.active(RuleCoverage)
	if !ok || policy.Evaluated(file.Stats) == 0 || file.Score >= p.coverageThreshold {
		return nil
	}

	return []m.Finding{{
		RuleKey:    rule.Key,
		Severity:   rule.Severity,
		SourcePath: file.Path,
		Message: fmt.Sprintf("Mutation score %.1f%% is below the required %.1f%% (%d of %d mutants detected)",
			file.Score*100, p.coverageThreshold*100, file.Stats.Detected(), policy.Evaluated(file.Stats)),
	}}
}

// Evaluate applies the file rules to every file of an aggregate.
func (p *Profile) Evaluate(aggregate m.Aggregate) []m.Finding {
	var findings []m.Finding
	for _, file := range aggregate.Files {
		findings = append(findings, p.EvaluateFile(aggregate.Policy, file)...)
	}

	return findings
}
