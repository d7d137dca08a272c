package model

import (
	"fmt"
	"path"
	"strings"
)

// Mutant is a single mutation occurrence and its outcome. It is immutable once
// built; use MutantBuilder to create one.
type Mutant struct {
	sourceFile        string
	mutatedClass      string
	mutatedMethod     string
	methodDescription string
	lineNumber        int
	index             int
	operator          *MutationOperator
	operatorSuffix    string
	state             State
	detected          bool
	killingTest       string
}

// SourceFile returns the source file as reported by the engine.
func (m Mutant) SourceFile() string { return m.sourceFile }

// MutatedClass returns the fully-qualified name of the mutated class.
func (m Mutant) MutatedClass() string { return m.mutatedClass }

// MutatedMethod returns the name of the mutated method.
func (m Mutant) MutatedMethod() string { return m.mutatedMethod }

// MethodDescription returns the method descriptor (parameter signature).
func (m Mutant) MethodDescription() string { return m.methodDescription }

// LineNumber returns the mutated line, 0 when unknown.
func (m Mutant) LineNumber() int { return m.lineNumber }

// Index returns the position of the mutation within its line, 0 when unknown.
func (m Mutant) Index() int { return m.index }

// Operator returns the operator that produced the mutant. It is nil only when
// the builder was never given an operator.
func (m Mutant) Operator() *MutationOperator { return m.operator }

// OperatorSuffix returns what followed the matched operator key in the mutator
// identifier, e.g. EQUAL_ELSE for RemoveConditionalMutator_EQUAL_ELSE.
func (m Mutant) OperatorSuffix() string { return m.operatorSuffix }

// State returns the survival state.
func (m Mutant) State() State { return m.state }

// Detected returns the detected flag exactly as reported. It is independent of
// State: timed out mutants are usually detected without being killed.
func (m Mutant) Detected() bool { return m.detected }

// KillingTest returns the test that killed the mutant, or "".
func (m Mutant) KillingTest() string { return m.killingTest }

// TestDescriptor splits the killing test into class and method.
func (m Mutant) TestDescriptor() TestDescriptor {
	return ParseTestDescriptor(m.killingTest)
}

// SourcePath returns the source file qualified with the package directory of
// the mutated class. Engines report bare file names, so two Util.java files in
// different packages only differ by this path.
func (m Mutant) SourcePath() string {
	if m.sourceFile == "" || strings.Contains(m.sourceFile, "/") {
		return m.sourceFile
	}

	dot := strings.LastIndexByte(m.mutatedClass, '.')
	if dot <= 0 {
		return m.sourceFile
	}

	pkgDir := strings.ReplaceAll(m.mutatedClass[:dot], ".", "/")

	return path.Join(pkgDir, m.sourceFile)
}

func (m Mutant) String() string {
	operator := m.operator.String()
	if m.operatorSuffix != "" {
		operator += "_" + m.operatorSuffix
	}

	return fmt.Sprintf("%s %s %s.%s:%d", m.state, operator, m.mutatedClass, m.mutatedMethod, m.lineNumber)
}

// TestDescriptor identifies a test case.
type TestDescriptor struct {
	Spec   string
	Class  string
	Method string
}

// ParseTestDescriptor parses killing test identifiers in the formats the engine
// emits:
//
//	com.example.FooTest.testBar(com.example.FooTest)
//	testBar(com.example.FooTest)
//	com.example.FooTest.[engine:junit-jupiter]/[class:com.example.FooTest]/[method:testBar()]
//	com.example.FooTest
func ParseTestDescriptor(spec string) TestDescriptor {
	spec = strings.TrimSpace(spec)
	descriptor := TestDescriptor{Spec: spec}

	if spec == "" {
		return descriptor
	}

	if class, ok := segment(spec, "[class:"); ok {
		descriptor.Class = class

		if method, ok := segment(spec, "[method:"); ok {
			if paren := strings.IndexByte(method, '('); paren >= 0 {
				method = method[:paren]
			}

			descriptor.Method = method
		}

		return descriptor
	}

	open := strings.IndexByte(spec, '(')
	if open > 0 && strings.HasSuffix(spec, ")") {
		descriptor.Class = spec[open+1 : len(spec)-1]

		head := spec[:open]
		if dot := strings.LastIndexByte(head, '.'); dot >= 0 {
			head = head[dot+1:]
		}

		descriptor.Method = head

		return descriptor
	}

	descriptor.Class = spec

	return descriptor
}

func segment(spec, marker string) (string, bool) {
	start := strings.Index(spec, marker)
	if start < 0 {
		return "", false
	}

	rest := spec[start+len(marker):]

	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return rest, true
	}

	return rest[:end], true
}
