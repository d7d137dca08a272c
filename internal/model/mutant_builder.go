package model

import "fmt"

// MutantBuilder accumulates mutant fields before producing an immutable Mutant.
// Every field is optional; Build only fails when the operator was given as an
// identifier that could not be resolved. A builder is scratch state for a
// single goroutine.
type MutantBuilder struct {
	resolver OperatorResolver
	mutant   Mutant
	err      error
}

// NewMutantBuilder creates a builder that resolves mutator identifiers with resolver.
func NewMutantBuilder(resolver OperatorResolver) *MutantBuilder {
	return &MutantBuilder{resolver: resolver}
}

// WithState sets the survival state directly.
func (b *MutantBuilder) WithState(state State) *MutantBuilder {
	b.mutant.state = state
	return b
}

// WithStatus sets the survival state from its token. Unknown tokens yield
// StateUnknown.
func (b *MutantBuilder) WithStatus(status string) *MutantBuilder {
	b.mutant.state = ParseState(status)
	return b
}

// Detected sets the detected flag.
func (b *MutantBuilder) Detected(detected bool) *MutantBuilder {
	b.mutant.detected = detected
	return b
}

// InSourceFile sets the source file.
func (b *MutantBuilder) InSourceFile(sourceFile string) *MutantBuilder {
	b.mutant.sourceFile = sourceFile
	return b
}

// InClass sets the mutated class.
func (b *MutantBuilder) InClass(className string) *MutantBuilder {
	b.mutant.mutatedClass = className
	return b
}

// InMethod sets the mutated method.
func (b *MutantBuilder) InMethod(method string) *MutantBuilder {
	b.mutant.mutatedMethod = method
	return b
}

// WithMethodDescription sets the method descriptor.
func (b *MutantBuilder) WithMethodDescription(description string) *MutantBuilder {
	b.mutant.methodDescription = description
	return b
}

// InLine sets the line number. Negative values are stored as 0.
func (b *MutantBuilder) InLine(line int) *MutantBuilder {
	b.mutant.lineNumber = max(line, 0)
	return b
}

// AtIndex sets the index within the line. Negative values are stored as 0.
func (b *MutantBuilder) AtIndex(index int) *MutantBuilder {
	b.mutant.index = max(index, 0)
	return b
}

// UsingOperator sets an already resolved operator. The suffix is cleared.
func (b *MutantBuilder) UsingOperator(operator *MutationOperator) *MutantBuilder {
	b.mutant.operator = operator
	b.mutant.operatorSuffix = ""
	b.err = nil

	return b
}

// UsingMutator resolves a mutator identifier, keeping whatever followed the
// matched key as the operator suffix. A failed lookup is reported by Build.
func (b *MutantBuilder) UsingMutator(identifier string) *MutantBuilder {
	b.mutant.operator = nil
	b.mutant.operatorSuffix = ""

	if b.resolver == nil {
		b.err = fmt.Errorf("no operator resolver: %w", OperatorNotFoundError(identifier))
		return b
	}

	match, err := b.resolver.Lookup(identifier)
	if err != nil {
		b.err = err
		return b
	}

	b.mutant.operator = match.Operator
	b.mutant.operatorSuffix = match.Suffix
	b.err = nil

	return b
}

// KilledBy sets the killing test.
func (b *MutantBuilder) KilledBy(test string) *MutantBuilder {
	b.mutant.killingTest = test
	return b
}

// FromRecord copies all fields of a raw report record into the builder.
func (b *MutantBuilder) FromRecord(record MutantRecord) *MutantBuilder {
	return b.
		InSourceFile(record.SourceFile).
		InClass(record.ClassName).
		InMethod(record.MethodName).
		WithMethodDescription(record.MethodDescriptor).
		InLine(record.LineNumber).
		AtIndex(record.MutatorIndex).
		WithStatus(record.Status).
		Detected(record.Detected).
		KilledBy(record.KillingTest).
		UsingMutator(record.Mutator)
}

// Build returns the configured mutant.
func (b *MutantBuilder) Build() (Mutant, error) {
	if b.err != nil {
		return Mutant{}, b.err
	}

	return b.mutant, nil
}
