// Package model defines the data structures for mutation analysis.
package model

import (
	"errors"
	"fmt"
)

// ErrOperatorNotFound is returned when a mutator identifier matches no known
// mutation operator.
var ErrOperatorNotFound = errors.New("mutation operator not found")

// Category groups mutation operators by the kind of code they alter.
type Category string

const (
	// CategoryConditionals covers operators that alter conditional expressions.
	CategoryConditionals Category = "conditionals"
	// CategoryArithmetic covers operators that replace or negate arithmetic.
	CategoryArithmetic Category = "arithmetic"
	// CategoryIncrements covers operators that change increments and decrements.
	CategoryIncrements Category = "increments"
	// CategoryReturnValues covers operators that replace return values.
	CategoryReturnValues Category = "return-values"
	// CategoryMethodCalls covers operators that remove or replace calls.
	CategoryMethodCalls Category = "method-calls"
	// CategoryConstants covers operators that change inline constants.
	CategoryConstants Category = "constants"
	// CategoryMembers covers operators that touch member variables.
	CategoryMembers Category = "members"
	// CategorySwitch covers operators that alter switch statements.
	CategorySwitch Category = "switch"
	// CategoryOther is used for operators without a more specific category.
	CategoryOther Category = "other"
)

// MutationOperator describes the rule that produced a mutant.
// Instances are created once by the operator registry and shared by pointer.
type MutationOperator struct {
	id          string
	name        string
	className   string
	category    Category
	description string
}

// NewMutationOperator creates an operator descriptor.
func NewMutationOperator(id, name, className string, category Category, description string) *MutationOperator {
	if category == "" {
		category = CategoryOther
	}

	return &MutationOperator{
		id:          id,
		name:        name,
		className:   className,
		category:    category,
		description: description,
	}
}

// ID returns the canonical operator id, e.g. NEGATE_CONDITIONALS.
func (o *MutationOperator) ID() string { return o.id }

// Name returns the human-readable operator name.
func (o *MutationOperator) Name() string { return o.name }

// ClassName returns the fully-qualified engine class implementing the operator.
func (o *MutationOperator) ClassName() string { return o.className }

// Category returns the operator category.
func (o *MutationOperator) Category() Category { return o.category }

// Description returns a short explanation of what the operator changes.
func (o *MutationOperator) Description() string { return o.description }

func (o *MutationOperator) String() string {
	if o == nil {
		return "<none>"
	}

	return o.id
}

// OperatorMatch is the result of resolving a mutator identifier.
type OperatorMatch struct {
	Operator *MutationOperator
	// Suffix is the part of the identifier after the matched key and its
	// separating underscore. Empty for exact matches.
	Suffix string
}

// OperatorResolver resolves raw mutator identifiers to operators.
type OperatorResolver interface {
	Lookup(identifier string) (OperatorMatch, error)
}

// OperatorNotFoundError builds the error returned for an unresolvable identifier.
func OperatorNotFoundError(identifier string) error {
	return fmt.Errorf("%w: %q", ErrOperatorNotFound, identifier)
}
