// Package domain contains the mutation analysis core: operator registry,
// aggregation, rule profile and the analysis workflow.
package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	m "gooze.dev/pkg/mutanalysis/internal/model"
)

// OperatorTableVersion identifies the built-in operator table.
const OperatorTableVersion = "pitest-1.15"

const (
	gregorPackage       = "org.pitest.mutationtest.engine.gregor.mutators."
	gregorReturns       = gregorPackage + "returns."
	gregorExperimental  = gregorPackage + "experimental."
	suffixSeparator     = "_"
	operatorKeyCapacity = 3
)

// operatorTable lists one entry per supported engine mutator.
var operatorTable = []*m.MutationOperator{
	m.NewMutationOperator("CONDITIONALS_BOUNDARY", "Conditionals Boundary", gregorPackage+"ConditionalsBoundaryMutator",
		m.CategoryConditionals, "Replaces relational operators with their boundary counterpart"),
	m.NewMutationOperator("INCREMENTS", "Increments", gregorPackage+"IncrementsMutator",
		m.CategoryIncrements, "Turns increments of local variables into decrements and vice versa"),
	m.NewMutationOperator("INVERT_NEGS", "Invert Negatives", gregorPackage+"InvertNegsMutator",
		m.CategoryArithmetic, "Inverts negation of integer and floating point numbers"),
	m.NewMutationOperator("MATH", "Math", gregorPackage+"MathMutator",
		m.CategoryArithmetic, "Replaces binary arithmetic operations with another operation"),
	m.NewMutationOperator("NEGATE_CONDITIONALS", "Negate Conditionals", gregorPackage+"NegateConditionalsMutator",
		m.CategoryConditionals, "Negates all conditionals"),
	m.NewMutationOperator("VOID_METHOD_CALLS", "Void Method Calls", gregorPackage+"VoidMethodCallMutator",
		m.CategoryMethodCalls, "Removes calls to void methods"),
	m.NewMutationOperator("EMPTY_RETURNS", "Empty Returns", gregorReturns+"EmptyObjectReturnValsMutator",
		m.CategoryReturnValues, "Replaces return values with an empty value for the type"),
	m.NewMutationOperator("FALSE_RETURNS", "False Returns", gregorReturns+"BooleanFalseReturnValsMutator",
		m.CategoryReturnValues, "Replaces primitive and boxed boolean return values with false"),
	m.NewMutationOperator("TRUE_RETURNS", "True Returns", gregorReturns+"BooleanTrueReturnValsMutator",
		m.CategoryReturnValues, "Replaces primitive and boxed boolean return values with true"),
	m.NewMutationOperator("NULL_RETURNS", "Null Returns", gregorReturns+"NullReturnValsMutator",
		m.CategoryReturnValues, "Replaces object return values with null"),
	m.NewMutationOperator("PRIMITIVE_RETURNS", "Primitive Returns", gregorReturns+"PrimitiveReturnsMutator",
		m.CategoryReturnValues, "Replaces numeric return values with 0"),
	m.NewMutationOperator("RETURN_VALS", "Return Values", gregorPackage+"ReturnValsMutator",
		m.CategoryReturnValues, "Mutates the return values of method calls"),
	m.NewMutationOperator("CONSTRUCTOR_CALLS", "Constructor Calls", gregorPackage+"ConstructorCallMutator",
		m.CategoryMethodCalls, "Replaces constructor calls with null values"),
	m.NewMutationOperator("INLINE_CONSTS", "Inline Constants", gregorPackage+"InlineConstantMutator",
		m.CategoryConstants, "Mutates inline constants"),
	m.NewMutationOperator("NON_VOID_METHOD_CALLS", "Non-Void Method Calls", gregorPackage+"NonVoidMethodCallMutator",
		m.CategoryMethodCalls, "Removes calls to non-void methods, using the default value of the return type"),
	m.NewMutationOperator("REMOVE_CONDITIONALS", "Remove Conditionals", gregorPackage+"RemoveConditionalMutator",
		m.CategoryConditionals, "Forces conditional branches to always or never execute"),
	m.NewMutationOperator("REMOVE_INCREMENTS", "Remove Increments", gregorPackage+"RemoveIncrementsMutator",
		m.CategoryIncrements, "Removes local variable increments"),
	m.NewMutationOperator("ARGUMENT_PROPAGATION", "Argument Propagation", gregorExperimental+"ArgumentPropagationMutator",
		m.CategoryMethodCalls, "Replaces method calls with one of their arguments of matching type"),
	m.NewMutationOperator("EXPERIMENTAL_MEMBER_VARIABLE", "Member Variable", gregorExperimental+"MemberVariableMutator",
		m.CategoryMembers, "Removes assignments to member variables"),
	m.NewMutationOperator("EXPERIMENTAL_SWITCH", "Switch", gregorExperimental+"SwitchMutator",
		m.CategorySwitch, "Replaces the default switch label with the first non-default label"),
	m.NewMutationOperator("EXPERIMENTAL_NAKED_RECEIVER", "Naked Receiver", gregorExperimental+"NakedReceiverMutator",
		m.CategoryMethodCalls, "Replaces method calls returning the receiver type with the receiver"),
}

// OperatorRegistry is an immutable catalog of mutation operators. Each
// operator is reachable by its id, its engine class name and its simple class
// name. It is safe for concurrent use.
type OperatorRegistry struct {
	operators []*m.MutationOperator
	byKey     map[string]*m.MutationOperator
	// keys ordered longest first so the first prefix hit is the longest one.
	keys []string
}

// NewOperatorRegistry builds a registry. Keys shared by two operators are rejected.
func NewOperatorRegistry(operators ...*m.MutationOperator) (*OperatorRegistry, error) {
	registry := &OperatorRegistry{
		operators: slices.Clone(operators),
		byKey:     make(map[string]*m.MutationOperator, len(operators)*operatorKeyCapacity),
	}

	for _, operator := range operators {
		for _, key := range operatorKeys(operator) {
			if existing, ok := registry.byKey[key]; ok && existing != operator {
				return nil, fmt.Errorf("duplicate operator key %q (%s, %s)", key, existing.ID(), operator.ID())
			}

			registry.byKey[key] = operator
		}
	}

	registry.keys = make([]string, 0, len(registry.byKey))
	for key := range registry.byKey {
		registry.keys = append(registry.keys, key)
	}

	slices.SortFunc(registry.keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}

		return strings.Compare(a, b)
	})

	return registry, nil
}

func operatorKeys(operator *m.MutationOperator) []string {
	keys := make([]string, 0, operatorKeyCapacity)
	if operator.ID() != "" {
		keys = append(keys, operator.ID())
	}

	className := operator.ClassName()
	if className != "" {
		keys = append(keys, className)

		if dot := strings.LastIndexByte(className, '.'); dot >= 0 && dot < len(className)-1 {
			keys = append(keys, className[dot+1:])
		}
	}

	return slices.Compact(keys)
}

// Lookup resolves identifier to an operator and suffix. An exact key match
// wins; otherwise the longest key followed by an underscore is used and the
// rest of the identifier becomes the suffix.
func (r *OperatorRegistry) Lookup(identifier string) (m.OperatorMatch, error) {
	if operator, ok := r.byKey[identifier]; ok {
		return m.OperatorMatch{Operator: operator}, nil
	}

	for _, key := range r.keys {
		if len(identifier) <= len(key)+len(suffixSeparator) {
			continue
		}

		if strings.HasPrefix(identifier, key+suffixSeparator) {
			return m.OperatorMatch{
				Operator: r.byKey[key],
				Suffix:   identifier[len(key)+len(suffixSeparator):],
			}, nil
		}
	}

	return m.OperatorMatch{}, m.OperatorNotFoundError(identifier)
}

// Find resolves identifier and drops the suffix.
func (r *OperatorRegistry) Find(identifier string) (*m.MutationOperator, error) {
	match, err := r.Lookup(identifier)
	if err != nil {
		return nil, err
	}

	return match.Operator, nil
}

// All returns the registered operators in table order.
func (r *OperatorRegistry) All() []*m.MutationOperator {
	return slices.Clone(r.operators)
}

var defaultRegistry = sync.OnceValue(func() *OperatorRegistry {
	registry, err := NewOperatorRegistry(operatorTable...)
	if err != nil {
		panic(fmt.Sprintf("invalid operator table %s: %v", OperatorTableVersion, err))
	}

	return registry
})

// Operators returns the process-wide registry built from the operator table.
func Operators() *OperatorRegistry {
	return defaultRegistry()
}

// FindOperator resolves identifier against the default registry.
func FindOperator(identifier string) (*m.MutationOperator, error) {
	return Operators().Find(identifier)
}

// LookupOperator resolves identifier and suffix against the default registry.
func LookupOperator(identifier string) (m.OperatorMatch, error) {
	return Operators().Lookup(identifier)
}

// NewMutantBuilder returns a builder resolving mutators with the default registry.
func NewMutantBuilder() *m.MutantBuilder {
	return m.NewMutantBuilder(Operators())
}
