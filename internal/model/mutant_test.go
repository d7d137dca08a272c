package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver map[string]OperatorMatch

func (r stubResolver) Lookup(identifier string) (OperatorMatch, error) {
	if match, ok := r[identifier]; ok {
		return match, nil
	}

	return OperatorMatch{}, OperatorNotFoundError(identifier)
}

var testOperator = NewMutationOperator("MATH", "Math", "org.pitest.mutationtest.engine.gregor.mutators.MathMutator", CategoryArithmetic, "Replaces binary arithmetic operations")

func TestMutantBuilder_Build(t *testing.T) {
	resolver := stubResolver{
		"org.pitest.mutationtest.engine.gregor.mutators.MathMutator": {Operator: testOperator},
	}

	mutant, err := NewMutantBuilder(resolver).
		InSourceFile("Calc.java").
		InClass("com.example.Calc").
		InMethod("add").
		WithMethodDescription("(II)I").
		InLine(12).
		AtIndex(3).
		WithStatus("KILLED").
		Detected(true).
		KilledBy("com.example.CalcTest.testAdd(com.example.CalcTest)").
		UsingMutator("org.pitest.mutationtest.engine.gregor.mutators.MathMutator").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "Calc.java", mutant.SourceFile())
	assert.Equal(t, "com.example.Calc", mutant.MutatedClass())
	assert.Equal(t, "add", mutant.MutatedMethod())
	assert.Equal(t, "(II)I", mutant.MethodDescription())
	assert.Equal(t, 12, mutant.LineNumber())
	assert.Equal(t, 3, mutant.Index())
	assert.Equal(t, StateKilled, mutant.State())
	assert.True(t, mutant.Detected())
	assert.Same(t, testOperator, mutant.Operator())
	assert.Empty(t, mutant.OperatorSuffix())
	assert.Equal(t, "com/example/Calc.java", mutant.SourcePath())
	assert.Equal(t, "KILLED MATH com.example.Calc.add:12", mutant.String())
}

func TestMutantBuilder_Defaults(t *testing.T) {
	mutant, err := NewMutantBuilder(nil).Build()
	require.NoError(t, err)

	assert.Equal(t, StateUnknown, mutant.State())
	assert.Nil(t, mutant.Operator())
	assert.Zero(t, mutant.LineNumber())
	assert.False(t, mutant.Detected())
	assert.Equal(t, "UNKNOWN <none> .:0", mutant.String())
}

func TestMutantBuilder_NegativeValuesClamp(t *testing.T) {
	mutant, err := NewMutantBuilder(nil).InLine(-4).AtIndex(-1).Build()
	require.NoError(t, err)

	assert.Zero(t, mutant.LineNumber())
	assert.Zero(t, mutant.Index())
}

func TestMutantBuilder_UnknownMutator(t *testing.T) {
	_, err := NewMutantBuilder(stubResolver{}).UsingMutator("NOT_A_REAL_MUTATOR").Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOperatorNotFound))

	_, err = NewMutantBuilder(nil).UsingMutator("MATH").Build()
	assert.ErrorIs(t, err, ErrOperatorNotFound)
}

func TestMutantBuilder_UsingOperatorClearsLookupError(t *testing.T) {
	mutant, err := NewMutantBuilder(stubResolver{}).
		UsingMutator("NOT_A_REAL_MUTATOR").
		UsingOperator(testOperator).
		Build()
	require.NoError(t, err)
	assert.Same(t, testOperator, mutant.Operator())
}

func TestMutantBuilder_Suffix(t *testing.T) {
	resolver := stubResolver{"MATH_EXTRA": {Operator: testOperator, Suffix: "EXTRA"}}

	mutant, err := NewMutantBuilder(resolver).UsingMutator("MATH_EXTRA").WithState(StateSurvived).Build()
	require.NoError(t, err)

	assert.Equal(t, "EXTRA", mutant.OperatorSuffix())
	assert.Equal(t, "SURVIVED MATH_EXTRA .:0", mutant.String())
}

func TestMutantBuilder_FromRecord(t *testing.T) {
	resolver := stubResolver{"MATH": {Operator: testOperator}}

	record := MutantRecord{
		Report:           "target/pit-reports/mutations.xml",
		SourceFile:       "Calc.java",
		ClassName:        "com.example.Calc",
		MethodName:       "add",
		MethodDescriptor: "(II)I",
		LineNumber:       7,
		MutatorIndex:     2,
		Mutator:          "MATH",
		Status:           "NO_COVERAGE",
		KillingTest:      "",
	}

	mutant, err := NewMutantBuilder(resolver).FromRecord(record).Build()
	require.NoError(t, err)

	assert.Equal(t, StateNoCoverage, mutant.State())
	assert.Equal(t, 7, mutant.LineNumber())
	assert.Equal(t, 2, mutant.Index())
	assert.Same(t, testOperator, mutant.Operator())
}

func TestMutant_SourcePath(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		class string
		want  string
	}{
		{"package qualified", "Util.java", "com.example.util.Util", "com/example/util/Util.java"},
		{"default package", "Util.java", "Util", "Util.java"},
		{"already a path", "src/Util.java", "com.example.Util", "src/Util.java"},
		{"no file", "", "com.example.Util", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mutant, err := NewMutantBuilder(nil).InSourceFile(tt.file).InClass(tt.class).Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, mutant.SourcePath())
		})
	}
}

func TestParseTestDescriptor(t *testing.T) {
	tests := []struct {
		spec   string
		class  string
		method string
	}{
		{"com.example.FooTest.testBar(com.example.FooTest)", "com.example.FooTest", "testBar"},
		{"testBar(com.example.FooTest)", "com.example.FooTest", "testBar"},
		{"com.example.FooTest.[engine:junit-jupiter]/[class:com.example.FooTest]/[method:testBar()]", "com.example.FooTest", "testBar"},
		{"com.example.FooTest.[engine:junit-jupiter]/[class:com.example.FooTest]", "com.example.FooTest", ""},
		{"com.example.FooTest", "com.example.FooTest", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			descriptor := ParseTestDescriptor(tt.spec)
			assert.Equal(t, tt.spec, descriptor.Spec)
			assert.Equal(t, tt.class, descriptor.Class)
			assert.Equal(t, tt.method, descriptor.Method)
		})
	}
}

func TestMutationOperator_String(t *testing.T) {
	var nilOperator *MutationOperator

	assert.Equal(t, "<none>", nilOperator.String())
	assert.Equal(t, "MATH", testOperator.String())
	assert.Equal(t, CategoryArithmetic, testOperator.Category())
}

func TestParseSeverity(t *testing.T) {
	severity, err := ParseSeverity("major")
	require.NoError(t, err)
	assert.Equal(t, SeverityMajor, severity)

	_, err = ParseSeverity("severe")
	assert.Error(t, err)
}
