package model

// MutantRecord is one raw mutant entry as read from a mutation report.
// Fields are exported so records can be spilled to disk between parsing and
// building.
type MutantRecord struct {
	Report           Path
	SourceFile       string
	ClassName        string
	MethodName       string
	MethodDescriptor string
	LineNumber       int
	MutatorIndex     int
	Mutator          string
	Status           string
	Detected         bool
	KillingTest      string
	Description      string
}
