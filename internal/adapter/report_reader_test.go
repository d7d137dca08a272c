package adapter

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/mutanalysis/internal/model"
)

const sampleReport = `<?xml version="1.0" encoding="UTF-8"?>
<mutations>
<mutation detected='true' status='KILLED' numberOfTestsRun='2'>
  <sourceFile>Calculator.java</sourceFile>
  <mutatedClass>com.example.Calculator</mutatedClass>
  <mutatedMethod>add</mutatedMethod>
  <methodDescription>(II)I</methodDescription>
  <lineNumber>12</lineNumber>
  <mutator>org.pitest.mutationtest.engine.gregor.mutators.MathMutator</mutator>
  <index>5</index>
  <block>0</block>
  <killingTest>com.example.CalculatorTest.testAdd(com.example.CalculatorTest)</killingTest>
  <description>Replaced integer addition with subtraction</description>
</mutation>
<mutation detected='false' status='SURVIVED' numberOfTestsRun='1'>
  <sourceFile>Calculator.java</sourceFile>
  <mutatedClass>com.example.Calculator</mutatedClass>
  <mutatedMethod>isPositive</mutatedMethod>
  <methodDescription>(I)Z</methodDescription>
  <lineNumber>abc</lineNumber>
  <mutator>org.pitest.mutationtest.engine.gregor.mutators.RemoveConditionalMutator_ORDER_ELSE</mutator>
  <indexes><index>7</index><index>8</index></indexes>
  <killingTests/>
  <description>removed conditional - replaced comparison check with false</description>
</mutation>
<mutation detected='false' status='NO_COVERAGE'>
  <sourceFile>Calculator.java</sourceFile>
  <mutatedClass>com.example.Calculator</mutatedClass>
  <mutatedMethod>unused</mutatedMethod>
  <mutator>VOID_METHOD_CALLS</mutator>
  <killingTests>com.example.ATest.a(com.example.ATest)|com.example.BTest.b(com.example.BTest)</killingTests>
</mutation>
</mutations>`

func decodeAll(t *testing.T, report string) []m.MutantRecord {
	t.Helper()

	var records []m.MutantRecord
	err := DecodeReport(context.Background(), strings.NewReader(report), "target/mutations.xml", func(record m.MutantRecord) error {
		records = append(records, record)
		return nil
	})
	require.NoError(t, err)

	return records
}

func TestDecodeReport(t *testing.T) {
	records := decodeAll(t, sampleReport)
	require.Len(t, records, 3)

	killed := records[0]
	assert.Equal(t, m.Path("target/mutations.xml"), killed.Report)
	assert.Equal(t, "Calculator.java", killed.SourceFile)
	assert.Equal(t, "com.example.Calculator", killed.ClassName)
	assert.Equal(t, "add", killed.MethodName)
	assert.Equal(t, "(II)I", killed.MethodDescriptor)
	assert.Equal(t, 12, killed.LineNumber)
	assert.Equal(t, 5, killed.MutatorIndex)
	assert.Equal(t, "org.pitest.mutationtest.engine.gregor.mutators.MathMutator", killed.Mutator)
	assert.Equal(t, "KILLED", killed.Status)
	assert.True(t, killed.Detected)
	assert.Equal(t, "com.example.CalculatorTest.testAdd(com.example.CalculatorTest)", killed.KillingTest)
	assert.Equal(t, "Replaced integer addition with subtraction", killed.Description)

	survived := records[1]
	assert.Equal(t, 0, survived.LineNumber, "malformed numbers decode as 0")
	assert.Equal(t, 7, survived.MutatorIndex, "first entry of indexes is used")
	assert.False(t, survived.Detected)
	assert.Equal(t, "", survived.KillingTest)

	uncovered := records[2]
	assert.Equal(t, 0, uncovered.LineNumber)
	assert.Equal(t, 0, uncovered.MutatorIndex)
	assert.Equal(t, "com.example.ATest.a(com.example.ATest)", uncovered.KillingTest)
}

func TestDecodeReport_CallbackErrorStops(t *testing.T) {
	stop := errors.New("stop")
	calls := 0

	err := DecodeReport(context.Background(), strings.NewReader(sampleReport), "r", func(m.MutantRecord) error {
		calls++
		return stop
	})

	require.ErrorIs(t, err, stop)
	require.Equal(t, 1, calls)
}

func TestDecodeReport_InvalidXML(t *testing.T) {
	err := DecodeReport(context.Background(), strings.NewReader("<mutations><mutation>"), "r", func(m.MutantRecord) error {
		return nil
	})

	require.Error(t, err)
}

func TestDecodeReport_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := DecodeReport(ctx, strings.NewReader(sampleReport), "r", func(m.MutantRecord) error {
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
}

func TestPitReportReader_ReadReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultReportName)
	writeTestFile(t, path, sampleReport)

	reader := NewPitReportReader(NewLocalReportFSAdapter())

	var records []m.MutantRecord
	err := reader.ReadReport(context.Background(), m.ReportFile{ShortPath: "mutations.xml", FullPath: m.Path(path)}, func(record m.MutantRecord) error {
		records = append(records, record)
		return nil
	})

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, m.Path("mutations.xml"), records[0].Report)

	err = reader.ReadReport(context.Background(), m.ReportFile{FullPath: m.Path(filepath.Join(dir, "missing.xml"))}, func(m.MutantRecord) error {
		return nil
	})
	require.Error(t, err)
}
