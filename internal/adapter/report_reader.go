package adapter

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	m "gooze.dev/pkg/mutanalysis/internal/model"
)

const mutationElement = "mutation"

// ReportReader streams raw mutant records out of a mutation report.
type ReportReader interface {
	ReadReport(ctx context.Context, report m.ReportFile, fn func(m.MutantRecord) error) error
}

// pitMutation mirrors one <mutation> element of a PIT XML report. Numbers are
// kept as text so a malformed value only loses that field.
type pitMutation struct {
	Detected          string   `xml:"detected,attr"`
	Status            string   `xml:"status,attr"`
	SourceFile        string   `xml:"sourceFile"`
	MutatedClass      string   `xml:"mutatedClass"`
	MutatedMethod     string   `xml:"mutatedMethod"`
	MethodDescription string   `xml:"methodDescription"`
	LineNumber        string   `xml:"lineNumber"`
	Mutator           string   `xml:"mutator"`
	Index             string   `xml:"index"`
	Indexes           []string `xml:"indexes>index"`
	KillingTest       string   `xml:"killingTest"`
	KillingTests      string   `xml:"killingTests"`
	Description       string   `xml:"description"`
}

// PitReportReader reads PIT mutations.xml reports.
type PitReportReader struct {
	fs ReportFSAdapter
}

// NewPitReportReader creates a reader opening reports through fs.
func NewPitReportReader(fs ReportFSAdapter) *PitReportReader {
	return &PitReportReader{fs: fs}
}

// ReadReport implements ReportReader.
func (r *PitReportReader) ReadReport(ctx context.Context, report m.ReportFile, fn func(m.MutantRecord) error) error {
	file, err := r.fs.Open(report.FullPath)
	if err != nil {
		slog.Error("Failed to open report", "report", report.FullPath, "error", err)
		return fmt.Errorf("open report %s: %w", report.ShortPath, err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close report", "report", report.FullPath, "error", err)
		}
	}()

	if err := DecodeReport(ctx, file, report.ShortPath, fn); err != nil {
		return fmt.Errorf("read report %s: %w", report.ShortPath, err)
	}

	return nil
}

// DecodeReport decodes <mutation> elements from r one at a time and passes
// each record to fn.
func DecodeReport(ctx context.Context, r io.Reader, reportPath m.Path, fn func(m.MutantRecord) error) error {
	decoder := xml.NewDecoder(r)
	count := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("decode xml: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != mutationElement {
			continue
		}

		var mutation pitMutation
		if err := decoder.DecodeElement(&mutation, &start); err != nil {
			return fmt.Errorf("decode mutation %d: %w", count, err)
		}

		if err := fn(mutation.record(reportPath)); err != nil {
			return err
		}

		count++
	}

	slog.Debug("Decoded report", "report", reportPath, "mutations", count)

	return nil
}

func (p pitMutation) record(reportPath m.Path) m.MutantRecord {
	index := p.Index
	if strings.TrimSpace(index) == "" && len(p.Indexes) > 0 {
		index = p.Indexes[0]
	}

	killingTest := strings.TrimSpace(p.KillingTest)
	if killingTest == "" {
		// newer reports list all killing tests separated by '|'
		killingTest, _, _ = strings.Cut(strings.TrimSpace(p.KillingTests), "|")
	}

	return m.MutantRecord{
		Report:           reportPath,
		SourceFile:       strings.TrimSpace(p.SourceFile),
		ClassName:        strings.TrimSpace(p.MutatedClass),
		MethodName:       strings.TrimSpace(p.MutatedMethod),
		MethodDescriptor: strings.TrimSpace(p.MethodDescription),
		LineNumber:       parseNonNegative(p.LineNumber),
		MutatorIndex:     parseNonNegative(index),
		Mutator:          strings.TrimSpace(p.Mutator),
		Status:           strings.TrimSpace(p.Status),
		Detected:         parseBool(p.Detected),
		KillingTest:      killingTest,
		Description:      strings.TrimSpace(p.Description),
	}
}

func parseNonNegative(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}

	return n
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false
	}

	return b
}
