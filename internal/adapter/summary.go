package adapter

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	m "gooze.dev/pkg/mutanalysis/internal/model"
)

const summaryTemplate = `# Mutation analysis {{ .RunID | trunc 8 }}

Generated {{ .CreatedAt.Format "2006-01-02 15:04:05 MST" }} from {{ len .Reports }} {{ if eq (len .Reports) 1 }}report{{ else }}reports{{ end }}.

**Score:** {{ pct .Aggregate.Score }} ({{ .Aggregate.Total.Detected }} detected of {{ evaluated .Aggregate }} evaluated)
{{- if gt .SkippedRecords 0 }}

Skipped records: {{ .SkippedRecords }}
{{- end }}

| File | Killed | Survived | No coverage | Timed out | Memory error | Unknown | Score |
|------|-------:|---------:|------------:|----------:|-------------:|--------:|------:|
{{- range .Aggregate.Files }}
| {{ .Path }} | {{ .Stats.Killed }} | {{ .Stats.Survived }} | {{ .Stats.NoCoverage }} | {{ .Stats.TimedOut }} | {{ .Stats.MemoryError }} | {{ .Stats.Unknown }} | {{ pct .Score }} |
{{- end }}
{{- if .Findings }}

## Findings ({{ len .Findings }})
{{ range .Findings }}
- **{{ .Severity | toString | upper }}** ` + "`{{ .RuleKey }}`" + ` {{ .SourcePath }}{{ if .Line }}:{{ .Line }}{{ end }} {{ .Message }}
{{- end }}
{{- end }}
`

// SummaryRenderer renders an analysis as a markdown document.
type SummaryRenderer interface {
	Render(analysis m.Analysis) ([]byte, error)
}

// MarkdownSummaryRenderer renders summaries with text/template and sprig.
type MarkdownSummaryRenderer struct {
	tmpl *template.Template
}

// NewMarkdownSummaryRenderer parses the built-in summary template.
func NewMarkdownSummaryRenderer() (*MarkdownSummaryRenderer, error) {
	funcs := sprig.TxtFuncMap()
	funcs["pct"] = func(score float64) string {
		return fmt.Sprintf("%.2f%%", score*100)
	}
	funcs["evaluated"] = func(aggregate m.Aggregate) int {
		return aggregate.Policy.Evaluated(aggregate.Total)
	}

	tmpl, err := template.New("summary").Funcs(funcs).Parse(summaryTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse summary template: %w", err)
	}

	return &MarkdownSummaryRenderer{tmpl: tmpl}, nil
}

// Render executes the summary template for analysis.
func (r *MarkdownSummaryRenderer) Render(analysis m.Analysis) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, analysis); err != nil {
		return nil, fmt.Errorf("render summary: %w", err)
	}

	return buf.Bytes(), nil
}
