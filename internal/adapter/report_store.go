package adapter

import (
	"bytes"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
	m "gooze.dev/pkg/mutanalysis/internal/model"
)

// AnalysisFileName is the file an analysis is stored in inside a results directory.
const AnalysisFileName = "analysis.yaml"

// ReportStore persists analysis results in a results directory.
type ReportStore interface {
	SaveAnalysis(dir m.Path, analysis m.Analysis) error
	LoadAnalysis(dir m.Path) (m.Analysis, error)
}

type yamlReportStore struct {
	fs ReportFSAdapter
}

// NewReportStore creates a ReportStore writing YAML through fs.
func NewReportStore(fs ReportFSAdapter) ReportStore {
	return &yamlReportStore{fs: fs}
}

func (s *yamlReportStore) SaveAnalysis(dir m.Path, analysis m.Analysis) error {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(analysis); err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}

	path := s.fs.JoinPath(string(dir), AnalysisFileName)
	if err := s.fs.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		slog.Error("Failed to write analysis", "path", path, "error", err)
		return fmt.Errorf("write analysis: %w", err)
	}

	slog.Debug("Saved analysis", "path", path, "runID", analysis.RunID)

	return nil
}

func (s *yamlReportStore) LoadAnalysis(dir m.Path) (m.Analysis, error) {
	path := s.fs.JoinPath(string(dir), AnalysisFileName)

	content, err := s.fs.ReadFile(path)
	if err != nil {
		return m.Analysis{}, fmt.Errorf("read analysis: %w", err)
	}

	var analysis m.Analysis
	if err := yaml.Unmarshal(content, &analysis); err != nil {
		return m.Analysis{}, fmt.Errorf("decode analysis %s: %w", path, err)
	}

	return analysis, nil
}
