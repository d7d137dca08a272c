package adapter

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	m "gooze.dev/pkg/mutanalysis/internal/model"
)

const metricsNamespace = "mutanalysis"

// Metrics records ingestion counters and analysis gauges.
type Metrics interface {
	ReportParsed()
	MutantBuilt(state m.State)
	RecordSkipped(reason string)
	ObserveAnalysis(analysis m.Analysis)
	WriteTextfile(path m.Path) error
}

// PrometheusMetrics keeps its collectors in a private registry so several
// analyses in one process do not collide.
type PrometheusMetrics struct {
	registry *prometheus.Registry

	reportsParsed  prometheus.Counter
	mutants        *prometheus.CounterVec
	recordsSkipped *prometheus.CounterVec
	findings       *prometheus.CounterVec
	fileScore      *prometheus.GaugeVec
	totalScore     prometheus.Gauge
}

// NewPrometheusMetrics creates and registers all collectors.
func NewPrometheusMetrics() *PrometheusMetrics {
	pm := &PrometheusMetrics{
		registry: prometheus.NewRegistry(),
		reportsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "reports_parsed_total",
			Help:      "Number of mutation reports parsed.",
		}),
		mutants: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "mutants_total",
			Help:      "Number of mutants built, by survival state.",
		}, []string{"state"}),
		recordsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "records_skipped_total",
			Help:      "Number of report records that could not be turned into mutants.",
		}, []string{"reason"}),
		findings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "findings_total",
			Help:      "Number of findings, by rule.",
		}, []string{"rule"}),
		fileScore: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "file_score",
			Help:      "Mutation score per source file.",
		}, []string{"file"}),
		totalScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "score",
			Help:      "Mutation score over all analysed mutants.",
		}),
	}

	pm.registry.MustRegister(pm.reportsParsed, pm.mutants, pm.recordsSkipped, pm.findings, pm.fileScore, pm.totalScore)

	return pm
}

// ReportParsed counts one parsed report.
func (pm *PrometheusMetrics) ReportParsed() {
	pm.reportsParsed.Inc()
}

// MutantBuilt counts one mutant.
func (pm *PrometheusMetrics) MutantBuilt(state m.State) {
	pm.mutants.WithLabelValues(state.String()).Inc()
}

// RecordSkipped counts one skipped record.
func (pm *PrometheusMetrics) RecordSkipped(reason string) {
	pm.recordsSkipped.WithLabelValues(reason).Inc()
}

// ObserveAnalysis sets the score gauges and counts findings.
func (pm *PrometheusMetrics) ObserveAnalysis(analysis m.Analysis) {
	pm.totalScore.Set(analysis.Aggregate.Score)

	pm.fileScore.Reset()

	for _, file := range analysis.Aggregate.Files {
		pm.fileScore.WithLabelValues(file.Path).Set(file.Score)
	}

	for _, finding := range analysis.Findings {
		pm.findings.WithLabelValues(finding.RuleKey).Inc()
	}
}

// WriteTextfile writes all metrics in the node-exporter textfile format.
func (pm *PrometheusMetrics) WriteTextfile(path m.Path) error {
	if err := prometheus.WriteToTextfile(string(path), pm.registry); err != nil {
		slog.Error("Failed to write metrics textfile", "path", path, "error", err)
		return fmt.Errorf("write metrics: %w", err)
	}

	return nil
}

// Gatherer exposes the private registry.
func (pm *PrometheusMetrics) Gatherer() prometheus.Gatherer {
	return pm.registry
}
