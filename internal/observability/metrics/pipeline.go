package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/domain"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/ports"
)

type pipelineCollectors struct {
	service string

	documentsTotal     *prometheus.CounterVec
	documentDuration   *prometheus.HistogramVec
	documentsInFlight  prometheus.Gauge
	extractionOutcomes *prometheus.CounterVec
	upstreamAttempts   *prometheus.CounterVec
	upstreamDuration   *prometheus.HistogramVec
}

func newPipelineCollectors(service string, registry *prometheus.Registry) *pipelineCollectors {
	c := &pipelineCollectors{
		service: service,
		documentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pipeline",
				Name:      "documents_total",
				Help:      "Total processed documents by category and result kind.",
			},
			[]string{"service", "category", "status"},
		),
		documentDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "pipeline",
				Name:      "document_duration_seconds",
				Help:      "Document processing duration in seconds by status.",
				Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30, 60, 120},
			},
			[]string{"service", "status"},
		),
		documentsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "pipeline",
				Name:      "documents_in_flight",
				Help:      "Number of documents currently in the pipeline.",
				ConstLabels: prometheus.Labels{
					"service": service,
				},
			},
		),
		extractionOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pipeline",
				Name:      "extraction_outcomes_total",
				Help:      "Content resolution outcomes by category.",
			},
			[]string{"service", "category", "outcome"},
		),
		upstreamAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "upstream",
				Name:      "attempts_total",
				Help:      "Completion attempts against the language model by outcome.",
			},
			[]string{"service", "outcome"},
		),
		upstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "upstream",
				Name:      "attempt_duration_seconds",
				Help:      "Single completion attempt duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"service", "outcome"},
		),
	}

	registry.MustRegister(
		c.documentsTotal,
		c.documentDuration,
		c.documentsInFlight,
		c.extractionOutcomes,
		c.upstreamAttempts,
		c.upstreamDuration,
	)
	return c
}

// ObserveUpstreamAttempt records one try of the completion gateway.
func (m *HTTPServerMetrics) ObserveUpstreamAttempt(outcome string, d time.Duration) {
	p := m.pipeline
	p.upstreamAttempts.WithLabelValues(p.service, outcome).Inc()
	p.upstreamDuration.WithLabelValues(p.service, outcome).Observe(d.Seconds())
}

func (m *HTTPServerMetrics) RecordDocument(outcome *domain.ProcessingOutcome, err error, d time.Duration) {
	p := m.pipeline
	status := "ok"
	category := "unknown"
	if err != nil {
		status = domain.KindOf(err)
	}
	if outcome != nil {
		if outcome.Category != "" {
			category = string(outcome.Category)
		}
		p.extractionOutcomes.WithLabelValues(p.service, category, string(outcome.Extraction)).Inc()
	}
	p.documentsTotal.WithLabelValues(p.service, category, status).Inc()
	p.documentDuration.WithLabelValues(p.service, status).Observe(d.Seconds())
}

// InstrumentProcessor wraps a processor so every call is counted and timed.
func (m *HTTPServerMetrics) InstrumentProcessor(next ports.DocumentProcessor) ports.DocumentProcessor {
	return &instrumentedProcessor{next: next, metrics: m}
}

type instrumentedProcessor struct {
	next    ports.DocumentProcessor
	metrics *HTTPServerMetrics
}

func (p *instrumentedProcessor) Process(ctx context.Context, doc domain.UploadedDocument, taskTag string) (*domain.ProcessingOutcome, error) {
	gauge := p.metrics.pipeline.documentsInFlight
	gauge.Inc()
	defer gauge.Dec()

	start := time.Now()
	outcome, err := p.next.Process(ctx, doc, taskTag)
	p.metrics.RecordDocument(outcome, err, time.Since(start))
	return outcome, err
}
