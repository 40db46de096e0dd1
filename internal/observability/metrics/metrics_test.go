package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"

	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/domain"
)

type processorFake struct {
	outcome *domain.ProcessingOutcome
	err     error
}

func (f processorFake) Process(context.Context, domain.UploadedDocument, string) (*domain.ProcessingOutcome, error) {
	return f.outcome, f.err
}

func counterValue(t *testing.T, m *HTTPServerMetrics, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := m.registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if matchLabels(metric, labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func matchLabels(metric *dto.Metric, labels map[string]string) bool {
	matched := 0
	for _, pair := range metric.GetLabel() {
		if want, ok := labels[pair.GetName()]; ok {
			if want != pair.GetValue() {
				return false
			}
			matched++
		}
	}
	return matched == len(labels)
}

func TestInstrumentProcessorRecordsOutcome(t *testing.T) {
	m := NewHTTPServerMetrics("api")
	processor := m.InstrumentProcessor(processorFake{outcome: &domain.ProcessingOutcome{
		Category:   domain.CategoryWordProcessing,
		Extraction: domain.OutcomeFailed,
	}})

	if _, err := processor.Process(context.Background(), domain.UploadedDocument{}, ""); err != nil {
		t.Fatalf("process: %v", err)
	}

	got := counterValue(t, m, "airename_pipeline_documents_total", map[string]string{"category": string(domain.CategoryWordProcessing), "status": "ok"})
	if got != 1 {
		t.Fatalf("expected one ok document, got %v", got)
	}
	got = counterValue(t, m, "airename_pipeline_extraction_outcomes_total", map[string]string{"outcome": "failed"})
	if got != 1 {
		t.Fatalf("expected one failed extraction, got %v", got)
	}
}

func TestInstrumentProcessorRecordsErrorKind(t *testing.T) {
	m := NewHTTPServerMetrics("api")
	processor := m.InstrumentProcessor(processorFake{err: domain.WrapError(domain.ErrTimeout, "deepseek.chat", errors.New("slow"))})

	if _, err := processor.Process(context.Background(), domain.UploadedDocument{}, ""); !errors.Is(err, domain.ErrTimeout) {
		t.Fatalf("expected timeout to pass through, got %v", err)
	}
	got := counterValue(t, m, "airename_pipeline_documents_total", map[string]string{"category": "unknown", "status": "timeout"})
	if got != 1 {
		t.Fatalf("expected one timeout document, got %v", got)
	}
}

func TestObserveUpstreamAttempt(t *testing.T) {
	m := NewHTTPServerMetrics("api")
	m.ObserveUpstreamAttempt("ok", 10*time.Millisecond)
	m.ObserveUpstreamAttempt("connection", time.Millisecond)
	m.ObserveUpstreamAttempt("connection", time.Millisecond)

	if got := counterValue(t, m, "airename_upstream_attempts_total", map[string]string{"outcome": "connection"}); got != 2 {
		t.Fatalf("expected two connection attempts, got %v", got)
	}
}

func TestMiddlewareNormalizesProcessPath(t *testing.T) {
	m := NewHTTPServerMetrics("api")
	handler := m.Middleware("api", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/process-document", nil))

	got := counterValue(t, m, "airename_http_requests_total", map[string]string{"path": "/api/process-document/", "status": "418"})
	if got != 1 {
		t.Fatalf("expected one request sample, got %v", got)
	}

	rec = httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "airename_http_requests_total") {
		t.Fatalf("metrics output missing request counter")
	}
}
