package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/config"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/domain"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/ports"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/usecase"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/observability/metrics"
)

const (
	processPath     = "/api/process-document/"
	defaultFileType = "通用文档"
	serviceName     = "airename-api"

	// multipartOverhead covers boundaries and form fields around the file.
	multipartOverhead  int64 = 1 << 20
	multipartMemoryMax int64 = 32 << 20
)

type Router struct {
	cfg       config.Config
	processor ports.DocumentProcessor
	metrics   *metrics.HTTPServerMetrics
	maxUpload int64
}

// NewRouter builds the HTTP surface. httpMetrics may be nil.
func NewRouter(cfg config.Config, processor ports.DocumentProcessor, httpMetrics *metrics.HTTPServerMetrics) *Router {
	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = usecase.DefaultMaxUploadBytes
	}
	return &Router{
		cfg:       cfg,
		processor: processor,
		metrics:   httpMetrics,
		maxUpload: maxUpload,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", rt.root)
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc(processPath, rt.processDocument)
	mux.HandleFunc(strings.TrimSuffix(processPath, "/"), rt.processDocument)
	if rt.metrics != nil && rt.cfg.MetricsEnabled {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = backpressureMiddleware(handler, rt.cfg.APIMaxInFlight, time.Duration(rt.cfg.APIBackpressureWaitMS)*time.Millisecond)
	handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	handler = corsMiddleware(handler, rt.cfg.CORSAllowedOrigins)
	handler = accessLogMiddleware(handler)
	return requestIDMiddleware(handler)
}

func (rt *Router) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, http.StatusNotFound, errorResponse{Error: "not found", Kind: "not_found"})
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeMethodNotAllowed(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "IntelliRename Backend is running."})
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) processDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, r)
		return
	}

	bodyLimit := rt.maxUpload + multipartOverhead
	if r.ContentLength > bodyLimit {
		writeDomainError(w, r, &domain.PayloadTooLargeError{Size: r.ContentLength, Limit: rt.maxUpload})
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)

	if err := r.ParseMultipartForm(multipartMemoryMax); err != nil {
		if isBodyTooLarge(err) {
			writeDomainError(w, r, &domain.PayloadTooLargeError{Size: bodyLimit, Limit: rt.maxUpload})
			return
		}
		writeDomainError(w, r, domain.WrapError(domain.ErrInvalidInput, "parse multipart form", err))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeDomainError(w, r, domain.WrapError(domain.ErrInvalidInput, "multipart field 'file' is required", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeDomainError(w, r, domain.WrapError(domain.ErrInvalidInput, "read uploaded file", err))
		return
	}

	fileType := r.FormValue("file_type")
	if fileType == "" {
		fileType = defaultFileType
	}

	outcome, err := rt.processor.Process(r.Context(), domain.UploadedDocument{
		Filename:          fileHeader.Filename,
		DeclaredMediaType: fileHeader.Header.Get("Content-Type"),
		Data:              data,
	}, fileType)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

func writeMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed", Kind: "method_not_allowed"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
