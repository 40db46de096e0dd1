package bootstrap

import (
	"log/slog"
	"time"

	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/config"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/ports"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/usecase"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/infrastructure/classifier"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/infrastructure/extractor/docx"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/infrastructure/extractor/placeholder"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/infrastructure/extractor/plaintext"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/infrastructure/llm/deepseek"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/infrastructure/llm/prompt"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/infrastructure/resilience"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/observability/metrics"
)

type App struct {
	Config config.Config

	Metrics   *metrics.HTTPServerMetrics
	Gateway   *deepseek.Client
	ProcessUC ports.DocumentProcessor
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	httpMetrics := metrics.NewHTTPServerMetrics("airename-api")

	retryUnit := time.Duration(cfg.LLMRetryUnitMS) * time.Millisecond
	executorCfg := resilience.DefaultConfig()
	executorCfg.RetryMaxAttempts = cfg.LLMRetryMaxAttempts
	executorCfg.RetryInitialBackoff = retryUnit
	executorCfg.RetryMaxBackoff = 2 * retryUnit
	executorCfg.BreakerEnabled = cfg.LLMBreakerEnabled

	gateway := deepseek.New(deepseek.Options{
		BaseURL:  cfg.DeepSeekBaseURL,
		Model:    cfg.DeepSeekModel,
		APIKey:   cfg.DeepSeekAPIKey,
		Timeout:  time.Duration(cfg.DeepSeekTimeoutSeconds) * time.Second,
		Executor: resilience.NewExecutor(executorCfg),
		Retry:    deepseek.DefaultRetryPolicy(retryUnit),
		Observer: httpMetrics,
	})
	if !gateway.Configured() {
		logger.Warn("deepseek_api_key_missing", "effect", "document processing answers 501 until DEEPSEEK_API_KEY is set")
	}

	processUC := usecase.NewProcessDocumentUseCase(usecase.ProcessDependencies{
		Classifier:   classifier.New(),
		Decoder:      plaintext.NewDecoder(),
		Extractor:    docx.NewExtractor(docx.WithLogger(logger)),
		Placeholders: placeholder.NewWriter(),
		Prompts:      prompt.NewAssembler(),
		Gateway:      gateway,
		Parser:       prompt.NewParser(),
	}, cfg.MaxUploadBytes, logger)

	var processor ports.DocumentProcessor = processUC
	if cfg.MetricsEnabled {
		processor = httpMetrics.InstrumentProcessor(processUC)
	}

	return &App{
		Config:    cfg,
		Metrics:   httpMetrics,
		Gateway:   gateway,
		ProcessUC: processor,
	}, nil
}
