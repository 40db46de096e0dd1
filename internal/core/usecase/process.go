package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/domain"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/ports"
)

const (
	// DefaultMaxUploadBytes is the largest accepted payload (200 MiB).
	DefaultMaxUploadBytes int64 = 200 * 1024 * 1024

	ModelName = "deepseek"
)

type Stage string

const (
	StageReceived        Stage = "received"
	StageSizeChecked     Stage = "size_checked"
	StageClassified      Stage = "classified"
	StageContentResolved Stage = "content_resolved"
	StagePromptAssembled Stage = "prompt_assembled"
	StageCompleted       Stage = "completed"
	StageParsed          Stage = "parsed"
	StageDone            Stage = "done"
)

// StageError records the last stage reached before a pipeline failure.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("after %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

type ProcessDependencies struct {
	Classifier   ports.FormatClassifier
	Decoder      ports.TextDecoder
	Extractor    ports.ContainerExtractor
	Placeholders ports.PlaceholderWriter
	Prompts      ports.PromptAssembler
	Gateway      ports.CompletionGateway
	Parser       ports.ResponseParser
}

type ProcessDocumentUseCase struct {
	deps     ProcessDependencies
	maxBytes int64
	logger   *slog.Logger
}

func NewProcessDocumentUseCase(deps ProcessDependencies, maxBytes int64, logger *slog.Logger) *ProcessDocumentUseCase {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProcessDocumentUseCase{
		deps:     deps,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// MaxUploadBytes is the inclusive payload limit.
func (uc *ProcessDocumentUseCase) MaxUploadBytes() int64 {
	return uc.maxBytes
}

// Process runs one upload through classification, content resolution,
// completion and reply parsing. It shares no state between calls.
func (uc *ProcessDocumentUseCase) Process(ctx context.Context, doc domain.UploadedDocument, taskTag string) (*domain.ProcessingOutcome, error) {
	stage := StageReceived
	fail := func(err error) (*domain.ProcessingOutcome, error) {
		uc.logger.Warn("document_processing_failed",
			"filename", doc.Filename,
			"stage", string(stage),
			"kind", domain.KindOf(err),
			"error", err,
		)
		return nil, &StageError{Stage: stage, Err: err}
	}

	if err := uc.checkSize(doc); err != nil {
		return fail(err)
	}
	stage = StageSizeChecked

	ext, category, err := uc.deps.Classifier.Classify(doc.Filename, doc.DeclaredMediaType)
	if err != nil {
		return fail(err)
	}
	stage = StageClassified

	content := uc.resolveContent(doc, ext, category)
	stage = StageContentResolved

	prompt := uc.deps.Prompts.Assemble(content.Text, taskTag)
	stage = StagePromptAssembled

	reply, err := uc.deps.Gateway.Complete(ctx, prompt)
	if err != nil {
		return fail(err)
	}
	stage = StageCompleted

	result, err := uc.deps.Parser.Parse(reply)
	if err != nil {
		return fail(err)
	}
	stage = StageParsed

	outcome := &domain.ProcessingOutcome{
		OriginalFilename:  doc.Filename,
		ModelUsed:         ModelName,
		Result:            result,
		SuggestedFilename: SuggestFilename(result.Title, ext),
		Category:          category,
		Extension:         ext,
		Extraction:        content.Outcome,
	}
	stage = StageDone

	uc.logger.Info("document_processed",
		"filename", doc.Filename,
		"extension", ext,
		"category", string(category),
		"extraction", string(content.Outcome),
		"size_bytes", doc.SizeBytes(),
		"prompt_chars", len([]rune(prompt)),
	)
	return outcome, nil
}

func (uc *ProcessDocumentUseCase) checkSize(doc domain.UploadedDocument) error {
	if doc.SizeBytes() > uc.maxBytes {
		return &domain.PayloadTooLargeError{Size: doc.SizeBytes(), Limit: uc.maxBytes}
	}
	return nil
}

func (uc *ProcessDocumentUseCase) resolveContent(doc domain.UploadedDocument, ext string, category domain.FileCategory) domain.ExtractionResult {
	switch category {
	case domain.CategoryPlainText:
		return domain.ExtractionResult{
			Text:    uc.deps.Decoder.Decode(doc.Data, doc.Filename, ext),
			Outcome: domain.OutcomeExtracted,
		}
	case domain.CategoryWordProcessing:
		extracted := uc.deps.Extractor.Extract(doc.Data)
		if extracted.WasRealExtraction() && strings.TrimSpace(extracted.Text) != "" {
			return extracted
		}
		uc.logger.Info("docx_extraction_fallback",
			"filename", doc.Filename,
			"outcome", string(extracted.Outcome),
			"detail", extracted.Text,
		)
		outcome := extracted.Outcome
		if outcome == domain.OutcomeExtracted {
			outcome = domain.OutcomeEmpty
		}
		return domain.ExtractionResult{
			Text:    uc.deps.Placeholders.ExtractionFallback(doc.Filename, doc.SizeBytes()),
			Outcome: outcome,
		}
	default:
		return domain.ExtractionResult{
			Text:    uc.deps.Placeholders.ForCategory(doc.Filename, doc.SizeBytes(), category, ext),
			Outcome: domain.OutcomePlaceholder,
		}
	}
}
