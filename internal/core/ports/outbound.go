package ports

import (
	"context"

	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/domain"
)

// FormatClassifier maps a filename/media-type pair to an extension and category.
type FormatClassifier interface {
	Classify(filename, declaredMediaType string) (string, domain.FileCategory, error)
}

// TextDecoder turns plain-text-like bytes into a string. It never fails.
type TextDecoder interface {
	Decode(data []byte, filename, extension string) string
}

// ContainerExtractor pulls text out of a zipped-XML word-processing document.
type ContainerExtractor interface {
	Extract(data []byte) domain.ExtractionResult
}

// PlaceholderWriter describes a document whose content is not extracted.
type PlaceholderWriter interface {
	ForCategory(filename string, sizeBytes int64, category domain.FileCategory, extension string) string
	ExtractionFallback(filename string, sizeBytes int64) string
}

// PromptAssembler embeds content and a task tag into the instruction template.
type PromptAssembler interface {
	Assemble(content, taskTag string) string
}

// CompletionGateway sends one prompt to the remote model.
type CompletionGateway interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ResponseParser turns the model reply into a summary and title.
type ResponseParser interface {
	Parse(reply string) (domain.ParsedAiResult, error)
}
