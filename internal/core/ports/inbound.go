package ports

import (
	"context"

	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/domain"
)

// DocumentProcessor is the inbound contract for one summarize-and-title run.
type DocumentProcessor interface {
	Process(ctx context.Context, doc domain.UploadedDocument, taskTag string) (*domain.ProcessingOutcome, error)
}
