// Package docx extracts plain text from .docx containers by reading
// word/document.xml directly, without an OOXML schema library.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/domain"
)

const (
	mainDocumentPart = "word/document.xml"

	msgMissingContent = "无法找到文档内容文件"
	msgEmptyContent   = "文档内容为空或无法解析"
	msgExtractFailed  = "无法提取DOCX文档内容"

	defaultMaxPartBytes = 64 << 20
)

type Extractor struct {
	maxPartBytes int64
	logger       *slog.Logger
}

type Option func(*Extractor)

// WithMaxPartBytes caps the decompressed size of the main document part.
func WithMaxPartBytes(n int64) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxPartBytes = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		maxPartBytes: defaultMaxPartBytes,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract never fails: problems are reported as OutcomeFailed with a
// diagnostic Text, and an unreadable-but-valid document as OutcomeEmpty.
func (e *Extractor) Extract(data []byte) (result domain.ExtractionResult) {
	defer func() {
		if r := recover(); r != nil {
			result = failed(fmt.Sprintf("%s: %v", msgExtractFailed, r))
		}
	}()

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return failed(fmt.Sprintf("%s: open zip: %v", msgMissingContent, err))
	}

	part := findPart(archive, mainDocumentPart)
	if part == nil {
		return failed(msgMissingContent)
	}

	root, err := e.readTree(part)
	if err != nil {
		return failed(fmt.Sprintf("%s: %v", msgExtractFailed, err))
	}

	for _, t := range tiers {
		fragments := t.collect(root)
		e.logger.Debug("docx_tier", "tier", t.name, "fragments", len(fragments))
		if len(fragments) == 0 {
			continue
		}
		text := paragraphs(fragments)
		if strings.TrimSpace(text) == "" {
			return domain.ExtractionResult{Text: msgEmptyContent, Outcome: domain.OutcomeEmpty}
		}
		return domain.ExtractionResult{Text: text, Outcome: domain.OutcomeExtracted}
	}
	return domain.ExtractionResult{Text: msgEmptyContent, Outcome: domain.OutcomeEmpty}
}

func (e *Extractor) readTree(part *zip.File) (*element, error) {
	rc, err := part.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", part.Name, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(io.LimitReader(rc, e.maxPartBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", part.Name, err)
	}
	if int64(len(raw)) > e.maxPartBytes {
		return nil, fmt.Errorf("%s exceeds %d bytes", part.Name, e.maxPartBytes)
	}
	return parseTree(bytes.NewReader(raw))
}

func findPart(archive *zip.Reader, name string) *zip.File {
	for _, f := range archive.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func failed(msg string) domain.ExtractionResult {
	return domain.ExtractionResult{Text: msg, Outcome: domain.OutcomeFailed}
}
