package domain

// FileCategory groups allowed extensions by how their content is resolved.
type FileCategory string

const (
	CategoryPlainText         FileCategory = "plain_text"
	CategoryWordProcessing    FileCategory = "word_processing"
	CategoryWordProcessingOld FileCategory = "word_processing_legacy"
	CategorySpreadsheet       FileCategory = "spreadsheet"
	CategoryPresentation      FileCategory = "presentation"
	CategoryPDF               FileCategory = "pdf"
	CategoryOpenDocument      FileCategory = "open_document"
	CategoryEbook             FileCategory = "ebook"
	CategoryImage             FileCategory = "image"
	CategoryAudio             FileCategory = "audio"
	CategoryVideo             FileCategory = "video"
	CategoryArchive           FileCategory = "archive"
	CategorySpecialized       FileCategory = "specialized"
	CategoryUnknown           FileCategory = "unknown"
)

// UploadedDocument is one upload as received at the boundary.
type UploadedDocument struct {
	Filename          string
	DeclaredMediaType string
	Data              []byte
}

func (d UploadedDocument) SizeBytes() int64 {
	return int64(len(d.Data))
}

type ExtractionOutcome string

const (
	OutcomeExtracted   ExtractionOutcome = "extracted"
	OutcomeEmpty       ExtractionOutcome = "empty"
	OutcomeFailed      ExtractionOutcome = "failed"
	OutcomePlaceholder ExtractionOutcome = "placeholder"
)

// ExtractionResult carries resolved content and how it was obtained.
// On OutcomeFailed, Text holds a diagnostic description instead of content.
type ExtractionResult struct {
	Text    string
	Outcome ExtractionOutcome
}

func (r ExtractionResult) WasRealExtraction() bool {
	return r.Outcome == OutcomeExtracted
}

type ParsedAiResult struct {
	Summary string `json:"summary"`
	Title   string `json:"title"`
}

// ProcessingOutcome is the terminal success value of one pipeline run.
type ProcessingOutcome struct {
	OriginalFilename  string         `json:"original_filename"`
	ModelUsed         string         `json:"model_used"`
	Result            ParsedAiResult `json:"ai_result"`
	SuggestedFilename string         `json:"suggested_filename,omitempty"`

	Category   FileCategory      `json:"-"`
	Extension  string            `json:"-"`
	Extraction ExtractionOutcome `json:"-"`
}
