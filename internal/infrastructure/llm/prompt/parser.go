package prompt

import (
	"strings"

	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/domain"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse requires both markers in order and two non-empty sections.
// Any miss is a *domain.ParseError; no partial result is returned.
func (p *Parser) Parse(reply string) (domain.ParsedAiResult, error) {
	start := strings.Index(reply, SummaryMarker)
	if start < 0 {
		return domain.ParsedAiResult{}, &domain.ParseError{Raw: reply}
	}
	rest := reply[start+len(SummaryMarker):]

	end := strings.Index(rest, TitleMarker)
	if end < 0 {
		return domain.ParsedAiResult{}, &domain.ParseError{Raw: reply}
	}

	result := domain.ParsedAiResult{
		Summary: strings.TrimSpace(rest[:end]),
		Title:   strings.TrimSpace(rest[end+len(TitleMarker):]),
	}
	if result.Summary == "" || result.Title == "" {
		return domain.ParsedAiResult{}, &domain.ParseError{Raw: reply}
	}
	return result, nil
}
