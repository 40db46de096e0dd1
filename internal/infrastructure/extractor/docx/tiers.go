package docx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	nsWordMain = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsWord2010 = "http://schemas.microsoft.com/office/word/2010/wordml"
	nsWord2012 = "http://schemas.microsoft.com/office/word/2012/wordml"
)

// tier collects text fragments from a parsed document tree.
type tier struct {
	name    string
	collect func(root *element) []string
}

var tiers = []tier{
	{name: "namespaced_runs", collect: namespacedRuns},
	{name: "text_like_elements", collect: textLikeElements},
	{name: "salvage", collect: salvageText},
}

// namespacedRuns returns the raw content of every w:t run under the known
// WordprocessingML namespaces.
func namespacedRuns(root *element) []string {
	var out []string
	root.walk(func(e *element) {
		if e.name.Local != "t" || e.text == "" {
			return
		}
		switch e.name.Space {
		case nsWordMain, nsWord2010, nsWord2012:
			out = append(out, e.text)
		}
	})
	return out
}

// textLikeElements ignores namespaces: any element named "t", or whose
// qualified tag mentions "text", contributes its trimmed text.
func textLikeElements(root *element) []string {
	var out []string
	root.walk(func(e *element) {
		text := strings.TrimSpace(e.text)
		if text == "" {
			return
		}
		qualified := strings.ToLower("{" + e.name.Space + "}" + e.name.Local)
		if e.name.Local == "t" || strings.Contains(qualified, "text") {
			out = append(out, text)
		}
	})
	return out
}

// salvageText keeps every text node except short or purely numeric ones,
// which are mostly numbering and formatting residue.
func salvageText(root *element) []string {
	var out []string
	root.walk(func(e *element) {
		text := strings.TrimSpace(e.text)
		if text == "" {
			return
		}
		if utf8.RuneCountInString(text) <= 2 || isAllDigits(text) {
			return
		}
		out = append(out, text)
	})
	return out
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func isSentenceTerminal(r rune) bool {
	switch r {
	case '。', '！', '？', '.', '!', '?':
		return true
	default:
		return false
	}
}

// paragraphs joins fragments, collapses whitespace and resegments the text
// into one sentence-like line per terminal punctuation run.
func paragraphs(fragments []string) string {
	joined := strings.Join(strings.Fields(strings.Join(fragments, " ")), " ")

	var lines []string
	for _, piece := range strings.FieldsFunc(joined, isSentenceTerminal) {
		piece = strings.TrimSpace(piece)
		if utf8.RuneCountInString(piece) > 3 {
			lines = append(lines, piece)
		}
	}
	return strings.Join(lines, "\n")
}
