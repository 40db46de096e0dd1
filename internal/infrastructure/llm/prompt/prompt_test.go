package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/domain"
)

func TestAssembleFillsSlots(t *testing.T) {
	got := NewAssembler().Assemble("正文 {file_type_tag} 内容", "合同")

	if !strings.Contains(got, "[任务类型标签: 合同]") {
		t.Fatalf("task tag missing: %s", got)
	}
	if !strings.Contains(got, "[文档原文开始]\n正文 {file_type_tag} 内容\n[文档原文结束]") {
		t.Fatalf("content not embedded verbatim: %s", got)
	}
	if strings.Count(got, SummaryMarker) != 2 || strings.Count(got, TitleMarker) != 2 {
		t.Fatalf("expected markers in definition and response format sections")
	}
}

func TestAssembleDefaultsTaskTag(t *testing.T) {
	got := NewAssembler().Assemble("x", "  ")
	if !strings.Contains(got, "[任务类型标签: "+DefaultTaskTag+"]") {
		t.Fatalf("expected default task tag: %s", got)
	}
}

func TestMarkersAreStable(t *testing.T) {
	if SummaryMarker != "**文档概要**：" || TitleMarker != "**文档标题**：" {
		t.Fatalf("markers changed: %q %q", SummaryMarker, TitleMarker)
	}
}

func TestParseExtractsSummaryAndTitle(t *testing.T) {
	got, err := NewParser().Parse("**文档概要**：S **文档标题**：T")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Summary != "S" || got.Title != "T" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestParseMultilineReply(t *testing.T) {
	reply := "好的。\n\n**文档概要**：\n本文介绍了季度销售数据。\n重点分析了华东区。\n\n**文档标题**：\n2024年Q1销售分析\n"
	got, err := NewParser().Parse(reply)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Summary != "本文介绍了季度销售数据。\n重点分析了华东区。" {
		t.Fatalf("unexpected summary: %q", got.Summary)
	}
	if got.Title != "2024年Q1销售分析" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
}

func TestParseFailures(t *testing.T) {
	cases := []string{
		"",
		"no markers at all",
		"**文档概要**：only a summary",
		"**文档标题**：only a title",
		"**文档概要**：   **文档标题**：T",
		"**文档概要**：S **文档标题**：   ",
		"**文档标题**：T **文档概要**：S",
		"**文档概要**: S **文档标题**: T",
	}
	for _, reply := range cases {
		got, err := NewParser().Parse(reply)
		if !errors.Is(err, domain.ErrParseFailure) {
			t.Fatalf("Parse(%q) expected parse failure, got %+v, %v", reply, got, err)
		}
		if got != (domain.ParsedAiResult{}) {
			t.Fatalf("Parse(%q) returned partial result %+v", reply, got)
		}
		var parseErr *domain.ParseError
		if !errors.As(err, &parseErr) || parseErr.Raw != reply {
			t.Fatalf("expected raw reply preserved for %q", reply)
		}
	}
}
