// Package prompt owns the instruction template sent to the model and the
// parser for its reply. Both sides depend on the same section markers.
package prompt

import "strings"

const (
	SummaryLabel = "文档概要"
	TitleLabel   = "文档标题"

	// SummaryMarker and TitleMarker open the two reply sections verbatim.
	SummaryMarker = "**" + SummaryLabel + "**："
	TitleMarker   = "**" + TitleLabel + "**："

	DefaultTaskTag = "通用文档"

	contentSlot = "{file_content}"
	taskTagSlot = "{file_type_tag}"
)

const documentTemplate = `
# Role
智能文档理解与命名专家

## Profile
* author: eureka
* version: 2.1
* description: 作为一名专注于语义理解与结构提炼的 AI 专家，负责阅读各类文档，精准提炼核心价值，生成逻辑清晰的概要与高度识别性的标题，以提升文档的可管理性与搜索效率。

## Attention
请深入阅读用户提供的文档内容，调用语言理解、结构建模与语义抽象等能力，识别其主题、重点信息及核心意图。以结构清晰、语言专业的方式，输出高质量的"文档概要"与"文档标题"。

## Constraints
* 必须完整覆盖文档中的关键信息与价值点，避免遗漏。
* 文档标题必须高度凝练，具备唯一性、识别性与搜索友好性。
* 概要内容应逻辑清晰、语义准确，不进行主观推断或夸大。
* 严禁直接复制文档中的句子作为标题使用。
* 所有输出必须使用正式书面语表达，避免口语化。

## Definition
* ` + SummaryMarker + `基于深度理解后的简洁总结，应涵盖文档主题、核心意图、关键结构与主要内容点，控制在 2~4 句之间。
* ` + TitleMarker + `从概要中提炼出的文档命名，应具备可识别性、概括性与可记忆性，控制在 15 字以内（如为中文）或 10 个词以内（如为英文）。

## Response Format
请严格使用以下格式返回：

` + SummaryMarker + `
<用 2~4 句描述文档核心内容>

` + TitleMarker + `
<一句话标题，15 字以内>

---
现在，请处理以下文档：
[任务类型标签: ` + taskTagSlot + `]

[文档原文开始]
` + contentSlot + `
[文档原文结束]
`

type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble fills both slots in one pass, so braces inside the content are
// never reinterpreted as slots.
func (a *Assembler) Assemble(content, taskTag string) string {
	if strings.TrimSpace(taskTag) == "" {
		taskTag = DefaultTaskTag
	}
	return strings.NewReplacer(
		contentSlot, content,
		taskTagSlot, taskTag,
	).Replace(documentTemplate)
}
