// Package placeholder writes metadata descriptions for documents whose
// content is not extracted.
package placeholder

import (
	"fmt"

	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/domain"
)

type entry struct {
	label string
	note  string
	// withExtension appends "(<ext>)" to the label.
	withExtension bool
}

var categoryEntries = map[domain.FileCategory]entry{
	domain.CategoryWordProcessingOld: {
		label: "Word文档(.doc)",
		note:  "当前版本暂不支持.doc格式内容提取，建议转换为.docx或.txt格式以获得最佳智能命名体验。",
	},
	domain.CategorySpreadsheet: {
		label: "Excel表格",
		note:  "当前版本暂不支持Excel文档内容提取，建议导出为.txt或.csv格式以获得最佳智能命名体验。",
	},
	domain.CategoryPDF: {
		label: "PDF文档",
		note:  "当前版本暂不支持PDF文档内容提取，建议转换为.txt格式以获得最佳智能命名体验。",
	},
	domain.CategoryPresentation: {
		label: "PowerPoint演示文稿",
		note:  "当前版本暂不支持PowerPoint文档内容提取，建议导出为.txt格式以获得最佳智能命名体验。",
	},
	domain.CategoryOpenDocument: {
		label: "OpenOffice/LibreOffice文档",
		note:  "当前版本暂不支持OpenOffice文档内容提取，建议导出为.txt或.docx格式以获得最佳智能命名体验。",
	},
	domain.CategoryEbook: {
		label: "电子书文件",
		note:  "当前版本暂不支持电子书内容提取，建议转换为.txt格式以获得最佳智能命名体验。",
	},
	domain.CategoryImage: {
		label:         "图片文件",
		note:          "当前版本暂不支持图片内容识别，智能命名将基于文件名和基本信息进行。建议添加描述性文字文件以获得更好的命名效果。",
		withExtension: true,
	},
	domain.CategoryAudio: {
		label:         "音频文件",
		note:          "当前版本暂不支持音频内容分析，智能命名将基于文件名和基本信息进行。",
		withExtension: true,
	},
	domain.CategoryVideo: {
		label:         "视频文件",
		note:          "当前版本暂不支持视频内容分析，智能命名将基于文件名和基本信息进行。",
		withExtension: true,
	},
	domain.CategoryArchive: {
		label:         "压缩文件",
		note:          "当前版本暂不支持压缩文件内容分析，智能命名将基于文件名和基本信息进行。建议解压后处理其中的文档文件。",
		withExtension: true,
	},
	domain.CategorySpecialized: {
		label:         "专业格式文件",
		note:          "当前版本对此专业格式的支持有限，智能命名将基于文件名和基本信息进行。",
		withExtension: true,
	},
}

const (
	genericNote    = "当前版本对此文件类型的支持有限，建议使用.txt、.md、.docx或代码文件格式以获得最佳智能命名体验。"
	docxLabel      = "Word文档(.docx)"
	docxEmptyNote  = "文档内容为空或无法提取文本内容。"
	undecodableMsg = "无法解码文件内容，可能是二进制文件或编码格式不支持。"
)

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Render produces the fixed-shape description shared by every placeholder.
func Render(filename string, sizeBytes int64, label, note string) string {
	return fmt.Sprintf("文档名称: %s\n文件大小: %.2f KB\n文件类型: %s\n\n注意：%s",
		filename, float64(sizeBytes)/1024, label, note)
}

func (w *Writer) ForCategory(filename string, sizeBytes int64, category domain.FileCategory, extension string) string {
	e, ok := categoryEntries[category]
	if !ok {
		return Render(filename, sizeBytes, extension, genericNote)
	}
	label := e.label
	if e.withExtension {
		label = fmt.Sprintf("%s(%s)", label, extension)
	}
	return Render(filename, sizeBytes, label, e.note)
}

// ExtractionFallback describes a .docx whose text could not be extracted.
func (w *Writer) ExtractionFallback(filename string, sizeBytes int64) string {
	return Render(filename, sizeBytes, docxLabel, docxEmptyNote)
}

// Undecodable describes a text-like file no known encoding could decode.
func Undecodable(filename string, sizeBytes int64, extension string) string {
	return Render(filename, sizeBytes, extension, undecodableMsg)
}
