package classifier

import "github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/domain"

// mediaTypeExtensions is matched in order by substring against the declared
// media type when the filename carries no usable name.
var mediaTypeExtensions = []struct {
	contains  string
	extension string
}{
	{"text/plain", ".txt"},
	{"text/markdown", ".md"},
	{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", ".docx"},
	{"application/msword", ".doc"},
	{"application/pdf", ".pdf"},
	{"image/png", ".png"},
	{"image/jpeg", ".jpg"},
	{"image/gif", ".gif"},
}

const defaultExtension = ".txt"

var categoryExtensions = map[domain.FileCategory][]string{
	domain.CategoryPlainText: {
		".txt", ".md", ".rtf", ".tex", ".log", ".csv", ".tsv",
		".py", ".js", ".html", ".htm", ".css", ".json", ".xml", ".yaml", ".yml",
		".java", ".cpp", ".c", ".h", ".php", ".rb", ".go", ".rs", ".swift", ".kt",
		".sql", ".sh", ".bat", ".ps1", ".r", ".m", ".scala", ".pl", ".lua",
	},
	domain.CategoryWordProcessing:    {".docx"},
	domain.CategoryWordProcessingOld: {".doc"},
	domain.CategorySpreadsheet:       {".xls", ".xlsx"},
	domain.CategoryPresentation:      {".ppt", ".pptx"},
	domain.CategoryPDF:               {".pdf"},
	domain.CategoryOpenDocument:      {".odt", ".ods", ".odp", ".odg", ".odf"},
	domain.CategoryEbook:             {".epub", ".mobi", ".azw", ".azw3"},
	domain.CategoryImage: {
		".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".tif", ".webp", ".svg",
		".ico", ".psd", ".ai", ".eps", ".raw", ".cr2", ".nef", ".arw",
	},
	domain.CategoryAudio:       {".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a"},
	domain.CategoryVideo:       {".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v"},
	domain.CategoryArchive:     {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz"},
	domain.CategorySpecialized: {".ics", ".vcf", ".kml", ".gpx", ".dwg", ".dxf", ".step", ".stl"},
}
