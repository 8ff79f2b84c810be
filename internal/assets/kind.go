package assets

import (
	"mime"
	"path/filepath"
	"strings"
)

// Kind classifies an asset for build summaries and cache headers.
type Kind string

const (
	KindImage    Kind = "image"
	KindStyle    Kind = "style"
	KindScript   Kind = "script"
	KindFont     Kind = "font"
	KindDocument Kind = "document"
	KindData     Kind = "data"
	KindOther    Kind = "other"
)

var extensionToKind = map[string]Kind{
	".png":  KindImage,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".gif":  KindImage,
	".webp": KindImage,
	".avif": KindImage,
	".svg":  KindImage,
	".ico":  KindImage,

	".css": KindStyle,

	".js":  KindScript,
	".mjs": KindScript,

	".woff":  KindFont,
	".woff2": KindFont,
	".ttf":   KindFont,
	".otf":   KindFont,

	".pdf":  KindDocument,
	".pptx": KindDocument,
	".docx": KindDocument,
	".txt":  KindDocument,
	".md":   KindDocument,

	".json":  KindData,
	".jsonc": KindData,
	".bib":   KindData,
	".csv":   KindData,
}

// extraMediaTypes covers extensions the platform mime table often lacks.
var extraMediaTypes = map[string]string{
	".webp":  "image/webp",
	".avif":  "image/avif",
	".woff2": "font/woff2",
	".jsonc": "application/json",
	".bib":   "text/x-bibtex",
	".md":    "text/markdown; charset=utf-8",
}

// DetectKind returns the asset kind for filename based on its extension.
func DetectKind(filename string) Kind {
	ext := strings.ToLower(filepath.Ext(filename))
	if k, ok := extensionToKind[ext]; ok {
		return k
	}
	return KindOther
}

// MediaType returns the Content-Type for filename, falling back to
// application/octet-stream.
func MediaType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if t, ok := extraMediaTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
