package ingest

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Converter recovers plain text from a source document. The profile
// parser consumes flat text; converters exist so a profile page saved as
// HTML, PDF, DOCX or Markdown can be parsed the same as a raw paste.
type Converter interface {
	Convert(r io.Reader, filename string) (string, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
}

// ForFile returns the appropriate converter for a filename.
func ForFile(filename string) (Converter, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextConverter{}, nil
	case ".md", ".markdown":
		return &MarkdownConverter{}, nil
	case ".html", ".htm":
		return &HTMLConverter{}, nil
	case ".pdf":
		return &PDFConverter{}, nil
	case ".docx":
		return &DOCXConverter{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
