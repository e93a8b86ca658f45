// Package extract pulls plain text out of uploaded contract documents
// (PDF, DOCX, TXT). Extraction is best-effort: a document that yields no
// usable text surfaces domain.ErrTextExtractionFailed rather than a panic
// or a partial crash.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"contractiq/internal/domain"
)

// Text extracts plain text from document bytes, dispatching on the file
// extension of the original name.
func Text(filename string, data []byte) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch domain.AllowedExtensions[ext] {
	case domain.FileTypePDF:
		return PDF(data)
	case domain.FileTypeDOCX:
		return DOCX(data)
	case domain.FileTypeTXT:
		return TXT(data)
	default:
		return "", domain.ErrUnsupportedFileType
	}
}

// TXT decodes plain-text bytes, rejecting content that is not valid UTF-8.
func TXT(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: text file is not valid UTF-8", domain.ErrTextExtractionFailed)
	}
	return string(data), nil
}
