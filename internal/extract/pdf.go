package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"contractiq/internal/domain"
)

// PDF extracts the text of every page, joined by newlines. Pages that fail
// to decode are skipped; a document with no decodable text at all is an
// extraction failure.
func PDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTextExtractionFailed, err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(content) != "" {
			pages = append(pages, content)
		}
	}

	if len(pages) == 0 {
		return "", fmt.Errorf("%w: no extractable text in PDF", domain.ErrTextExtractionFailed)
	}
	return strings.Join(pages, "\n"), nil
}
