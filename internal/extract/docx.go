package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"contractiq/internal/domain"
)

// DOCX extracts paragraph text from the WordprocessingML body of a .docx
// archive. Each <w:p> becomes one line, matching how the documents were
// authored paragraph-by-paragraph.
func DOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: not a valid docx archive: %v", domain.ErrTextExtractionFailed, err)
	}

	var docXML io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docXML, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("%w: %v", domain.ErrTextExtractionFailed, err)
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("%w: docx archive has no word/document.xml", domain.ErrTextExtractionFailed)
	}
	defer docXML.Close()

	text, err := paragraphText(docXML)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTextExtractionFailed, err)
	}
	return text, nil
}

// paragraphText walks the XML token stream collecting <w:t> runs and
// emitting a newline at each paragraph end.
func paragraphText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var sb strings.Builder
	var inText bool

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}
