// Package render converts populated template text into downloadable document
// buffers. Documents are assembled fully in memory; nothing touches disk.
package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"contractiq/internal/contract"
	"contractiq/internal/domain"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// DocxRenderer renders populated templates as Word documents.
type DocxRenderer struct {
	registry  *contract.Registry
	populator *contract.Populator
}

// NewDocxRenderer creates a renderer over the given registry and populator.
func NewDocxRenderer(registry *contract.Registry, populator *contract.Populator) *DocxRenderer {
	return &DocxRenderer{registry: registry, populator: populator}
}

// Render populates the named template and produces a .docx buffer. The first
// line of the populated text becomes a bold centered title; every non-empty
// remaining line becomes its own paragraph, preserving order. Blank lines are
// dropped. Unknown template names fail with domain.ErrUnknownTemplate since
// no buffer can be produced.
func (r *DocxRenderer) Render(name contract.TemplateName, fields contract.FieldSet) ([]byte, error) {
	if _, ok := r.registry.Template(name); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTemplate, name)
	}

	text := r.populator.Populate(name, fields)
	lines := strings.Split(text, "\n")

	var doc strings.Builder
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	doc.WriteString(titleParagraph(lines[0]))
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		doc.WriteString(bodyParagraph(line))
	}

	doc.WriteString(`</w:body></w:document>`)

	return zipDocx(doc.String())
}

func titleParagraph(title string) string {
	return `<w:p><w:pPr><w:jc w:val="center"/></w:pPr>` +
		`<w:r><w:rPr><w:b/><w:sz w:val="32"/></w:rPr>` +
		`<w:t xml:space="preserve">` + escapeXML(title) + `</w:t></w:r></w:p>`
}

func bodyParagraph(line string) string {
	return `<w:p><w:r><w:t xml:space="preserve">` + escapeXML(line) + `</w:t></w:r></w:p>`
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// zipDocx assembles the minimal OPC package around word/document.xml.
func zipDocx(documentXML string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("creating docx part %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("writing docx part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing docx archive: %w", err)
	}
	return buf.Bytes(), nil
}
