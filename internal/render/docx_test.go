package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contractiq/internal/contract"
	"contractiq/internal/domain"
	"contractiq/internal/extract"
)

func newRenderer() *DocxRenderer {
	reg := contract.NewRegistry()
	return NewDocxRenderer(reg, contract.NewPopulator(reg))
}

func TestRender_ProducesReadableDocx(t *testing.T) {
	r := newRenderer()

	buf, err := r.Render(contract.TemplateNDA, contract.FieldSet{
		"provider": "Acme Co",
		"client":   "Beta LLC",
	})
	require.NoError(t, err)
	require.NotEmpty(t, buf)

	// Zip archives start with "PK".
	assert.Equal(t, byte('P'), buf[0])
	assert.Equal(t, byte('K'), buf[1])

	// Round-trip through our own docx text extraction.
	text, err := extract.DOCX(buf)
	require.NoError(t, err)
	assert.Contains(t, text, "NON-DISCLOSURE AGREEMENT (NDA)")
	assert.Contains(t, text, "DISCLOSING PARTY: Acme Co")
	assert.Contains(t, text, "RECEIVING PARTY: Beta LLC")
	assert.NotContains(t, text, "[PROVIDER]")
}

func TestRender_TitleIsFirstTemplateLine(t *testing.T) {
	r := newRenderer()

	buf, err := r.Render(contract.TemplateServiceAgreement, contract.FieldSet{})
	require.NoError(t, err)

	text, err := extract.DOCX(buf)
	require.NoError(t, err)
	lines := strings.Split(text, "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "SERVICE AGREEMENT", lines[0])
}

func TestRender_BlankLinesDropped(t *testing.T) {
	r := newRenderer()

	buf, err := r.Render(contract.TemplateEmploymentAgreement, contract.FieldSet{})
	require.NoError(t, err)

	text, err := extract.DOCX(buf)
	require.NoError(t, err)

	// Every rendered paragraph carries text; blank template lines are gone.
	for _, line := range strings.Split(text, "\n") {
		assert.NotEmpty(t, strings.TrimSpace(line))
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	r := newRenderer()

	_, err := r.Render(contract.TemplateName("Lease Agreement"), contract.FieldSet{})
	assert.ErrorIs(t, err, domain.ErrUnknownTemplate)
}
