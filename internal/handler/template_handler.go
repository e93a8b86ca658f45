package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contractiq/internal/contract"
	"contractiq/internal/export"
	"contractiq/internal/service"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// TemplateHandler handles template listing, compatibility, and population.
type TemplateHandler struct {
	templateService service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// List handles GET /api/v1/templates
func (h *TemplateHandler) List(c *gin.Context) {
	RespondOK(c, gin.H{"templates": h.templateService.ListTemplates()})
}

// Compatible handles GET /api/v1/contracts/:id/templates
func (h *TemplateHandler) Compatible(c *gin.Context) {
	contractID, ok := parseIDParam(c)
	if !ok {
		return
	}

	contractType, templates, err := h.templateService.CompatibleTemplates(c.Request.Context(), contractID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"contract_type": contractType,
		"templates":     templates,
		"supported":     len(templates) > 0,
	})
}

// Populate handles POST /api/v1/contracts/:id/templates/:name/populate
func (h *TemplateHandler) Populate(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	contractID, ok := parseIDParam(c)
	if !ok {
		return
	}

	name := contract.TemplateName(c.Param("name"))
	text, err := h.templateService.Populate(c.Request.Context(), contractID, userID, name)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"template": name,
		"content":  text,
	})
}

// Document handles GET /api/v1/contracts/:id/templates/:name/document
func (h *TemplateHandler) Document(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	contractID, ok := parseIDParam(c)
	if !ok {
		return
	}

	name := contract.TemplateName(c.Param("name"))
	doc, err := h.templateService.RenderDocx(c.Request.Context(), contractID, userID, name)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(string(name), "docx")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, docxContentType, doc)
}
