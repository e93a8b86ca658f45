package handler

import (
	"github.com/gin-gonic/gin"

	"contractiq/internal/service"
)

// AnalysisHandler handles contract analysis endpoints.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	auditService    service.AuditService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService, auditService service.AuditService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, auditService: auditService}
}

// Analyze handles POST /api/v1/contracts/:id/analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	contractID, ok := parseIDParam(c)
	if !ok {
		return
	}

	analysis, err := h.analysisService.Analyze(c.Request.Context(), contractID, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, analysis)
}

// GetAnalysis handles GET /api/v1/contracts/:id/analysis
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	contractID, ok := parseIDParam(c)
	if !ok {
		return
	}

	analysis, err := h.analysisService.GetByContractID(c.Request.Context(), contractID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, analysis)
}

// Audit handles GET /api/v1/contracts/:id/audit
func (h *AnalysisHandler) Audit(c *gin.Context) {
	contractID, ok := parseIDParam(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)

	events, total, err := h.auditService.ListByContractID(c.Request.Context(), contractID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, events, PagMeta{Total: total, Offset: offset, Limit: limit})
}
