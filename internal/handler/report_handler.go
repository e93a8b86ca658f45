package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contractiq/internal/service"
)

// ReportHandler handles analysis report export endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Export handles GET /api/v1/contracts/:id/report/:format
func (h *ReportHandler) Export(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	contractID, ok := parseIDParam(c)
	if !ok {
		return
	}

	format := c.Param("format")
	switch format {
	case "pdf", "csv", "xlsx":
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be pdf, csv, or xlsx")
		return
	}

	report, err := h.reportService.Export(c.Request.Context(), contractID, userID, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+report.Filename+`"`)
	c.Data(http.StatusOK, report.ContentType, report.Data)
}
