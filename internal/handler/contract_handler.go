package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"contractiq/internal/domain"
	"contractiq/internal/service"
)

// ContractHandler handles contract file endpoints.
type ContractHandler struct {
	contractService service.ContractService
}

// NewContractHandler creates a new ContractHandler.
func NewContractHandler(contractService service.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// Upload handles POST /api/v1/contracts
func (h *ContractHandler) Upload(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	meta, err := h.contractService.Upload(c.Request.Context(), service.ContractUploadInput{
		UploadedBy: userID,
		File:       file,
		Header:     header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, meta)
}

// List handles GET /api/v1/contracts
func (h *ContractHandler) List(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)

	var (
		files []domain.ContractFile
		total int
		err   error
	)
	if c.Query("mine") == "true" {
		files, total, err = h.contractService.ListByUploader(c.Request.Context(), userID, offset, limit)
	} else {
		files, total, err = h.contractService.List(c.Request.Context(), offset, limit)
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, files, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/contracts/:id
func (h *ContractHandler) GetByID(c *gin.Context) {
	contractID, ok := parseIDParam(c)
	if !ok {
		return
	}

	meta, err := h.contractService.GetByID(c.Request.Context(), contractID)
	if err != nil {
		HandleError(c, err)
		return
	}

	downloadURL, err := h.contractService.GetDownloadURL(c.Request.Context(), contractID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"contract":     meta,
		"download_url": downloadURL,
	})
}

// Delete handles DELETE /api/v1/contracts/:id
func (h *ContractHandler) Delete(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	contractID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.contractService.Delete(c.Request.Context(), userID, contractID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "contract deleted"})
}

// parseIDParam parses the :id path parameter as a UUID. Returns false if
// invalid (error response already written).
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid contract ID")
		return uuid.Nil, false
	}
	return id, true
}

// pagination parses offset/limit query parameters with defaults and caps.
func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
