package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"contractiq/internal/domain"
	"contractiq/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"inactive user", domain.ErrUserInactive, http.StatusForbidden, "USER_INACTIVE"},
		{"duplicate email", domain.ErrDuplicateEmail, http.StatusConflict, "DUPLICATE_EMAIL"},
		{"unsupported file type", domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{"file too large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{"upload failed", domain.ErrUploadFailed, http.StatusInternalServerError, "UPLOAD_FAILED"},
		{"extraction failed", domain.ErrTextExtractionFailed, http.StatusUnprocessableEntity, "TEXT_EXTRACTION_FAILED"},
		{"analysis not found", domain.ErrAnalysisNotFound, http.StatusNotFound, "ANALYSIS_NOT_FOUND"},
		{"analysis not complete", domain.ErrAnalysisNotComplete, http.StatusConflict, "ANALYSIS_NOT_COMPLETE"},
		{"template incompatible", domain.ErrTemplateIncompatible, http.StatusConflict, "TEMPLATE_INCOMPATIBLE"},
		{"unknown template", domain.ErrUnknownTemplate, http.StatusNotFound, "UNKNOWN_TEMPLATE"},
		{"wrapped domain error", errors.Join(errors.New("context"), domain.ErrAnalysisNotFound), http.StatusNotFound, "ANALYSIS_NOT_FOUND"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, msg)
		})
	}
}
