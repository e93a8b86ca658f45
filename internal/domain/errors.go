package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserInactive         = errors.New("user is inactive")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed         = errors.New("file upload to storage failed")
	ErrTextExtractionFailed = errors.New("could not extract text from document")
	ErrAnalysisNotFound     = errors.New("contract has not been analyzed yet")
	ErrAnalysisNotComplete  = errors.New("analysis is still in progress")
	ErrTemplateIncompatible = errors.New("template is not compatible with the contract type")
	ErrUnknownTemplate      = errors.New("unknown template name")
)
