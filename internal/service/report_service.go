package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"contractiq/internal/assessment"
	"contractiq/internal/domain"
	"contractiq/internal/export"
	"contractiq/internal/port"
)

// Report bundles an exported report with its download metadata.
type Report struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ReportService exports a completed analysis as PDF, CSV, or XLSX.
type ReportService interface {
	Export(ctx context.Context, contractID, userID uuid.UUID, format string) (*Report, error)
}

type reportService struct {
	fileRepo     port.ContractFileRepository
	analysisRepo port.AnalysisRepository
	auditRepo    port.AuditRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(
	fileRepo port.ContractFileRepository,
	analysisRepo port.AnalysisRepository,
	auditRepo port.AuditRepository,
) ReportService {
	return &reportService{
		fileRepo:     fileRepo,
		analysisRepo: analysisRepo,
		auditRepo:    auditRepo,
	}
}

func (s *reportService) Export(ctx context.Context, contractID, userID uuid.UUID, format string) (*Report, error) {
	meta, err := s.fileRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	analysis, err := s.analysisRepo.GetByContractID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if analysis.Status != domain.AnalysisStatusCompleted {
		return nil, domain.ErrAnalysisNotComplete
	}

	parsed, err := assessment.Decode(analysis.Result)
	if err != nil {
		return nil, fmt.Errorf("decoding stored analysis: %w", err)
	}

	var buf bytes.Buffer
	var contentType string
	switch format {
	case "pdf":
		if err := export.WritePDF(&buf, parsed); err != nil {
			return nil, fmt.Errorf("rendering PDF report: %w", err)
		}
		contentType = "application/pdf"
	case "csv":
		if err := export.WriteCSV(&buf, parsed); err != nil {
			return nil, fmt.Errorf("rendering CSV report: %w", err)
		}
		contentType = "text/csv"
	case "xlsx":
		if err := export.WriteXLSX(&buf, parsed); err != nil {
			return nil, fmt.Errorf("rendering XLSX report: %w", err)
		}
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return nil, domain.ErrNotFound
	}

	s.recordAudit(ctx, contractID, userID, format)

	return &Report{
		Data:        buf.Bytes(),
		Filename:    export.BuildFilename(meta.OriginalName, format),
		ContentType: contentType,
	}, nil
}

func (s *reportService) recordAudit(ctx context.Context, contractID, userID uuid.UUID, format string) {
	event := &domain.AuditEvent{
		ContractID: contractID,
		UserID:     userID,
		Action:     domain.AuditReportExported,
		Detail:     format,
	}
	if err := s.auditRepo.Record(ctx, event); err != nil {
		log.Printf("reportService: failed to record audit event: %v", err)
	}
}
