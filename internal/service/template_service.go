package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"contractiq/internal/contract"
	"contractiq/internal/domain"
	"contractiq/internal/port"
	"contractiq/internal/render"
)

// TemplateService lists templates, checks compatibility against a contract's
// analyzed type, and populates templates with extracted fields.
type TemplateService interface {
	ListTemplates() []contract.TemplateName
	CompatibleTemplates(ctx context.Context, contractID uuid.UUID) (contract.CanonicalType, []contract.TemplateName, error)
	Populate(ctx context.Context, contractID, userID uuid.UUID, name contract.TemplateName) (string, error)
	RenderDocx(ctx context.Context, contractID, userID uuid.UUID, name contract.TemplateName) ([]byte, error)
}

type templateService struct {
	analysisRepo port.AnalysisRepository
	auditRepo    port.AuditRepository
	registry     *contract.Registry
	matrix       *contract.Matrix
	populator    *contract.Populator
	renderer     *render.DocxRenderer
}

// NewTemplateService creates a new TemplateService implementation.
func NewTemplateService(
	analysisRepo port.AnalysisRepository,
	auditRepo port.AuditRepository,
	registry *contract.Registry,
	matrix *contract.Matrix,
	populator *contract.Populator,
	renderer *render.DocxRenderer,
) TemplateService {
	return &templateService{
		analysisRepo: analysisRepo,
		auditRepo:    auditRepo,
		registry:     registry,
		matrix:       matrix,
		populator:    populator,
		renderer:     renderer,
	}
}

func (s *templateService) ListTemplates() []contract.TemplateName {
	return s.registry.AllTemplateNames()
}

func (s *templateService) CompatibleTemplates(ctx context.Context, contractID uuid.UUID) (contract.CanonicalType, []contract.TemplateName, error) {
	canonical, _, err := s.analyzedType(ctx, contractID)
	if err != nil {
		return "", nil, err
	}
	return canonical, s.matrix.CompatibleTemplates(canonical), nil
}

func (s *templateService) Populate(ctx context.Context, contractID, userID uuid.UUID, name contract.TemplateName) (string, error) {
	fields, err := s.gate(ctx, contractID, name)
	if err != nil {
		return "", err
	}

	text := s.populator.Populate(name, fields)
	s.recordAudit(ctx, contractID, userID, string(name)+" (text)")
	return text, nil
}

func (s *templateService) RenderDocx(ctx context.Context, contractID, userID uuid.UUID, name contract.TemplateName) ([]byte, error) {
	fields, err := s.gate(ctx, contractID, name)
	if err != nil {
		return nil, err
	}

	doc, err := s.renderer.Render(name, fields)
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, contractID, userID, string(name)+" (docx)")
	return doc, nil
}

// gate verifies the template exists and is compatible with the contract's
// analyzed type, then returns the extracted fields for population.
func (s *templateService) gate(ctx context.Context, contractID uuid.UUID, name contract.TemplateName) (contract.FieldSet, error) {
	if _, ok := s.registry.Template(name); !ok {
		return nil, domain.ErrUnknownTemplate
	}

	canonical, analysis, err := s.analyzedType(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if !s.matrix.IsCompatible(canonical, name) {
		log.Printf("templateService: template %s incompatible with %s contract %s", name, canonical, contractID)
		return nil, domain.ErrTemplateIncompatible
	}

	fields := contract.FieldSet{}
	if len(analysis.ExtractedFields) > 0 {
		if err := json.Unmarshal(analysis.ExtractedFields, &fields); err != nil {
			return nil, fmt.Errorf("decoding extracted fields: %w", err)
		}
	}
	if len(fields) == 0 {
		fields = contract.EmptyFieldSet()
		fields["contract_type"] = string(canonical)
	}
	return fields, nil
}

func (s *templateService) analyzedType(ctx context.Context, contractID uuid.UUID) (contract.CanonicalType, *domain.Analysis, error) {
	analysis, err := s.analysisRepo.GetByContractID(ctx, contractID)
	if err != nil {
		return "", nil, err
	}
	switch analysis.Status {
	case domain.AnalysisStatusCompleted:
	case domain.AnalysisStatusFailed:
		return "", nil, domain.ErrAnalysisNotFound
	default:
		return "", nil, domain.ErrAnalysisNotComplete
	}
	return contract.Normalize(analysis.ContractType), analysis, nil
}

func (s *templateService) recordAudit(ctx context.Context, contractID, userID uuid.UUID, detail string) {
	event := &domain.AuditEvent{
		ContractID: contractID,
		UserID:     userID,
		Action:     domain.AuditTemplateGenerated,
		Detail:     detail,
	}
	if err := s.auditRepo.Record(ctx, event); err != nil {
		log.Printf("templateService: failed to record audit event: %v", err)
	}
}
