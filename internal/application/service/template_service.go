package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/ksdarko/genslip-api/internal/domain/entity"
	"github.com/ksdarko/genslip-api/internal/domain/repository"
	"github.com/ksdarko/genslip-api/pkg/apperror"
	"github.com/ksdarko/genslip-api/pkg/utils"
)

// TemplateService handles receipt template operations. Built-in templates
// are shared and read-only; custom templates belong to one user.
type TemplateService struct {
	templateRepo repository.TemplateRepository
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo repository.TemplateRepository) *TemplateService {
	return &TemplateService{templateRepo: templateRepo}
}

// ListTemplates returns the built-in presets plus the user's custom templates
func (s *TemplateService) ListTemplates(ctx context.Context, userID uuid.UUID) ([]entity.Template, error) {
	return s.templateRepo.ListForUser(ctx, userID)
}

// GetTemplate retrieves a template visible to the user
func (s *TemplateService) GetTemplate(ctx context.Context, userID uuid.UUID, id string) (*entity.Template, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, apperror.NewNotFoundError("Template")
	}
	if !template.BuiltIn && (template.UserID == nil || *template.UserID != userID) {
		return nil, apperror.NewNotFoundError("Template")
	}
	return template, nil
}

// CreateTemplateInput represents the input for creating a custom template
type CreateTemplateInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
	Theme       entity.TemplateTheme
}

// CreateTemplate creates a custom template for the user
func (s *TemplateService) CreateTemplate(ctx context.Context, input *CreateTemplateInput) (*entity.Template, error) {
	userID := input.UserID
	template := &entity.Template{
		ID:          utils.GenerateTemplateID(),
		UserID:      &userID,
		Name:        input.Name,
		Description: input.Description,
		BuiltIn:     false,
		Theme:       input.Theme,
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// DeleteTemplate deletes a custom template. Built-in presets cannot be
// deleted.
func (s *TemplateService) DeleteTemplate(ctx context.Context, userID uuid.UUID, id string) error {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if template == nil {
		return apperror.NewNotFoundError("Template")
	}
	if template.BuiltIn {
		return apperror.NewBadRequestError("Built-in templates cannot be deleted")
	}
	if template.UserID == nil || *template.UserID != userID {
		return apperror.NewNotFoundError("Template")
	}
	return s.templateRepo.Delete(ctx, id)
}
