package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ksdarko/genslip-api/internal/domain/entity"
	domainRepo "github.com/ksdarko/genslip-api/internal/domain/repository"
	"gorm.io/gorm"
)

type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *gorm.DB) domainRepo.TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Create(ctx context.Context, template *entity.Template) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *templateRepository) GetByID(ctx context.Context, id string) (*entity.Template, error) {
	var template entity.Template
	err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &template, err
}

func (r *templateRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Template, error) {
	var templates []entity.Template
	err := r.db.WithContext(ctx).
		Where("built_in = ? OR user_id = ?", true, userID).
		Order("built_in DESC, created_at ASC").
		Find(&templates).Error
	return templates, err
}

func (r *templateRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Template{}, "id = ?", id).Error
}
