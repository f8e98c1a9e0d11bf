package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ksdarko/genslip-api/internal/domain/entity"
	"github.com/ksdarko/genslip-api/pkg/pagination"
)

// ErrNotOwned is returned by Save when the receipt id already exists under a
// different user. Handlers treat it like a missing record.
var ErrNotOwned = errors.New("receipt belongs to another user")

// ReceiptRepository defines the interface for receipt data operations.
// Every operation is scoped to the owning user: a receipt id belonging to
// another user behaves exactly like a missing record.
type ReceiptRepository interface {
	// Save upserts a receipt and its line items keyed by the receipt's
	// client-generated id. Saving the same id twice overwrites.
	Save(ctx context.Context, receipt *entity.Receipt) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Receipt, error)
	List(ctx context.Context, userID uuid.UUID, params *ReceiptFilterParams) ([]entity.Receipt, int64, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error)
	LastSavedAt(ctx context.Context, userID uuid.UUID) (*time.Time, error)
}

// ReceiptFilterParams contains filtering parameters for receipt queries
type ReceiptFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
}

// TemplateRepository defines the interface for template data operations
type TemplateRepository interface {
	Create(ctx context.Context, template *entity.Template) error
	GetByID(ctx context.Context, id string) (*entity.Template, error)
	// ListForUser returns the built-in presets plus the user's custom templates.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Template, error)
	Delete(ctx context.Context, id string) error
}

// SettingsRepository defines the interface for user settings operations
type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)
	Upsert(ctx context.Context, settings *entity.UserSettings) error
}
