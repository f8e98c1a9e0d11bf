package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ksdarko/genslip-api/internal/domain/entity"
	"github.com/ksdarko/genslip-api/internal/domain/repository"
)

// In-memory repository fakes shared by the service tests.

type fakeReceiptRepo struct {
	receipts map[uuid.UUID]*entity.Receipt
	saveErr  error
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{receipts: make(map[uuid.UUID]*entity.Receipt)}
}

func (r *fakeReceiptRepo) Save(ctx context.Context, receipt *entity.Receipt) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if existing, ok := r.receipts[receipt.ID]; ok && existing.UserID != receipt.UserID {
		return repository.ErrNotOwned
	}
	receipt.SavedAt = time.Now()
	stored := receipt.Clone()
	r.receipts[receipt.ID] = &stored
	return nil
}

func (r *fakeReceiptRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Receipt, error) {
	receipt, ok := r.receipts[id]
	if !ok || receipt.UserID != userID {
		return nil, nil
	}
	out := receipt.Clone()
	return &out, nil
}

func (r *fakeReceiptRepo) List(ctx context.Context, userID uuid.UUID, params *repository.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	var matched []entity.Receipt
	for _, receipt := range r.receipts {
		if receipt.UserID != userID {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(receipt.BrandName), strings.ToLower(params.Search)) {
			continue
		}
		matched = append(matched, receipt.Clone())
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].SavedAt.After(matched[j].SavedAt)
	})

	total := int64(len(matched))
	offset := params.Pagination.Offset()
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + params.Pagination.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakeReceiptRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	delete(r.receipts, id)
	return nil
}

func (r *fakeReceiptRepo) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, receipt := range r.receipts {
		if receipt.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeReceiptRepo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	var n int64
	for _, receipt := range r.receipts {
		if receipt.UserID == userID && !receipt.SavedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *fakeReceiptRepo) LastSavedAt(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	var last *time.Time
	for _, receipt := range r.receipts {
		if receipt.UserID != userID {
			continue
		}
		savedAt := receipt.SavedAt
		if last == nil || savedAt.After(*last) {
			last = &savedAt
		}
	}
	return last, nil
}

type fakeSettingsRepo struct {
	settings map[uuid.UUID]*entity.UserSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[uuid.UUID]*entity.UserSettings)}
}

func (r *fakeSettingsRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, ok := r.settings[userID]
	if !ok {
		return nil, nil
	}
	out := *settings
	return &out, nil
}

func (r *fakeSettingsRepo) Upsert(ctx context.Context, settings *entity.UserSettings) error {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	stored := *settings
	r.settings[settings.UserID] = &stored
	return nil
}

type fakeTemplateRepo struct {
	templates map[string]*entity.Template
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	repo := &fakeTemplateRepo{templates: make(map[string]*entity.Template)}
	for _, tpl := range entity.BuiltInTemplates() {
		stored := tpl
		repo.templates[tpl.ID] = &stored
	}
	return repo
}

func (r *fakeTemplateRepo) Create(ctx context.Context, template *entity.Template) error {
	stored := *template
	r.templates[template.ID] = &stored
	return nil
}

func (r *fakeTemplateRepo) GetByID(ctx context.Context, id string) (*entity.Template, error) {
	template, ok := r.templates[id]
	if !ok {
		return nil, nil
	}
	out := *template
	return &out, nil
}

func (r *fakeTemplateRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Template, error) {
	var out []entity.Template
	for _, template := range r.templates {
		if template.BuiltIn || (template.UserID != nil && *template.UserID == userID) {
			out = append(out, *template)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BuiltIn != out[j].BuiltIn {
			return out[i].BuiltIn
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeTemplateRepo) Delete(ctx context.Context, id string) error {
	delete(r.templates, id)
	return nil
}

// failingPrinter always errors, for exercising print failure paths.
type failingPrinter struct{}

func (failingPrinter) Print(data []byte) error { return errors.New("printer offline") }
func (failingPrinter) Close() error            { return nil }
func (failingPrinter) IsConnected() bool       { return false }
