package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/ksdarko/genslip-api/internal/domain/entity"
	"github.com/ksdarko/genslip-api/internal/domain/enum"
	"github.com/ksdarko/genslip-api/internal/domain/repository"
)

// SettingsService handles settings-related business logic
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

func defaultSettings(userID uuid.UUID) *entity.UserSettings {
	return &entity.UserSettings{
		UserID:            userID,
		DefaultCurrency:   enum.CurrencyCedi,
		DefaultTemplateID: "classic",
		DefaultTaxRate:    15,
		DefaultLevyRate:   2.5,
		DateFormat:        "DD/MM/YYYY",
		ExportFormat:      "html",
		PrintPaperWidth:   32,
	}
}

// GetSettings retrieves user settings, creating defaults if not exists
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// If no settings exist, create default settings
	if settings == nil {
		settings = defaultSettings(userID)
		if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating settings
type UpdateSettingsInput struct {
	UserID            uuid.UUID
	DefaultCurrency   string
	DefaultTemplateID string
	DefaultTaxRate    float64
	DefaultLevyRate   float64
	DateFormat        string
	ExportFormat      string
	PrintPaperWidth   int
}

// UpdateSettings updates user settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	// If no settings exist, start from defaults
	if settings == nil {
		settings = defaultSettings(input.UserID)
	}

	currency := enum.CurrencySymbol(input.DefaultCurrency)
	if !currency.Valid() {
		currency = enum.CurrencyCedi
	}
	settings.DefaultCurrency = currency
	if input.DefaultTemplateID != "" {
		settings.DefaultTemplateID = input.DefaultTemplateID
	}
	settings.DefaultTaxRate = input.DefaultTaxRate
	settings.DefaultLevyRate = input.DefaultLevyRate
	if input.DateFormat != "" {
		settings.DateFormat = input.DateFormat
	}
	if input.ExportFormat == "html" || input.ExportFormat == "text" {
		settings.ExportFormat = input.ExportFormat
	}
	if input.PrintPaperWidth > 0 {
		settings.PrintPaperWidth = input.PrintPaperWidth
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
