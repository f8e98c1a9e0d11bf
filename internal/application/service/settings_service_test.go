package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksdarko/genslip-api/internal/domain/enum"
)

func TestSettingsService_GetSettings(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)
	userID := uuid.New()

	t.Run("first read creates and stores defaults", func(t *testing.T) {
		settings, err := svc.GetSettings(ctx, userID)
		require.NoError(t, err)

		assert.Equal(t, enum.CurrencyCedi, settings.DefaultCurrency)
		assert.Equal(t, "classic", settings.DefaultTemplateID)
		assert.Equal(t, 15.0, settings.DefaultTaxRate)
		assert.Equal(t, 2.5, settings.DefaultLevyRate)
		assert.Equal(t, "DD/MM/YYYY", settings.DateFormat)
		assert.Equal(t, "html", settings.ExportFormat)
		assert.Equal(t, 32, settings.PrintPaperWidth)

		stored, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, stored)
	})

	t.Run("subsequent reads return the stored row", func(t *testing.T) {
		first, err := svc.GetSettings(ctx, userID)
		require.NoError(t, err)

		second, err := svc.GetSettings(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(newFakeSettingsRepo())
	userID := uuid.New()

	t.Run("updates all fields", func(t *testing.T) {
		settings, err := svc.UpdateSettings(ctx, &UpdateSettingsInput{
			UserID:            userID,
			DefaultCurrency:   "€",
			DefaultTemplateID: "vintage",
			DefaultTaxRate:    20,
			DefaultLevyRate:   1,
			DateFormat:        "YYYY-MM-DD",
			ExportFormat:      "text",
			PrintPaperWidth:   48,
		})
		require.NoError(t, err)

		assert.Equal(t, enum.CurrencyEuro, settings.DefaultCurrency)
		assert.Equal(t, "vintage", settings.DefaultTemplateID)
		assert.Equal(t, 20.0, settings.DefaultTaxRate)
		assert.Equal(t, 1.0, settings.DefaultLevyRate)
		assert.Equal(t, "YYYY-MM-DD", settings.DateFormat)
		assert.Equal(t, "text", settings.ExportFormat)
		assert.Equal(t, 48, settings.PrintPaperWidth)
	})

	t.Run("invalid currency falls back to cedi", func(t *testing.T) {
		settings, err := svc.UpdateSettings(ctx, &UpdateSettingsInput{
			UserID:          userID,
			DefaultCurrency: "USD",
		})
		require.NoError(t, err)
		assert.Equal(t, enum.CurrencyCedi, settings.DefaultCurrency)
	})

	t.Run("unsupported export format keeps the current one", func(t *testing.T) {
		before, err := svc.GetSettings(ctx, userID)
		require.NoError(t, err)

		settings, err := svc.UpdateSettings(ctx, &UpdateSettingsInput{
			UserID:          userID,
			DefaultCurrency: "GH₵",
			ExportFormat:    "pdf",
		})
		require.NoError(t, err)
		assert.Equal(t, before.ExportFormat, settings.ExportFormat)
	})

	t.Run("zero paper width keeps the current one", func(t *testing.T) {
		settings, err := svc.UpdateSettings(ctx, &UpdateSettingsInput{
			UserID:          userID,
			DefaultCurrency: "GH₵",
			PrintPaperWidth: 0,
		})
		require.NoError(t, err)
		assert.Greater(t, settings.PrintPaperWidth, 0)
	})
}
