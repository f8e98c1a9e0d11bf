package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksdarko/genslip-api/internal/domain/entity"
	"github.com/ksdarko/genslip-api/internal/domain/enum"
	"github.com/ksdarko/genslip-api/pkg/apperror"
	"github.com/ksdarko/genslip-api/pkg/pagination"
)

func newReceiptServiceTest() (*ReceiptService, *fakeReceiptRepo, *fakeSettingsRepo) {
	receiptRepo := newFakeReceiptRepo()
	settingsRepo := newFakeSettingsRepo()
	return NewReceiptService(receiptRepo, settingsRepo), receiptRepo, settingsRepo
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestReceiptService_CreateReceipt(t *testing.T) {
	ctx := context.Background()

	t.Run("nil input yields the default slip", func(t *testing.T) {
		svc, repo, _ := newReceiptServiceTest()
		userID := uuid.New()

		receipt, err := svc.CreateReceipt(ctx, userID, nil)
		require.NoError(t, err)

		assert.Equal(t, "Your Brand", receipt.BrandName)
		assert.Equal(t, enum.CurrencyCedi, receipt.CurrencySymbol)
		require.Len(t, receipt.Items, 1)
		assert.Equal(t, "Sample Item", receipt.Items[0].Name)

		stored, err := repo.GetByID(ctx, userID, receipt.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
	})

	t.Run("saved settings overlay the defaults", func(t *testing.T) {
		svc, _, settingsRepo := newReceiptServiceTest()
		userID := uuid.New()
		require.NoError(t, settingsRepo.Upsert(ctx, &entity.UserSettings{
			UserID:            userID,
			DefaultCurrency:   enum.CurrencyEuro,
			DefaultTaxRate:    20,
			DefaultLevyRate:   0,
			DefaultTemplateID: "midnight",
		}))

		receipt, err := svc.CreateReceipt(ctx, userID, nil)
		require.NoError(t, err)

		assert.Equal(t, enum.CurrencyEuro, receipt.CurrencySymbol)
		assert.Equal(t, 20.0, receipt.TaxRatePercent)
		assert.Equal(t, 0.0, receipt.LevyRatePercent)
		require.NotNil(t, receipt.TemplateID)
		assert.Equal(t, "midnight", *receipt.TemplateID)
	})

	t.Run("payload fields win over settings and defaults", func(t *testing.T) {
		svc, _, _ := newReceiptServiceTest()
		userID := uuid.New()
		id := uuid.New()

		receipt, err := svc.CreateReceipt(ctx, userID, &SaveReceiptInput{
			ID:             &id,
			BrandName:      strPtr("Ama's Kitchen"),
			CurrencySymbol: strPtr("$"),
			Items: []ReceiptItemInput{
				{Name: "Waakye", Quantity: 1, UnitPrice: 20},
			},
			HasItems: true,
		})
		require.NoError(t, err)

		assert.Equal(t, id, receipt.ID)
		assert.Equal(t, "Ama's Kitchen", receipt.BrandName)
		assert.Equal(t, enum.CurrencyDollar, receipt.CurrencySymbol)
		require.Len(t, receipt.Items, 1)
		assert.Equal(t, "Waakye", receipt.Items[0].Name)
	})

	t.Run("invalid payload currency falls back to cedi", func(t *testing.T) {
		svc, _, _ := newReceiptServiceTest()

		receipt, err := svc.CreateReceipt(ctx, uuid.New(), &SaveReceiptInput{
			CurrencySymbol: strPtr("¥"),
		})
		require.NoError(t, err)
		assert.Equal(t, enum.CurrencyCedi, receipt.CurrencySymbol)
	})
}

func TestReceiptService_SaveReceipt(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id creates the receipt under that id", func(t *testing.T) {
		svc, repo, _ := newReceiptServiceTest()
		userID := uuid.New()
		id := uuid.New()

		receipt, err := svc.SaveReceipt(ctx, userID, id, &SaveReceiptInput{
			BrandName: strPtr("New Slip"),
		})
		require.NoError(t, err)
		assert.Equal(t, id, receipt.ID)

		stored, err := repo.GetByID(ctx, userID, id)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "New Slip", stored.BrandName)
	})

	t.Run("saving the same id twice overwrites", func(t *testing.T) {
		svc, repo, _ := newReceiptServiceTest()
		userID := uuid.New()
		id := uuid.New()

		_, err := svc.SaveReceipt(ctx, userID, id, &SaveReceiptInput{BrandName: strPtr("First")})
		require.NoError(t, err)
		_, err = svc.SaveReceipt(ctx, userID, id, &SaveReceiptInput{BrandName: strPtr("Second")})
		require.NoError(t, err)

		stored, err := repo.GetByID(ctx, userID, id)
		require.NoError(t, err)
		assert.Equal(t, "Second", stored.BrandName)

		count, err := repo.Count(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("absent fields keep the current values", func(t *testing.T) {
		svc, _, _ := newReceiptServiceTest()
		userID := uuid.New()
		id := uuid.New()

		_, err := svc.SaveReceipt(ctx, userID, id, &SaveReceiptInput{
			BrandName:      strPtr("Keep Me"),
			DiscountAmount: floatPtr(2),
		})
		require.NoError(t, err)

		receipt, err := svc.SaveReceipt(ctx, userID, id, &SaveReceiptInput{
			Phone: strPtr("020 000 0000"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Keep Me", receipt.BrandName)
		assert.Equal(t, 2.0, receipt.DiscountAmount)
		assert.Equal(t, "020 000 0000", receipt.Phone)
	})

	t.Run("empty items array clears the list", func(t *testing.T) {
		svc, _, _ := newReceiptServiceTest()
		userID := uuid.New()
		id := uuid.New()

		receipt, err := svc.SaveReceipt(ctx, userID, id, &SaveReceiptInput{
			Items:    nil,
			HasItems: true,
		})
		require.NoError(t, err)
		assert.Empty(t, receipt.Items)
	})

	t.Run("an id owned by another user behaves like a missing record", func(t *testing.T) {
		svc, _, _ := newReceiptServiceTest()
		id := uuid.New()

		_, err := svc.SaveReceipt(ctx, uuid.New(), id, &SaveReceiptInput{BrandName: strPtr("Mine")})
		require.NoError(t, err)

		// A different user saving under the same id gets a new receipt
		// attempt that the store rejects; the service reports not found.
		_, err = svc.SaveReceipt(ctx, uuid.New(), id, &SaveReceiptInput{BrandName: strPtr("Hijack")})
		require.Error(t, err)
		appErr := apperror.GetAppError(err)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})
}

func TestReceiptService_GetReceipt(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newReceiptServiceTest()
	userID := uuid.New()

	created, err := svc.CreateReceipt(ctx, userID, nil)
	require.NoError(t, err)

	got, err := svc.GetReceipt(ctx, userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	t.Run("missing id is not found", func(t *testing.T) {
		_, err := svc.GetReceipt(ctx, userID, uuid.New())
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
	})

	t.Run("another user's receipt is not found", func(t *testing.T) {
		_, err := svc.GetReceipt(ctx, uuid.New(), created.ID)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
	})
}

func TestReceiptService_ListReceipts(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newReceiptServiceTest()
	userID := uuid.New()

	for _, name := range []string{"Kofi's Chop Bar", "Ama's Kitchen", "Kofi Auto Parts"} {
		_, err := svc.CreateReceipt(ctx, userID, &SaveReceiptInput{BrandName: strPtr(name)})
		require.NoError(t, err)
	}
	// A receipt from someone else never shows up
	_, err := svc.CreateReceipt(ctx, uuid.New(), &SaveReceiptInput{BrandName: strPtr("Kofi Other")})
	require.NoError(t, err)

	t.Run("nil params default to page one", func(t *testing.T) {
		result, err := svc.ListReceipts(ctx, userID, nil, "")
		require.NoError(t, err)
		assert.Len(t, result.Items, 3)
		assert.Equal(t, int64(3), result.Pagination.Total)
		assert.Equal(t, 1, result.Pagination.CurrentPage)
	})

	t.Run("search filters by brand name", func(t *testing.T) {
		result, err := svc.ListReceipts(ctx, userID, nil, "kofi")
		require.NoError(t, err)
		assert.Len(t, result.Items, 2)
	})

	t.Run("pagination slices the result", func(t *testing.T) {
		result, err := svc.ListReceipts(ctx, userID, &pagination.PaginationParams{Page: 2, PerPage: 2}, "")
		require.NoError(t, err)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 2, result.Pagination.TotalPages)
		assert.True(t, result.Pagination.HasPrev)
		assert.False(t, result.Pagination.HasNext)
	})
}

func TestReceiptService_DeleteReceipt(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newReceiptServiceTest()
	userID := uuid.New()

	created, err := svc.CreateReceipt(ctx, userID, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReceipt(ctx, userID, created.ID))

	_, err = svc.GetReceipt(ctx, userID, created.ID)
	assert.Error(t, err)

	t.Run("deleting twice is not found", func(t *testing.T) {
		err := svc.DeleteReceipt(ctx, userID, created.ID)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
	})
}

func TestReceiptService_SetField(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newReceiptServiceTest()
	userID := uuid.New()

	created, err := svc.CreateReceipt(ctx, userID, nil)
	require.NoError(t, err)

	t.Run("persists the edit", func(t *testing.T) {
		updated, err := svc.SetField(ctx, userID, created.ID, "brand_name", "Renamed")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.BrandName)

		stored, err := repo.GetByID(ctx, userID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", stored.BrandName)
	})

	t.Run("unknown field maps to a bad request", func(t *testing.T) {
		_, err := svc.SetField(ctx, userID, created.ID, "bogus", 1)
		require.Error(t, err)
		appErr := apperror.GetAppError(err)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Contains(t, appErr.Message, "bogus")
	})
}

func TestReceiptService_ItemOperations(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newReceiptServiceTest()
	userID := uuid.New()

	created, err := svc.CreateReceipt(ctx, userID, nil)
	require.NoError(t, err)

	withItem, err := svc.AddItem(ctx, userID, created.ID)
	require.NoError(t, err)
	require.Len(t, withItem.Items, 2)
	newItemID := withItem.Items[1].ID

	updated, err := svc.UpdateItem(ctx, userID, created.ID, newItemID, "name", "Kelewele")
	require.NoError(t, err)
	assert.Equal(t, "Kelewele", updated.Items[1].Name)

	t.Run("unknown item field maps to a bad request", func(t *testing.T) {
		_, err := svc.UpdateItem(ctx, userID, created.ID, newItemID, "flavor", "spicy")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	})

	removed, err := svc.RemoveItem(ctx, userID, created.ID, newItemID)
	require.NoError(t, err)
	assert.Len(t, removed.Items, 1)

	t.Run("removing a missing item leaves the receipt unchanged", func(t *testing.T) {
		unchanged, err := svc.RemoveItem(ctx, userID, created.ID, uuid.New())
		require.NoError(t, err)
		assert.Len(t, unchanged.Items, 1)
	})
}

func TestReceiptService_GetTotals(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newReceiptServiceTest()
	userID := uuid.New()

	created, err := svc.CreateReceipt(ctx, userID, nil)
	require.NoError(t, err)

	totals, err := svc.GetTotals(ctx, userID, created.ID)
	require.NoError(t, err)

	assert.Equal(t, 25.0, totals.Subtotal)
	assert.Equal(t, 24.375, totals.FinalTotal)
}
