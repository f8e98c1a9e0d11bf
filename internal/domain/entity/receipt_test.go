package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksdarko/genslip-api/internal/domain/enum"
)

func TestNewDefaultReceipt(t *testing.T) {
	userID := uuid.New()
	r := NewDefaultReceipt(userID)

	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.Equal(t, userID, r.UserID)
	assert.Equal(t, "Your Brand", r.BrandName)
	assert.Equal(t, "123 Main Street, Anytown", r.Address)
	assert.Equal(t, "(123) 456-7890", r.Phone)
	assert.Equal(t, 15.0, r.TaxRatePercent)
	assert.Equal(t, 2.5, r.LevyRatePercent)
	assert.Equal(t, 5.0, r.DiscountAmount)
	assert.Equal(t, enum.CurrencyCedi, r.CurrencySymbol)
	assert.False(t, r.UseManualTotal)

	require.Len(t, r.Items, 1)
	assert.Equal(t, "Sample Item", r.Items[0].Name)
	assert.Equal(t, 2.0, r.Items[0].Quantity)
	assert.Equal(t, 12.50, r.Items[0].UnitPrice)
}

func TestReceipt_Totals(t *testing.T) {
	t.Run("default receipt", func(t *testing.T) {
		r := NewDefaultReceipt(uuid.New())
		totals := r.Totals()

		// 2 x 12.50 = 25.00
		assert.Equal(t, 25.0, totals.Subtotal)
		assert.Equal(t, 3.75, totals.TaxAmount)
		assert.Equal(t, 0.625, totals.LevyAmount)
		assert.Equal(t, 5.0, totals.Discount)
		assert.Equal(t, 24.375, totals.ComputedTotal)
		assert.Equal(t, totals.ComputedTotal, totals.FinalTotal)
	})

	t.Run("no items", func(t *testing.T) {
		r := NewDefaultReceipt(uuid.New())
		r.Items = nil
		totals := r.Totals()

		assert.Equal(t, 0.0, totals.Subtotal)
		assert.Equal(t, 0.0, totals.TaxAmount)
		assert.Equal(t, 0.0, totals.LevyAmount)
		assert.Equal(t, -5.0, totals.ComputedTotal)
	})

	t.Run("manual override wins when toggled on", func(t *testing.T) {
		r := NewDefaultReceipt(uuid.New())
		r.UseManualTotal = true
		r.TotalOverride = "30"

		totals := r.Totals()
		assert.Equal(t, 24.375, totals.ComputedTotal)
		assert.Equal(t, 30.0, totals.FinalTotal)
	})

	t.Run("override ignored when toggle is off", func(t *testing.T) {
		r := NewDefaultReceipt(uuid.New())
		r.UseManualTotal = false
		r.TotalOverride = "30"

		assert.Equal(t, 24.375, r.Totals().FinalTotal)
	})

	t.Run("blank override falls back to computed", func(t *testing.T) {
		r := NewDefaultReceipt(uuid.New())
		r.UseManualTotal = true
		r.TotalOverride = "   "

		assert.Equal(t, 24.375, r.Totals().FinalTotal)
	})

	t.Run("unparseable override falls back to computed", func(t *testing.T) {
		r := NewDefaultReceipt(uuid.New())
		r.UseManualTotal = true

		for _, override := range []string{"abc", "12abc", "NaN", "+Inf", "-Inf"} {
			r.TotalOverride = override
			assert.Equal(t, 24.375, r.Totals().FinalTotal, "override %q", override)
		}
	})

	t.Run("negative quantities and prices flow through", func(t *testing.T) {
		r := NewDefaultReceipt(uuid.New())
		r.TaxRatePercent = 0
		r.LevyRatePercent = 0
		r.DiscountAmount = 0
		r.Items = []LineItem{
			{ID: uuid.New(), Name: "Refund", Quantity: -1, UnitPrice: 10},
		}

		totals := r.Totals()
		assert.Equal(t, -10.0, totals.Subtotal)
		assert.Equal(t, -10.0, totals.FinalTotal)
	})

	t.Run("is pure", func(t *testing.T) {
		r := NewDefaultReceipt(uuid.New())
		first := r.Totals()
		second := r.Totals()
		assert.Equal(t, first, second)
	})
}

func TestReceipt_SetField(t *testing.T) {
	original := NewDefaultReceipt(uuid.New())

	t.Run("replaces a string field without mutating the original", func(t *testing.T) {
		updated, err := original.SetField("brand_name", "Kofi's Chop Bar")
		require.NoError(t, err)

		assert.Equal(t, "Kofi's Chop Bar", updated.BrandName)
		assert.Equal(t, "Your Brand", original.BrandName)
	})

	t.Run("replaces numeric fields", func(t *testing.T) {
		updated, err := original.SetField("tax_rate_percent", 12.5)
		require.NoError(t, err)
		assert.Equal(t, 12.5, updated.TaxRatePercent)

		updated, err = original.SetField("discount_amount", "7.25")
		require.NoError(t, err)
		assert.Equal(t, 7.25, updated.DiscountAmount)
	})

	t.Run("invalid currency falls back to cedi", func(t *testing.T) {
		updated, err := original.SetField("currency_symbol", "¥")
		require.NoError(t, err)
		assert.Equal(t, enum.CurrencyCedi, updated.CurrencySymbol)

		updated, err = original.SetField("currency_symbol", "$")
		require.NoError(t, err)
		assert.Equal(t, enum.CurrencyDollar, updated.CurrencySymbol)
	})

	t.Run("nil clears nullable fields", func(t *testing.T) {
		withLogo, err := original.SetField("logo", "data:image/png;base64,abc")
		require.NoError(t, err)
		require.NotNil(t, withLogo.Logo)

		cleared, err := withLogo.SetField("logo", nil)
		require.NoError(t, err)
		assert.Nil(t, cleared.Logo)
	})

	t.Run("toggle accepts loose truthy values", func(t *testing.T) {
		updated, err := original.SetField("use_manual_total", true)
		require.NoError(t, err)
		assert.True(t, updated.UseManualTotal)

		updated, err = original.SetField("use_manual_total", "true")
		require.NoError(t, err)
		assert.True(t, updated.UseManualTotal)

		updated, err = original.SetField("use_manual_total", 0.0)
		require.NoError(t, err)
		assert.False(t, updated.UseManualTotal)
	})

	t.Run("unknown field is an error", func(t *testing.T) {
		_, err := original.SetField("not_a_field", "x")
		assert.ErrorIs(t, err, ErrUnknownField)
	})
}

func TestReceipt_AddItem(t *testing.T) {
	original := NewDefaultReceipt(uuid.New())
	updated := original.AddItem()

	require.Len(t, updated.Items, 2)
	assert.Len(t, original.Items, 1)

	added := updated.Items[1]
	assert.NotEqual(t, uuid.Nil, added.ID)
	assert.NotEqual(t, updated.Items[0].ID, added.ID)
	assert.Equal(t, "", added.Name)
	assert.Equal(t, 1.0, added.Quantity)
	assert.Equal(t, 0.0, added.UnitPrice)
	assert.Equal(t, 1, added.Position)
}

func TestReceipt_RemoveItem(t *testing.T) {
	t.Run("removes the matching item and renumbers", func(t *testing.T) {
		r := NewDefaultReceipt(uuid.New()).AddItem().AddItem()
		require.Len(t, r.Items, 3)

		removed := r.RemoveItem(r.Items[1].ID)
		require.Len(t, removed.Items, 2)
		assert.Equal(t, r.Items[0].ID, removed.Items[0].ID)
		assert.Equal(t, r.Items[2].ID, removed.Items[1].ID)
		assert.Equal(t, 0, removed.Items[0].Position)
		assert.Equal(t, 1, removed.Items[1].Position)
	})

	t.Run("unknown id leaves the list unchanged", func(t *testing.T) {
		r := NewDefaultReceipt(uuid.New())
		removed := r.RemoveItem(uuid.New())
		assert.Equal(t, r.Items, removed.Items)
	})

	t.Run("does not mutate the original", func(t *testing.T) {
		r := NewDefaultReceipt(uuid.New())
		_ = r.RemoveItem(r.Items[0].ID)
		assert.Len(t, r.Items, 1)
	})
}

func TestReceipt_UpdateItem(t *testing.T) {
	r := NewDefaultReceipt(uuid.New())
	itemID := r.Items[0].ID

	t.Run("updates one field of the matching item", func(t *testing.T) {
		updated, err := r.UpdateItem(itemID, "name", "Jollof Rice")
		require.NoError(t, err)
		assert.Equal(t, "Jollof Rice", updated.Items[0].Name)
		assert.Equal(t, "Sample Item", r.Items[0].Name)

		updated, err = r.UpdateItem(itemID, "quantity", 3)
		require.NoError(t, err)
		assert.Equal(t, 3.0, updated.Items[0].Quantity)

		updated, err = r.UpdateItem(itemID, "unit_price", "9.99")
		require.NoError(t, err)
		assert.Equal(t, 9.99, updated.Items[0].UnitPrice)
	})

	t.Run("unknown item id is a no-op", func(t *testing.T) {
		updated, err := r.UpdateItem(uuid.New(), "name", "x")
		require.NoError(t, err)
		assert.Equal(t, r.Items, updated.Items)
	})

	t.Run("unknown field is an error", func(t *testing.T) {
		_, err := r.UpdateItem(itemID, "color", "red")
		assert.ErrorIs(t, err, ErrUnknownField)
	})

	t.Run("garbage numeric input becomes zero", func(t *testing.T) {
		updated, err := r.UpdateItem(itemID, "quantity", "lots")
		require.NoError(t, err)
		assert.Equal(t, 0.0, updated.Items[0].Quantity)
	})
}

func TestReceipt_Clone(t *testing.T) {
	r := NewDefaultReceipt(uuid.New())
	clone := r.Clone()

	clone.Items[0].Name = "Changed"
	clone.BrandName = "Changed"

	assert.Equal(t, "Sample Item", r.Items[0].Name)
	assert.Equal(t, "Your Brand", r.BrandName)
}

func TestLineItem_LineTotal(t *testing.T) {
	assert.Equal(t, 25.0, LineItem{Quantity: 2, UnitPrice: 12.5}.LineTotal())
	assert.Equal(t, 0.0, LineItem{Quantity: 0, UnitPrice: 100}.LineTotal())
	assert.Equal(t, -15.0, LineItem{Quantity: -3, UnitPrice: 5}.LineTotal())
}
