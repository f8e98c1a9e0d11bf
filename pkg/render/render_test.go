package render

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksdarko/genslip-api/internal/domain/entity"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatHTML, false},
		{"html", FormatHTML, false},
		{"HTML", FormatHTML, false},
		{"text", FormatText, false},
		{"txt", FormatText, false},
		{" text ", FormatText, false},
		{"pdf", "", true},
		{"docx", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestFormat_ContentType(t *testing.T) {
	assert.Equal(t, "text/html; charset=utf-8", FormatHTML.ContentType())
	assert.Equal(t, "text/plain; charset=utf-8", FormatText.ContentType())
}

func TestFilenameAt(t *testing.T) {
	at := time.UnixMilli(1714764000123)

	assert.Equal(t, "receipt-1714764000123.html", FilenameAt(at, FormatHTML))
	assert.Equal(t, "receipt-1714764000123.txt", FilenameAt(at, FormatText))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "GH₵25.00", Money("GH₵", 25))
	assert.Equal(t, "$0.50", Money("$", 0.5))
	assert.Equal(t, "-€3.75", Money("€", -3.75))
	assert.Equal(t, "£1234.57", Money("£", 1234.5678))
}

func TestReceipt_RendersBothFormats(t *testing.T) {
	r := entity.NewDefaultReceipt(uuid.New())

	html, err := Receipt(&r, FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1>Your Brand</h1>")
	assert.Contains(t, string(html), "2 x Sample Item")
	assert.Contains(t, string(html), "GH₵25.00")
	assert.Contains(t, string(html), "Tax/VAT (15%)")
	assert.Contains(t, string(html), "Levy/NHIL (2.5%)")
	assert.Contains(t, string(html), "-GH₵5.00")
	assert.Contains(t, string(html), "GH₵24.38")

	text, err := Receipt(&r, FormatText)
	require.NoError(t, err)
	assert.Contains(t, string(text), "Your Brand")
	assert.Contains(t, string(text), "2 x Sample Item")
	assert.Contains(t, string(text), "Total")
}

func TestReceipt_IsDeterministic(t *testing.T) {
	r := entity.NewDefaultReceipt(uuid.New())

	first, err := Receipt(&r, FormatHTML)
	require.NoError(t, err)
	second, err := Receipt(&r, FormatHTML)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReceipt_OmitsZeroDiscount(t *testing.T) {
	r := entity.NewDefaultReceipt(uuid.New())
	r.DiscountAmount = 0

	html, err := Receipt(&r, FormatHTML)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "Discount")

	text, err := Receipt(&r, FormatText)
	require.NoError(t, err)
	assert.NotContains(t, string(text), "Discount")
}

func TestReceipt_ItemsKeepInsertionOrder(t *testing.T) {
	r := entity.NewDefaultReceipt(uuid.New())
	r.Items = []entity.LineItem{
		{ID: uuid.New(), Name: "First", Quantity: 1, UnitPrice: 1},
		{ID: uuid.New(), Name: "Second", Quantity: 1, UnitPrice: 2},
		{ID: uuid.New(), Name: "Third", Quantity: 1, UnitPrice: 3},
	}

	text, err := Receipt(&r, FormatText)
	require.NoError(t, err)

	s := string(text)
	assert.Less(t, strings.Index(s, "First"), strings.Index(s, "Second"))
	assert.Less(t, strings.Index(s, "Second"), strings.Index(s, "Third"))
}

func TestReceipt_HonorsManualOverride(t *testing.T) {
	r := entity.NewDefaultReceipt(uuid.New())
	r.UseManualTotal = true
	r.TotalOverride = "30"

	html, err := Receipt(&r, FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, string(html), "GH₵30.00")
}

func TestReceipt_RendersLogoOnlyWhenSet(t *testing.T) {
	r := entity.NewDefaultReceipt(uuid.New())

	html, err := Receipt(&r, FormatHTML)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<img")

	logo := "https://example.com/logo.png"
	r.Logo = &logo
	html, err = Receipt(&r, FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, string(html), `<img src="https://example.com/logo.png"`)
}
