package request

import "github.com/google/uuid"

// ReceiptItemRequest represents one line item in a save payload. Negative
// quantities and prices are accepted; refunds and corrections are real slips.
type ReceiptItemRequest struct {
	ID        *uuid.UUID `json:"id"`
	Name      string     `json:"name"`
	Quantity  float64    `json:"quantity"`
	UnitPrice float64    `json:"unit_price"`
}

// SaveReceiptRequest represents the full editor state for a create or save.
// All fields are optional; absent fields keep their current (or default)
// values. A present items array replaces the line items wholesale.
type SaveReceiptRequest struct {
	ID              *uuid.UUID            `json:"id"`
	BrandName       *string               `json:"brand_name"`
	Address         *string               `json:"address"`
	Phone           *string               `json:"phone"`
	Logo            *string               `json:"logo"`
	TaxRatePercent  *float64              `json:"tax_rate_percent"`
	LevyRatePercent *float64              `json:"levy_rate_percent"`
	DiscountAmount  *float64              `json:"discount_amount"`
	CurrencySymbol  *string               `json:"currency_symbol"`
	TotalOverride   *string               `json:"total_override"`
	UseManualTotal  *bool                 `json:"use_manual_total"`
	TemplateID      *string               `json:"template_id"`
	Items           *[]ReceiptItemRequest `json:"items"`
}

// SetFieldRequest represents a single top-level field edit
type SetFieldRequest struct {
	Field string      `json:"field" binding:"required"`
	Value interface{} `json:"value"`
}

// UpdateItemRequest represents a single line item field edit
type UpdateItemRequest struct {
	Field string      `json:"field" binding:"required"`
	Value interface{} `json:"value"`
}
