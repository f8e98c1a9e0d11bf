package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ksdarko/genslip-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ErrUnknownField is returned when an edit operation names a field that
// does not exist on the receipt or line item. Callers map it to a 400.
var ErrUnknownField = errors.New("unknown field")

// LineItem represents one purchased item row within a receipt.
// The ID is stable for the life of the row and is never reused after removal.
type LineItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID uuid.UUID      `gorm:"type:uuid;not null;index" json:"receipt_id"`
	Name      string         `gorm:"size:255" json:"name"`
	Quantity  float64        `gorm:"type:decimal(15,4);default:1" json:"quantity"`
	UnitPrice float64        `gorm:"type:decimal(15,4);default:0" json:"unit_price"`
	Position  int            `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// LineTotal is the derived row total. It is never stored.
func (li LineItem) LineTotal() float64 {
	return finiteOrZero(li.Quantity) * finiteOrZero(li.UnitPrice)
}

// BeforeCreate generates a UUID before creating a new line item
func (li *LineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "line_items"
}

// Receipt is one editable slip: brand header, ordered line items, tax/levy
// rates, discount, currency and optional manual total override. The ID is
// the client-visible logical key and doubles as the store record key, so
// saving the same receipt twice overwrites rather than duplicates.
type Receipt struct {
	ID              uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	BrandName       string              `gorm:"size:255" json:"brand_name"`
	Address         string              `gorm:"type:text" json:"address"`
	Phone           string              `gorm:"size:50" json:"phone"`
	Logo            *string             `gorm:"type:text" json:"logo,omitempty"`
	TaxRatePercent  float64             `gorm:"type:decimal(7,4);default:0" json:"tax_rate_percent"`
	LevyRatePercent float64             `gorm:"type:decimal(7,4);default:0" json:"levy_rate_percent"`
	DiscountAmount  float64             `gorm:"type:decimal(15,4);default:0" json:"discount_amount"`
	CurrencySymbol  enum.CurrencySymbol `gorm:"size:10;default:'GH₵'" json:"currency_symbol"`
	TotalOverride   string              `gorm:"size:100" json:"total_override"`
	UseManualTotal  bool                `gorm:"default:false" json:"use_manual_total"`
	TemplateID      *string             `gorm:"size:100" json:"template_id,omitempty"`
	SavedAt         time.Time           `gorm:"index" json:"saved_at"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	DeletedAt       gorm.DeletedAt      `gorm:"index" json:"-"`

	Items []LineItem `gorm:"foreignKey:ReceiptID" json:"items"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// NewDefaultReceipt returns a fresh receipt with the editor's seed values:
// placeholder brand details and exactly one sample line item.
func NewDefaultReceipt(userID uuid.UUID) Receipt {
	return Receipt{
		ID:              uuid.New(),
		UserID:          userID,
		BrandName:       "Your Brand",
		Address:         "123 Main Street, Anytown",
		Phone:           "(123) 456-7890",
		TaxRatePercent:  15,
		LevyRatePercent: 2.5,
		DiscountAmount:  5,
		CurrencySymbol:  enum.CurrencyCedi,
		TotalOverride:   "",
		UseManualTotal:  false,
		Items: []LineItem{
			{ID: uuid.New(), Name: "Sample Item", Quantity: 2, UnitPrice: 12.50, Position: 0},
		},
	}
}

// Clone returns a deep copy of the receipt. Edit operations work on copies
// so the caller's value is never mutated in place.
func (r Receipt) Clone() Receipt {
	out := r
	out.Items = make([]LineItem, len(r.Items))
	copy(out.Items, r.Items)
	return out
}

// SetField returns a copy of the receipt with one top-level field replaced.
// Field names match the JSON representation. An unrecognized name returns
// ErrUnknownField rather than silently doing nothing.
func (r Receipt) SetField(field string, value interface{}) (Receipt, error) {
	out := r.Clone()
	switch field {
	case "brand_name":
		out.BrandName = coerceString(value)
	case "address":
		out.Address = coerceString(value)
	case "phone":
		out.Phone = coerceString(value)
	case "logo":
		if value == nil {
			out.Logo = nil
		} else {
			logo := coerceString(value)
			out.Logo = &logo
		}
	case "tax_rate_percent":
		out.TaxRatePercent = coerceFloat(value)
	case "levy_rate_percent":
		out.LevyRatePercent = coerceFloat(value)
	case "discount_amount":
		out.DiscountAmount = coerceFloat(value)
	case "currency_symbol":
		symbol := enum.CurrencySymbol(coerceString(value))
		if !symbol.Valid() {
			symbol = enum.CurrencyCedi
		}
		out.CurrencySymbol = symbol
	case "total_override":
		out.TotalOverride = coerceString(value)
	case "use_manual_total":
		out.UseManualTotal = coerceBool(value)
	case "template_id":
		if value == nil {
			out.TemplateID = nil
		} else {
			id := coerceString(value)
			out.TemplateID = &id
		}
	default:
		return r, ErrUnknownField
	}
	return out, nil
}

// AddItem returns a copy of the receipt with a blank line item appended:
// fresh id, empty name, quantity 1, price 0.
func (r Receipt) AddItem() Receipt {
	out := r.Clone()
	out.Items = append(out.Items, LineItem{
		ID:        uuid.New(),
		ReceiptID: r.ID,
		Name:      "",
		Quantity:  1,
		UnitPrice: 0,
		Position:  len(out.Items),
	})
	return out
}

// RemoveItem returns a copy of the receipt without the matching line item.
// At most one row is removed; a non-existent id leaves the list unchanged.
func (r Receipt) RemoveItem(itemID uuid.UUID) Receipt {
	out := r.Clone()
	for i, item := range out.Items {
		if item.ID == itemID {
			out.Items = append(out.Items[:i:i], out.Items[i+1:]...)
			for j := range out.Items {
				out.Items[j].Position = j
			}
			break
		}
	}
	return out
}

// UpdateItem returns a copy of the receipt with one field of the matching
// line item replaced. A non-existent id is a no-op; an unrecognized field
// returns ErrUnknownField.
func (r Receipt) UpdateItem(itemID uuid.UUID, field string, value interface{}) (Receipt, error) {
	out := r.Clone()
	for i, item := range out.Items {
		if item.ID != itemID {
			continue
		}
		switch field {
		case "name":
			item.Name = coerceString(value)
		case "quantity":
			item.Quantity = coerceFloat(value)
		case "unit_price":
			item.UnitPrice = coerceFloat(value)
		default:
			return r, ErrUnknownField
		}
		out.Items[i] = item
		return out, nil
	}
	return out, nil
}
