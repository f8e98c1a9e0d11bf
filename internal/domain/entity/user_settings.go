package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/ksdarko/genslip-api/internal/domain/enum"
	"gorm.io/gorm"
)

// UserSettings represents the defaults applied when a user opens the editor
type UserSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Editor defaults
	DefaultCurrency   enum.CurrencySymbol `gorm:"size:10;default:'GH₵'" json:"default_currency"`
	DefaultTemplateID string              `gorm:"size:100;default:'classic'" json:"default_template_id"`
	DefaultTaxRate    float64             `gorm:"type:decimal(7,4);default:15" json:"default_tax_rate"`
	DefaultLevyRate   float64             `gorm:"type:decimal(7,4);default:2.5" json:"default_levy_rate"`
	DateFormat        string              `gorm:"size:20;default:'DD/MM/YYYY'" json:"date_format"`

	// Export preferences
	ExportFormat    string `gorm:"size:10;default:'html'" json:"export_format"`
	PrintPaperWidth int    `gorm:"default:32" json:"print_paper_width"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UserSettings model
func (UserSettings) TableName() string {
	return "user_settings"
}
