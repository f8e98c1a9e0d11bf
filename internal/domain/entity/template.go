package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TemplateTheme is the styling configuration a template carries. It is pure
// data consumed by the client renderer; nothing in the service layer
// branches on it.
type TemplateTheme struct {
	Background        string `gorm:"size:50" json:"background"`
	FormBackground    string `gorm:"size:50" json:"form_background"`
	PreviewBackground string `gorm:"size:50" json:"preview_background"`
	PrimaryText       string `gorm:"size:50" json:"primary_text"`
	SecondaryText     string `gorm:"size:50" json:"secondary_text"`
	Accent            string `gorm:"size:50" json:"accent"`
	Border            string `gorm:"size:50" json:"border"`
	Subtle            string `gorm:"size:50" json:"subtle"`
	HeadingFont       string `gorm:"size:100" json:"heading_font"`
	BodyFont          string `gorm:"size:100" json:"body_font"`
	ReceiptFont       string `gorm:"size:100" json:"receipt_font"`
	BorderRadius      string `gorm:"size:20" json:"border_radius"`
}

// Template is a receipt style preset. Built-in templates are seeded at
// startup and have no owner; custom templates belong to one user.
type Template struct {
	ID          string         `gorm:"size:100;primary_key" json:"id"`
	UserID      *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"size:255" json:"description"`
	BuiltIn     bool           `gorm:"default:false" json:"built_in"`
	Theme       TemplateTheme  `gorm:"embedded;embeddedPrefix:theme_" json:"theme"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName returns the table name for the Template model
func (Template) TableName() string {
	return "templates"
}

// BuiltInTemplates returns the seeded style presets in display order.
func BuiltInTemplates() []Template {
	return []Template{
		{
			ID:          "classic",
			Name:        "Modern Classic",
			Description: "Clean, professional, and timeless.",
			BuiltIn:     true,
			Theme: TemplateTheme{
				Background:        "#e2e1de",
				FormBackground:    "#f5f4f2",
				PreviewBackground: "#ffffff",
				PrimaryText:       "#1c1c1c",
				SecondaryText:     "#555",
				Accent:            "#7c3aed",
				Border:            "#ccc",
				Subtle:            "#e9e8e5",
				HeadingFont:       "'Inter', sans-serif",
				BodyFont:          "'Inter', sans-serif",
				ReceiptFont:       "'Courier New', monospace",
				BorderRadius:      "24px",
			},
		},
		{
			ID:          "midnight",
			Name:        "Midnight Express",
			Description: "A sleek and modern dark theme.",
			BuiltIn:     true,
			Theme: TemplateTheme{
				Background:        "#1a1d24",
				FormBackground:    "#252932",
				PreviewBackground: "#1a1d24",
				PrimaryText:       "#f0f0f0",
				SecondaryText:     "#a0a0a0",
				Accent:            "#3498db",
				Border:            "#444",
				Subtle:            "#333842",
				HeadingFont:       "'Roboto', sans-serif",
				BodyFont:          "'Roboto', sans-serif",
				ReceiptFont:       "'Fira Code', monospace",
				BorderRadius:      "16px",
			},
		},
		{
			ID:          "vintage",
			Name:        "Vintage Paper",
			Description: "Classic, warm, and reminiscent of old paper.",
			BuiltIn:     true,
			Theme: TemplateTheme{
				Background:        "#fdf6e3",
				FormBackground:    "#fbf1c7",
				PreviewBackground: "#fdf6e3",
				PrimaryText:       "#654321",
				SecondaryText:     "#8d6e63",
				Accent:            "#d32f2f",
				Border:            "#d7ccc8",
				Subtle:            "#efebe9",
				HeadingFont:       "'Merriweather', serif",
				BodyFont:          "'Lora', serif",
				ReceiptFont:       "'Cutive Mono', monospace",
				BorderRadius:      "8px",
			},
		},
		{
			ID:          "eco",
			Name:        "Eco Green",
			Description: "Fresh, natural, and environmentally friendly.",
			BuiltIn:     true,
			Theme: TemplateTheme{
				Background:        "#edf4f2",
				FormBackground:    "#ffffff",
				PreviewBackground: "#f8fbf7",
				PrimaryText:       "#0d5c46",
				SecondaryText:     "#4a7c6d",
				Accent:            "#27ae60",
				Border:            "#c8e6c9",
				Subtle:            "#e8f5e9",
				HeadingFont:       "'Poppins', sans-serif",
				BodyFont:          "'Poppins', sans-serif",
				ReceiptFont:       "'Source Code Pro', monospace",
				BorderRadius:      "20px",
			},
		},
		{
			ID:          "corporate",
			Name:        "Corporate Blue",
			Description: "Sharp, clean, and business-focused.",
			BuiltIn:     true,
			Theme: TemplateTheme{
				Background:        "#f0f4f8",
				FormBackground:    "#ffffff",
				PreviewBackground: "#f8f9fa",
				PrimaryText:       "#0a2540",
				SecondaryText:     "#525f7f",
				Accent:            "#007bff",
				Border:            "#dee2e6",
				Subtle:            "#e9ecef",
				HeadingFont:       "'Lato', sans-serif",
				BodyFont:          "'Lato', sans-serif",
				ReceiptFont:       "'Roboto Mono', monospace",
				BorderRadius:      "12px",
			},
		},
	}
}
