package request

// TemplateThemeRequest represents the styling payload for a custom template
type TemplateThemeRequest struct {
	Background        string `json:"background"`
	FormBackground    string `json:"form_background"`
	PreviewBackground string `json:"preview_background"`
	PrimaryText       string `json:"primary_text"`
	SecondaryText     string `json:"secondary_text"`
	Accent            string `json:"accent"`
	Border            string `json:"border"`
	Subtle            string `json:"subtle"`
	HeadingFont       string `json:"heading_font"`
	BodyFont          string `json:"body_font"`
	ReceiptFont       string `json:"receipt_font"`
	BorderRadius      string `json:"border_radius"`
}

// CreateTemplateRequest represents a custom template creation request
type CreateTemplateRequest struct {
	Name        string               `json:"name" binding:"required,min=1,max=255"`
	Description string               `json:"description" binding:"max=255"`
	Theme       TemplateThemeRequest `json:"theme"`
}
