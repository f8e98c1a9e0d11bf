package request

// UpdateSettingsRequest represents a settings update request
type UpdateSettingsRequest struct {
	DefaultCurrency   string  `json:"default_currency"`
	DefaultTemplateID string  `json:"default_template_id"`
	DefaultTaxRate    float64 `json:"default_tax_rate"`
	DefaultLevyRate   float64 `json:"default_levy_rate"`
	DateFormat        string  `json:"date_format"`
	ExportFormat      string  `json:"export_format"`
	PrintPaperWidth   int     `json:"print_paper_width"`
}
