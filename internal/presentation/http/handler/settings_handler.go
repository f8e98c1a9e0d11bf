package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ksdarko/genslip-api/internal/application/service"
	"github.com/ksdarko/genslip-api/internal/presentation/http/dto/request"
	"github.com/ksdarko/genslip-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles fetching user settings
// @Summary Get Settings
// @Description Get the current user's editor defaults
// @Tags settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", gin.H{
		"settings": settings,
	})
}

// Update handles updating user settings
// @Summary Update Settings
// @Description Update the current user's editor defaults
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdateSettingsRequest true "Settings data"
// @Success 200 {object} response.APIResponse
// @Router /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		UserID:            *userID,
		DefaultCurrency:   req.DefaultCurrency,
		DefaultTemplateID: req.DefaultTemplateID,
		DefaultTaxRate:    req.DefaultTaxRate,
		DefaultLevyRate:   req.DefaultLevyRate,
		DateFormat:        req.DateFormat,
		ExportFormat:      req.ExportFormat,
		PrintPaperWidth:   req.PrintPaperWidth,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", gin.H{
		"settings": settings,
	})
}
