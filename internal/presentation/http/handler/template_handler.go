package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ksdarko/genslip-api/internal/application/service"
	"github.com/ksdarko/genslip-api/internal/domain/entity"
	"github.com/ksdarko/genslip-api/internal/presentation/http/dto/request"
	"github.com/ksdarko/genslip-api/internal/presentation/http/dto/response"
)

// TemplateHandler handles template-related HTTP requests
type TemplateHandler struct {
	templateService *service.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// List handles listing templates
// @Summary List Templates
// @Description Get the built-in presets plus the user's custom templates
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	templates, err := h.templateService.ListTemplates(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Templates retrieved successfully", gin.H{
		"templates": templates,
	})
}

// Get handles getting a single template
// @Summary Get Template
// @Description Get a template by ID
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} response.APIResponse
// @Router /templates/{id} [get]
func (h *TemplateHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	template, err := h.templateService.GetTemplate(c.Request.Context(), *userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Template retrieved successfully", gin.H{
		"template": template,
	})
}

// Create handles creating a custom template
// @Summary Create Template
// @Description Create a custom template for the current user
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateTemplateRequest true "Template data"
// @Success 201 {object} response.APIResponse
// @Router /templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), &service.CreateTemplateInput{
		UserID:      *userID,
		Name:        req.Name,
		Description: req.Description,
		Theme: entity.TemplateTheme{
			Background:        req.Theme.Background,
			FormBackground:    req.Theme.FormBackground,
			PreviewBackground: req.Theme.PreviewBackground,
			PrimaryText:       req.Theme.PrimaryText,
			SecondaryText:     req.Theme.SecondaryText,
			Accent:            req.Theme.Accent,
			Border:            req.Theme.Border,
			Subtle:            req.Theme.Subtle,
			HeadingFont:       req.Theme.HeadingFont,
			BodyFont:          req.Theme.BodyFont,
			ReceiptFont:       req.Theme.ReceiptFont,
			BorderRadius:      req.Theme.BorderRadius,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Template created successfully", gin.H{
		"template": template,
	})
}

// Delete handles deleting a custom template
// @Summary Delete Template
// @Description Delete a custom template (built-in presets cannot be deleted)
// @Tags templates
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 200 {object} response.APIResponse
// @Router /templates/{id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.templateService.DeleteTemplate(c.Request.Context(), *userID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Template deleted successfully", nil)
}
