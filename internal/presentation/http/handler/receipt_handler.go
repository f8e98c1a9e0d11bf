package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ksdarko/genslip-api/internal/application/service"
	"github.com/ksdarko/genslip-api/internal/presentation/http/dto/request"
	"github.com/ksdarko/genslip-api/internal/presentation/http/dto/response"
	"github.com/ksdarko/genslip-api/pkg/pagination"
	"github.com/ksdarko/genslip-api/pkg/render"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	exportService  *service.ExportService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService, exportService *service.ExportService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		exportService:  exportService,
	}
}

func toSaveInput(req *request.SaveReceiptRequest) *service.SaveReceiptInput {
	input := &service.SaveReceiptInput{
		ID:              req.ID,
		BrandName:       req.BrandName,
		Address:         req.Address,
		Phone:           req.Phone,
		Logo:            req.Logo,
		TaxRatePercent:  req.TaxRatePercent,
		LevyRatePercent: req.LevyRatePercent,
		DiscountAmount:  req.DiscountAmount,
		CurrencySymbol:  req.CurrencySymbol,
		TotalOverride:   req.TotalOverride,
		UseManualTotal:  req.UseManualTotal,
		TemplateID:      req.TemplateID,
	}
	if req.Items != nil {
		input.HasItems = true
		for _, item := range *req.Items {
			input.Items = append(input.Items, service.ReceiptItemInput{
				ID:        item.ID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}
	}
	return input
}

// Create handles creating a new receipt
// @Summary Create Receipt
// @Description Create a new receipt seeded with editor defaults, optionally overlaid with payload fields
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /receipts [post]
func (h *ReceiptHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var input *service.SaveReceiptInput
	if c.Request.ContentLength > 0 {
		var req request.SaveReceiptRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
		input = toSaveInput(&req)
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created successfully", gin.H{
		"receipt": receipt,
		"totals":  receipt.Totals(),
	})
}

// List handles listing the user's saved receipts
// @Summary List Receipts
// @Description Get saved receipts, most recently saved first
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search by brand name"
// @Success 200 {object} response.APIResponse
// @Router /receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	page := 1
	perPage := 15
	if p := c.Query("page"); p != "" {
		if parsed, err := parsePositiveInt(p); err == nil {
			page = parsed
		}
	}
	if pp := c.Query("per_page"); pp != "" {
		if parsed, err := parsePositiveInt(pp); err == nil {
			perPage = parsed
		}
	}

	result, err := h.receiptService.ListReceipts(c.Request.Context(), *userID, &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receipts retrieved successfully", result)
}

// Get handles getting a single receipt
// @Summary Get Receipt
// @Description Get a receipt by ID, including derived totals
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} response.APIResponse
// @Router /receipts/{id} [get]
func (h *ReceiptHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", gin.H{
		"receipt": receipt,
		"totals":  receipt.Totals(),
	})
}

// Save handles the full-state upsert of a receipt
// @Summary Save Receipt
// @Description Upsert the full editor state under the given receipt ID
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} response.APIResponse
// @Router /receipts/{id} [put]
func (h *ReceiptHandler) Save(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	var req request.SaveReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.SaveReceipt(c.Request.Context(), *userID, id, toSaveInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt saved successfully", gin.H{
		"receipt": receipt,
		"totals":  receipt.Totals(),
	})
}

// Delete handles deleting a receipt
// @Summary Delete Receipt
// @Description Delete a receipt and its line items
// @Tags receipts
// @Security BearerAuth
// @Param id path string true "Receipt ID"
// @Success 200 {object} response.APIResponse
// @Router /receipts/{id} [delete]
func (h *ReceiptHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt deleted successfully", nil)
}

// SetField handles a single top-level field edit
// @Summary Set Receipt Field
// @Description Replace one top-level field of a stored receipt
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Receipt ID"
// @Param request body request.SetFieldRequest true "Field edit"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /receipts/{id}/fields [patch]
func (h *ReceiptHandler) SetField(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	var req request.SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.SetField(c.Request.Context(), *userID, id, req.Field, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt updated successfully", gin.H{
		"receipt": receipt,
		"totals":  receipt.Totals(),
	})
}

// AddItem handles appending a blank line item
// @Summary Add Line Item
// @Description Append a blank line item to a stored receipt
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} response.APIResponse
// @Router /receipts/{id}/items [post]
func (h *ReceiptHandler) AddItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.AddItem(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added successfully", gin.H{
		"receipt": receipt,
		"totals":  receipt.Totals(),
	})
}

// UpdateItem handles a single line item field edit
// @Summary Update Line Item
// @Description Replace one field of one line item on a stored receipt
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Receipt ID"
// @Param itemId path string true "Line Item ID"
// @Param request body request.UpdateItemRequest true "Field edit"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /receipts/{id}/items/{itemId} [patch]
func (h *ReceiptHandler) UpdateItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.UpdateItem(c.Request.Context(), *userID, id, itemID, req.Field, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", gin.H{
		"receipt": receipt,
		"totals":  receipt.Totals(),
	})
}

// RemoveItem handles removing a line item
// @Summary Remove Line Item
// @Description Remove one line item from a stored receipt
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Receipt ID"
// @Param itemId path string true "Line Item ID"
// @Success 200 {object} response.APIResponse
// @Router /receipts/{id}/items/{itemId} [delete]
func (h *ReceiptHandler) RemoveItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	receipt, err := h.receiptService.RemoveItem(c.Request.Context(), *userID, id, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed successfully", gin.H{
		"receipt": receipt,
		"totals":  receipt.Totals(),
	})
}

// GetTotals handles the derived totals read
// @Summary Get Receipt Totals
// @Description Get the derived monetary totals for a stored receipt
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} response.APIResponse
// @Router /receipts/{id}/totals [get]
func (h *ReceiptHandler) GetTotals(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	totals, err := h.receiptService.GetTotals(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Totals calculated successfully", gin.H{
		"totals": totals,
	})
}

// Export handles the artifact download
// @Summary Export Receipt
// @Description Download the receipt as an HTML or plain text artifact
// @Tags receipts
// @Security BearerAuth
// @Produce html
// @Param id path string true "Receipt ID"
// @Param format query string false "Export format (html or text)"
// @Success 200 {file} binary
// @Router /receipts/{id}/export [get]
func (h *ReceiptHandler) Export(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	format, err := render.ParseFormat(c.Query("format"))
	if err != nil {
		response.BadRequest(c, "Unsupported export format")
		return
	}

	artifact, err := h.exportService.Export(c.Request.Context(), *userID, id, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	c.Data(200, artifact.ContentType, artifact.Data)
}

// Print handles sending a receipt to the thermal printer
// @Summary Print Receipt
// @Description Send a stored receipt to the configured thermal printer
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} response.APIResponse
// @Router /receipts/{id}/print [post]
func (h *ReceiptHandler) Print(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.exportService.Print(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", gin.H{
		"receipt": receipt,
	})
}

// PrinterStatus handles the printer status read
// @Summary Printer Status
// @Description Get thermal printer connection status
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /printer/status [get]
func (h *ReceiptHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", gin.H{
		"status": h.exportService.GetPrinterStatus(),
	})
}
