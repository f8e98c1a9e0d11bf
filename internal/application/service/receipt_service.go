package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ksdarko/genslip-api/internal/domain/entity"
	"github.com/ksdarko/genslip-api/internal/domain/enum"
	"github.com/ksdarko/genslip-api/internal/domain/repository"
	"github.com/ksdarko/genslip-api/pkg/apperror"
	"github.com/ksdarko/genslip-api/pkg/pagination"
)

// ReceiptService handles receipt-related operations. Every operation loads
// the stored receipt, applies a value-level edit and persists the result, so
// the stored state is always a receipt that existed in full at some point.
type ReceiptService struct {
	receiptRepo  repository.ReceiptRepository
	settingsRepo repository.SettingsRepository
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	receiptRepo repository.ReceiptRepository,
	settingsRepo repository.SettingsRepository,
) *ReceiptService {
	return &ReceiptService{
		receiptRepo:  receiptRepo,
		settingsRepo: settingsRepo,
	}
}

// ReceiptItemInput represents one line item in a save payload
type ReceiptItemInput struct {
	ID        *uuid.UUID
	Name      string
	Quantity  float64
	UnitPrice float64
}

// SaveReceiptInput represents the full editor state for an upsert. Nil
// pointer fields keep the seeded default on create.
type SaveReceiptInput struct {
	ID              *uuid.UUID
	BrandName       *string
	Address         *string
	Phone           *string
	Logo            *string
	TaxRatePercent  *float64
	LevyRatePercent *float64
	DiscountAmount  *float64
	CurrencySymbol  *string
	TotalOverride   *string
	UseManualTotal  *bool
	TemplateID      *string
	Items           []ReceiptItemInput
	HasItems        bool
}

// CreateReceipt creates a new receipt seeded with the editor defaults, then
// overlays the user's saved settings and any payload fields. A nil input
// yields exactly the default slip with its single sample item.
func (s *ReceiptService) CreateReceipt(ctx context.Context, userID uuid.UUID, input *SaveReceiptInput) (*entity.Receipt, error) {
	receipt := entity.NewDefaultReceipt(userID)

	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		receipt.CurrencySymbol = settings.DefaultCurrency
		receipt.TaxRatePercent = settings.DefaultTaxRate
		receipt.LevyRatePercent = settings.DefaultLevyRate
		if settings.DefaultTemplateID != "" {
			templateID := settings.DefaultTemplateID
			receipt.TemplateID = &templateID
		}
	}

	if input != nil {
		if input.ID != nil && *input.ID != uuid.Nil {
			receipt.ID = *input.ID
		}
		applyPayload(&receipt, input)
	}

	if err := s.save(ctx, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// SaveReceipt upserts the full editor state under the given receipt id.
// Saving an id that was never stored creates it; saving an existing id
// overwrites it in place.
func (s *ReceiptService) SaveReceipt(ctx context.Context, userID, id uuid.UUID, input *SaveReceiptInput) (*entity.Receipt, error) {
	existing, err := s.receiptRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	var receipt entity.Receipt
	if existing != nil {
		receipt = existing.Clone()
	} else {
		receipt = entity.NewDefaultReceipt(userID)
		receipt.ID = id
	}

	applyPayload(&receipt, input)

	if err := s.save(ctx, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func applyPayload(receipt *entity.Receipt, input *SaveReceiptInput) {
	if input == nil {
		return
	}
	if input.BrandName != nil {
		receipt.BrandName = *input.BrandName
	}
	if input.Address != nil {
		receipt.Address = *input.Address
	}
	if input.Phone != nil {
		receipt.Phone = *input.Phone
	}
	if input.Logo != nil {
		if *input.Logo == "" {
			receipt.Logo = nil
		} else {
			logo := *input.Logo
			receipt.Logo = &logo
		}
	}
	if input.TaxRatePercent != nil {
		receipt.TaxRatePercent = *input.TaxRatePercent
	}
	if input.LevyRatePercent != nil {
		receipt.LevyRatePercent = *input.LevyRatePercent
	}
	if input.DiscountAmount != nil {
		receipt.DiscountAmount = *input.DiscountAmount
	}
	if input.CurrencySymbol != nil {
		symbol := enum.CurrencySymbol(*input.CurrencySymbol)
		if !symbol.Valid() {
			symbol = enum.CurrencyCedi
		}
		receipt.CurrencySymbol = symbol
	}
	if input.TotalOverride != nil {
		receipt.TotalOverride = *input.TotalOverride
	}
	if input.UseManualTotal != nil {
		receipt.UseManualTotal = *input.UseManualTotal
	}
	if input.TemplateID != nil {
		if *input.TemplateID == "" {
			receipt.TemplateID = nil
		} else {
			templateID := *input.TemplateID
			receipt.TemplateID = &templateID
		}
	}
	if input.HasItems {
		items := make([]entity.LineItem, 0, len(input.Items))
		for i, item := range input.Items {
			id := uuid.New()
			if item.ID != nil && *item.ID != uuid.Nil {
				id = *item.ID
			}
			items = append(items, entity.LineItem{
				ID:        id,
				ReceiptID: receipt.ID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Position:  i,
			})
		}
		receipt.Items = items
	}
}

func (s *ReceiptService) save(ctx context.Context, receipt *entity.Receipt) error {
	err := s.receiptRepo.Save(ctx, receipt)
	if errors.Is(err, repository.ErrNotOwned) {
		return apperror.NewNotFoundError("Receipt")
	}
	return err
}

// GetReceipt retrieves a receipt by ID
func (s *ReceiptService) GetReceipt(ctx context.Context, userID, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// ListReceipts returns the user's saved receipts, most recently saved first
func (s *ReceiptService) ListReceipts(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Receipt], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}

	receipts, total, err := s.receiptRepo.List(ctx, userID, &repository.ReceiptFilterParams{
		Pagination: params,
		Search:     search,
	})
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(receipts, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// DeleteReceipt deletes a receipt and its line items
func (s *ReceiptService) DeleteReceipt(ctx context.Context, userID, id uuid.UUID) error {
	receipt, err := s.receiptRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return apperror.NewNotFoundError("Receipt")
	}
	return s.receiptRepo.Delete(ctx, userID, id)
}

// SetField replaces one top-level field of a stored receipt and persists
// the result. Unknown field names map to a 400.
func (s *ReceiptService) SetField(ctx context.Context, userID, id uuid.UUID, field string, value interface{}) (*entity.Receipt, error) {
	receipt, err := s.GetReceipt(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated, err := receipt.SetField(field, value)
	if errors.Is(err, entity.ErrUnknownField) {
		return nil, apperror.NewBadRequestError("Unknown receipt field: " + field)
	}
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// AddItem appends a blank line item to a stored receipt
func (s *ReceiptService) AddItem(ctx context.Context, userID, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.GetReceipt(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated := receipt.AddItem()
	if err := s.save(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// RemoveItem removes one line item from a stored receipt. Removing an id
// that is not on the receipt leaves it unchanged.
func (s *ReceiptService) RemoveItem(ctx context.Context, userID, id, itemID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.GetReceipt(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated := receipt.RemoveItem(itemID)
	if err := s.save(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateItem replaces one field of one line item on a stored receipt
func (s *ReceiptService) UpdateItem(ctx context.Context, userID, id, itemID uuid.UUID, field string, value interface{}) (*entity.Receipt, error) {
	receipt, err := s.GetReceipt(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated, err := receipt.UpdateItem(itemID, field, value)
	if errors.Is(err, entity.ErrUnknownField) {
		return nil, apperror.NewBadRequestError("Unknown item field: " + field)
	}
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetTotals derives the monetary totals for a stored receipt
func (s *ReceiptService) GetTotals(ctx context.Context, userID, id uuid.UUID) (*entity.ReceiptTotals, error) {
	receipt, err := s.GetReceipt(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	totals := receipt.Totals()
	return &totals, nil
}
