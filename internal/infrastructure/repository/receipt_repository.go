package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ksdarko/genslip-api/internal/domain/entity"
	domainRepo "github.com/ksdarko/genslip-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

// Save upserts the receipt row keyed by its client-generated id and replaces
// the line item rows wholesale. Item positions are renumbered from the slice
// order so the stored order always matches what the editor displayed.
func (r *receiptRepository) Save(ctx context.Context, receipt *entity.Receipt) error {
	receipt.SavedAt = time.Now()
	for i := range receipt.Items {
		if receipt.Items[i].ID == uuid.Nil {
			receipt.Items[i].ID = uuid.New()
		}
		receipt.Items[i].ReceiptID = receipt.ID
		receipt.Items[i].Position = i
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.Receipt
		err := tx.Unscoped().Select("id", "user_id").First(&existing, "id = ?", receipt.ID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil && existing.UserID != receipt.UserID {
			return domainRepo.ErrNotOwned
		}

		if err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).
			Create(receipt).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().
			Where("receipt_id = ?", receipt.ID).
			Delete(&entity.LineItem{}).Error; err != nil {
			return err
		}

		if len(receipt.Items) > 0 {
			if err := tx.Create(&receipt.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *receiptRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&receipt, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	var receipts []entity.Receipt
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entity.Receipt{}).
		Where("user_id = ?", userID)

	if params.Search != "" {
		query = query.Where("brand_name ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("saved_at DESC").
		Find(&receipts).Error

	return receipts, total, err
}

func (r *receiptRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Receipt{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return tx.Where("receipt_id = ?", id).Delete(&entity.LineItem{}).Error
	})
}

func (r *receiptRepository) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entity.Receipt{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

func (r *receiptRepository) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entity.Receipt{}).
		Where("user_id = ? AND saved_at >= ?", userID, since).
		Count(&total).Error
	return total, err
}

func (r *receiptRepository) LastSavedAt(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		First(&receipt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &receipt.SavedAt, nil
}
