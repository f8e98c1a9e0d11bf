package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ksdarko/genslip-api/internal/domain/repository"
)

// DashboardService provides saved-receipt statistics
type DashboardService struct {
	receiptRepo repository.ReceiptRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(receiptRepo repository.ReceiptRepository) *DashboardService {
	return &DashboardService{receiptRepo: receiptRepo}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalReceipts int64      `json:"total_receipts"`
	ThisMonth     int64      `json:"this_month"`
	LastSavedAt   *time.Time `json:"last_saved_at,omitempty"`
}

// GetDashboardStats returns the user's receipt statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	stats := &DashboardStats{}

	total, err := s.receiptRepo.Count(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.TotalReceipts = total

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	thisMonth, err := s.receiptRepo.CountSince(ctx, userID, startOfMonth)
	if err != nil {
		return nil, err
	}
	stats.ThisMonth = thisMonth

	lastSaved, err := s.receiptRepo.LastSavedAt(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.LastSavedAt = lastSaved

	return stats, nil
}
