package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksdarko/genslip-api/internal/domain/entity"
)

func TestDashboardService_GetDashboardStats(t *testing.T) {
	ctx := context.Background()
	repo := newFakeReceiptRepo()
	svc := NewDashboardService(repo)
	userID := uuid.New()

	t.Run("empty account", func(t *testing.T) {
		stats, err := svc.GetDashboardStats(ctx, userID)
		require.NoError(t, err)

		assert.Equal(t, int64(0), stats.TotalReceipts)
		assert.Equal(t, int64(0), stats.ThisMonth)
		assert.Nil(t, stats.LastSavedAt)
	})

	t.Run("counts only the user's receipts", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			r := entity.NewDefaultReceipt(userID)
			require.NoError(t, repo.Save(ctx, &r))
		}
		other := entity.NewDefaultReceipt(uuid.New())
		require.NoError(t, repo.Save(ctx, &other))

		stats, err := svc.GetDashboardStats(ctx, userID)
		require.NoError(t, err)

		assert.Equal(t, int64(3), stats.TotalReceipts)
		assert.Equal(t, int64(3), stats.ThisMonth)
		require.NotNil(t, stats.LastSavedAt)
		assert.WithinDuration(t, time.Now(), *stats.LastSavedAt, time.Minute)
	})
}
