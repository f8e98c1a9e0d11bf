package routes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ksdarko/genslip-api/internal/config"
)

func TestRateLimiterConfig(t *testing.T) {
	t.Run("derives the per-second rate from the window", func(t *testing.T) {
		cfg := rateLimiterConfig(&config.RateLimitConfig{Requests: 120, Duration: 60})
		assert.Equal(t, float64(2), cfg.RequestsPerSecond)
		assert.Equal(t, 120, cfg.BurstSize)
	})

	t.Run("zero duration falls back instead of dividing by zero", func(t *testing.T) {
		cfg := rateLimiterConfig(&config.RateLimitConfig{Requests: 100, Duration: 0})
		assert.False(t, math.IsInf(cfg.RequestsPerSecond, 1))
		assert.Greater(t, cfg.RequestsPerSecond, float64(0))
	})

	t.Run("non-positive values use the defaults", func(t *testing.T) {
		cfg := rateLimiterConfig(&config.RateLimitConfig{Requests: -1, Duration: -5})
		assert.Greater(t, cfg.RequestsPerSecond, float64(0))
		assert.Greater(t, cfg.BurstSize, 0)
	})
}
