package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the id set by the auth middleware", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		userID := uuid.New()
		c.Set("user_id", userID)

		got := GetUserID(c)
		require.NotNil(t, got)
		assert.Equal(t, userID, *got)
	})

	t.Run("nil when unauthenticated", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Nil(t, GetUserID(c))
	})

	t.Run("nil when the value has the wrong type", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("user_id", "not-a-uuid")
		assert.Nil(t, GetUserID(c))
	})
}

func TestGetUserEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "", GetUserEmail(c))

	c.Set("user_email", "ama@example.com")
	assert.Equal(t, "ama@example.com", GetUserEmail(c))
}

func TestParsePositiveInt(t *testing.T) {
	v, err := parsePositiveInt("3")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = parsePositiveInt("0")
	assert.Error(t, err)

	_, err = parsePositiveInt("-1")
	assert.Error(t, err)

	_, err = parsePositiveInt("abc")
	assert.Error(t, err)

	_, err = parsePositiveInt("")
	assert.Error(t, err)
}
