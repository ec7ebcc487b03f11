package utils

import (
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateObjectKey(t *testing.T) {
	now := time.UnixMilli(1717243200000)

	key, err := GenerateObjectKey("bali", ".JPG", now)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^bali-1717243200000-[0-9a-f]{8}\.jpg$`), key)

	other, err := GenerateObjectKey("bali", "jpg", now)
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"", 1, 50, 0},
		{"?page=3&limit=20", 3, 20, 40},
		{"?page=0&limit=1000", 1, 50, 0},
		{"?page=abc&limit=-5", 1, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/units"+tt.query, nil)

			params := GetPaginationParams(c)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
			assert.Equal(t, tt.wantOffset, params.Offset)
		})
	}
}
