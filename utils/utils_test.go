package utils

import (
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken(12, "admin", "right", time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(tok, "right")
	require.NoError(t, err)
	assert.Equal(t, uint(12), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "12", claims.Subject)

	_, err = ParseToken(tok, "wrong")
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	tok, err := GenerateToken(1, "customer", "s", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(tok, "s")
	assert.Error(t, err)
}

func TestRandomCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code, err := RandomCode(8)
		require.NoError(t, err)
		require.Len(t, code, 8)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, r), "unexpected %q", r)
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 190)
}

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	n := NewOrderNumber(now)
	assert.Regexp(t, regexp.MustCompile(`^MD-20261014-[0-9A-F]{6}$`), n)
	assert.NotEqual(t, n, NewOrderNumber(now))
}

func TestPaginationAndParamID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?page=0&limit=500", nil)
	page, limit := Pagination(c)
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, limit, "oversized limits are capped")

	c.Request = httptest.NewRequest("GET", "/?limit=-5", nil)
	_, limit = Pagination(c)
	assert.Equal(t, 20, limit)

	c.Request = httptest.NewRequest("GET", "/?page=3&limit=50", nil)
	page, limit = Pagination(c)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, limit)

	c.Params = gin.Params{{Key: "id", Value: "17"}, {Key: "bad", Value: "0"}}
	id, ok := ParamID(c, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(17), id)
	_, ok = ParamID(c, "bad")
	assert.False(t, ok)
	_, ok = ParamID(c, "missing")
	assert.False(t, ok)
}

func TestCurrentUserFromContext(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Zero(t, CurrentUserID(c))
	assert.Empty(t, CurrentRole(c))

	c.Set(CtxUserID, uint(9))
	c.Set(CtxRole, "admin")
	assert.Equal(t, uint(9), CurrentUserID(c))
	assert.Equal(t, "admin", CurrentRole(c))
}
