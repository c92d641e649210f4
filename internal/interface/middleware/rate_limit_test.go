package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitNilClientPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", RateLimit(nil, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestKeyFuncs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/api/expenses/", nil)
		return c
	}

	c := newCtx()
	c.Set("real_ip", "203.0.113.9")
	assert.Equal(t, "rl:ip:203.0.113.9", KeyByIP()(c))
	assert.Equal(t, "rl:path:/api/expenses/:ip:203.0.113.9", KeyByIPAndPath()(c))

	uid := uuid.New()
	c.Set(ctxUserIDKey, uid)
	assert.Equal(t, "rl:user:"+uid.String(), KeyByUserID()(c))

	anon := newCtx()
	anon.Set("real_ip", "203.0.113.9")
	assert.Equal(t, "rl:user:anon:ip:203.0.113.9", KeyByUserID()(anon))
}

func TestAllowPrivateIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		ip   string
		want bool
	}{
		{"127.0.0.1", true},
		{"10.0.0.5", true},
		{"192.168.1.20", true},
		{"203.0.113.9", false},
		{"not-an-ip", false},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Set("real_ip", tt.ip)
		assert.Equal(t, tt.want, AllowPrivateIP()(c), tt.ip)
	}
}
