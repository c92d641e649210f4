package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sali72/expense-tracker/internal/container"
	handlers "github.com/sali72/expense-tracker/internal/interface/http"
	"github.com/sali72/expense-tracker/internal/interface/middleware"
)

// AuthModule wires token issuance.
// Public: POST /api/auth/token/ with a tight per-IP limit since it is the
// login surface. Protected: POST /api/auth/refresh/.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	tokenLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/token/", tokenLimiter, m.Handler.Token)
	rg.POST("/auth/refresh/", refreshLimiter, m.Handler.Refresh)
}
