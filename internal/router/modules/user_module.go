package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sali72/expense-tracker/internal/container"
	handlers "github.com/sali72/expense-tracker/internal/interface/http"
	"github.com/sali72/expense-tracker/internal/interface/middleware"
)

// UserModule wires the user routes.
// Registration class: POST /api/users/ is open, DELETE on the same path and
// GET /api/users/test-auth/ require a resolved identity (enforced by the
// access policy middleware on the group).
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/users/", registerLimiter, m.Handler.Register)
	rg.DELETE("/users/", m.Handler.Delete)
	rg.GET("/users/test-auth/", m.Handler.TestAuth)
}
