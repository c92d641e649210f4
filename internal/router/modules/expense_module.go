package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sali72/expense-tracker/internal/container"
	handlers "github.com/sali72/expense-tracker/internal/interface/http"
	"github.com/sali72/expense-tracker/internal/interface/middleware"
)

// ExpenseModule wires the owner-scoped expense CRUD routes. All of them are
// protected; a per-user limiter keeps one noisy client from starving the rest.
type ExpenseModule struct {
	Handler *handlers.ExpenseHandler
}

func NewExpenseModule(h *handlers.ExpenseHandler) *ExpenseModule {
	return &ExpenseModule{Handler: h}
}

func (m *ExpenseModule) Register(rg *gin.RouterGroup) {
	perUser := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil)

	rg.GET("/expenses/", perUser, m.Handler.List)
	rg.POST("/expenses/", perUser, m.Handler.Create)
	rg.GET("/expenses/:id/", perUser, m.Handler.Get)
	rg.PATCH("/expenses/:id/", perUser, m.Handler.Update)
	rg.DELETE("/expenses/:id/", perUser, m.Handler.Delete)
}
