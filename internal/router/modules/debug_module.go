package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sali72/expense-tracker/internal/container"
	"github.com/sali72/expense-tracker/internal/interface/middleware"
)

// DebugModule exposes expvar metrics, rate-limited per IP with a bypass for
// private-network callers.
type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
