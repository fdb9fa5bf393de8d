package modules

import (
	"expvar"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/edo-marketplace-admin/internal/container"
	"github.com/oksasatya/edo-marketplace-admin/internal/interface/middleware"
	"github.com/oksasatya/edo-marketplace-admin/pkg/response"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Public metrics endpoint (expvar), rate-limited per IP
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
	rg.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{
			"redis":     container.GetRedis() != nil,
			"search":    container.GetES() != nil,
			"publisher": container.GetRabbitPub() != nil,
			"api":       container.GetAPIClient() != nil,
		}, "ok", nil)
	})
}
