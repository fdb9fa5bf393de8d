package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/edo-marketplace-admin/internal/container"
	handlers "github.com/oksasatya/edo-marketplace-admin/internal/interface/http"
	"github.com/oksasatya/edo-marketplace-admin/internal/interface/middleware"
)

// UserModule serves the users view:
// GET /users, /users/export, /users/:id
// POST /users/invite, /users/reset, /users/:id/ban, /users/:id/activate
// PATCH /users/:id/status
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// invitations send real email, keep them scarce
	inviteLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	g := rg.Group("/users")
	g.GET("", m.Handler.List)
	g.GET("/export", m.Handler.Export)
	g.POST("/invite", inviteLimiter, m.Handler.InviteAdmin)
	g.POST("/reset", m.Handler.Reset)
	g.GET("/:id", m.Handler.Get)
	g.POST("/:id/ban", m.Handler.Ban)
	g.POST("/:id/activate", m.Handler.Activate)
	g.PATCH("/:id/status", m.Handler.SetStatus)
}
