package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/edo-marketplace-admin/internal/container"
	handlers "github.com/oksasatya/edo-marketplace-admin/internal/interface/http"
	"github.com/oksasatya/edo-marketplace-admin/internal/interface/middleware"
)

// FestivalModule serves festival promotions and their announcement emails.
type FestivalModule struct {
	Handler *handlers.FestivalHandler
}

func NewFestivalModule(h *handlers.FestivalHandler) *FestivalModule {
	return &FestivalModule{Handler: h}
}

func (m *FestivalModule) Register(rg *gin.RouterGroup) {
	notifyLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)

	g := rg.Group("/festivals")
	g.GET("", m.Handler.List)
	g.POST("", m.Handler.Create)
	g.POST("/reset", m.Handler.Reset)
	g.POST("/:id/toggle", m.Handler.Toggle)
	g.POST("/:id/notifications", notifyLimiter, m.Handler.ScheduleNotification)
	g.DELETE("/:id", m.Handler.Delete)
}
