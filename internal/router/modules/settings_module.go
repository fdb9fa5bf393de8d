package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/edo-marketplace-admin/internal/interface/http"
)

type SettingsModule struct {
	Handler *handlers.SettingsHandler
}

func NewSettingsModule(h *handlers.SettingsHandler) *SettingsModule {
	return &SettingsModule{Handler: h}
}

func (m *SettingsModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/settings")
	g.GET("", m.Handler.Get)
	g.PUT("/theme", m.Handler.SaveTheme)
	g.PUT("/platform", m.Handler.SavePlatform)
	g.PUT("/payments/:provider", m.Handler.SavePayment)

	rg.GET("/profile", m.Handler.GetProfile)
	rg.PUT("/profile", m.Handler.UpdateProfile)
}
