package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/edo-marketplace-admin/internal/interface/http"
)

type ProductModule struct {
	Handler *handlers.ProductHandler
}

func NewProductModule(h *handlers.ProductHandler) *ProductModule {
	return &ProductModule{Handler: h}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/products")
	g.GET("", m.Handler.List)
	g.GET("/export", m.Handler.Export)
	g.POST("/reset", m.Handler.Reset)
	g.GET("/:id", m.Handler.Get)
	g.PATCH("/:id", m.Handler.Update)
	g.DELETE("/:id", m.Handler.Delete)
	g.POST("/:id/approve", m.Handler.Approve)
	g.POST("/:id/reject", m.Handler.Reject)
}
