package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/edo-marketplace-admin/internal/interface/http"
)

type CategoryModule struct {
	Handler *handlers.CategoryHandler
}

func NewCategoryModule(h *handlers.CategoryHandler) *CategoryModule {
	return &CategoryModule{Handler: h}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/categories")
	g.GET("", m.Handler.List)
	g.POST("", m.Handler.Add)
	g.POST("/reset", m.Handler.Reset)
	g.DELETE("/:id", m.Handler.Delete)
}
