package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/edo-marketplace-admin/internal/interface/http"
)

type TransactionModule struct {
	Handler *handlers.TransactionHandler
}

func NewTransactionModule(h *handlers.TransactionHandler) *TransactionModule {
	return &TransactionModule{Handler: h}
}

func (m *TransactionModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/transactions")
	g.GET("", m.Handler.List)
	g.GET("/summary", m.Handler.Summary)
	g.GET("/export", m.Handler.Export)
	g.POST("/reset", m.Handler.Reset)
	g.GET("/:id", m.Handler.Get)
	g.POST("/:id/resolve", m.Handler.Resolve)
}
