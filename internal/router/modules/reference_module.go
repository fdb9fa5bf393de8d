package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/edo-marketplace-admin/internal/interface/http"
)

type ReferenceModule struct {
	Handler *handlers.ReferenceHandler
}

func NewReferenceModule(h *handlers.ReferenceHandler) *ReferenceModule {
	return &ReferenceModule{Handler: h}
}

func (m *ReferenceModule) Register(rg *gin.RouterGroup) {
	rg.GET("/reference", m.Handler.Constants)
	rg.GET("/activity", m.Handler.SearchActivity)
}
