package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/edo-marketplace-admin/internal/interface/http"
)

// DashboardModule serves the overview metrics and the analytics report.
type DashboardModule struct {
	Handler *handlers.DashboardHandler
}

func NewDashboardModule(h *handlers.DashboardHandler) *DashboardModule {
	return &DashboardModule{Handler: h}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	rg.GET("/dashboard/metrics", m.Handler.Metrics)
	rg.POST("/dashboard/metrics/refresh", m.Handler.Refresh)
	rg.GET("/analytics", m.Handler.Report)
	rg.GET("/analytics/export", m.Handler.ExportAnalytics)
}
