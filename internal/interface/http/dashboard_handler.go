package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/edo-marketplace-admin/internal/application"
	"github.com/oksasatya/edo-marketplace-admin/pkg/response"
)

type DashboardHandler struct {
	Svc       *app.DashboardService
	Analytics *app.AnalyticsService
	Logger    *logrus.Logger
}

func NewDashboardHandler(svc *app.DashboardService, analytics *app.AnalyticsService, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Svc: svc, Analytics: analytics, Logger: logger}
}

func metricsMeta(res app.MetricsResult) map[string]any {
	meta := map[string]any{"source": res.Source}
	if res.Error != "" {
		meta["error"] = res.Error
	}
	return meta
}

// Metrics always answers 200; a failed fetch is reported in meta.error with mock data.
func (h *DashboardHandler) Metrics(c *gin.Context) {
	res := h.Svc.Metrics(c.Request.Context())
	response.Success(c, http.StatusOK, res.Metrics, "dashboard metrics", metricsMeta(res))
}

func (h *DashboardHandler) Refresh(c *gin.Context) {
	res := h.Svc.Refresh(c.Request.Context())
	response.Success(c, http.StatusOK, res.Metrics, "dashboard metrics", metricsMeta(res))
}

func (h *DashboardHandler) Report(c *gin.Context) {
	r, err := h.Analytics.Report(c.Query("start"), c.Query("end"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, r, "analytics", nil)
}

func (h *DashboardHandler) ExportAnalytics(c *gin.Context) {
	exp, err := h.Analytics.Export(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	sendExport(c, exp)
}
