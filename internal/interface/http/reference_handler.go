package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/edo-marketplace-admin/internal/application"
	"github.com/oksasatya/edo-marketplace-admin/internal/mockdata"
	"github.com/oksasatya/edo-marketplace-admin/pkg/response"
)

type ReferenceHandler struct {
	Activity *app.ActivityService
	Logger   *logrus.Logger
}

func NewReferenceHandler(activity *app.ActivityService, logger *logrus.Logger) *ReferenceHandler {
	return &ReferenceHandler{Activity: activity, Logger: logger}
}

func (h *ReferenceHandler) Constants(c *gin.Context) {
	response.Success(c, http.StatusOK, mockdata.Reference(), "reference data", nil)
}

// SearchActivity searches the audit trail with ?q= and optional ?size=.
func (h *ReferenceHandler) SearchActivity(c *gin.Context) {
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	items, err := h.Activity.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("activity search failed")
		}
		response.Error[any](c, http.StatusBadGateway, "activity search failed", response.ErrorBody{Code: "search_failed"})
		return
	}
	response.Success(c, http.StatusOK, items, "activity", map[string]any{"total": len(items)})
}
