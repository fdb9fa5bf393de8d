package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/edo-marketplace-admin/internal/application"
	"github.com/oksasatya/edo-marketplace-admin/pkg/response"
)

type FestivalHandler struct {
	Svc    *app.FestivalService
	Logger *logrus.Logger
}

func NewFestivalHandler(svc *app.FestivalService, logger *logrus.Logger) *FestivalHandler {
	return &FestivalHandler{Svc: svc, Logger: logger}
}

type createFestivalRequest struct {
	Name        string   `json:"name" binding:"required,max=120"`
	StartDate   string   `json:"startDate" binding:"required,isodate"`
	EndDate     string   `json:"endDate" binding:"required,isodate"`
	Discount    *float64 `json:"discount" binding:"omitempty,percent"`
	Description string   `json:"description" binding:"max=1000"`
	IsActive    *bool    `json:"isActive"`
}

func (h *FestivalHandler) List(c *gin.Context) {
	items := h.Svc.List()
	response.Success(c, http.StatusOK, items, "festivals", map[string]any{"total": len(items)})
}

func (h *FestivalHandler) Create(c *gin.Context) {
	var req createFestivalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	f, err := h.Svc.Create(c.Request.Context(), app.CreateFestivalInput{
		Name:        req.Name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Discount:    req.Discount,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, f, "festival created", nil)
}

func (h *FestivalHandler) Toggle(c *gin.Context) {
	f, err := h.Svc.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, f, "festival updated", nil)
}

func (h *FestivalHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"id": id, "deleted": true}, "festival deleted", nil)
}

func (h *FestivalHandler) ScheduleNotification(c *gin.Context) {
	id := c.Param("id")
	msg, err := h.Svc.ScheduleNotification(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusAccepted, map[string]any{"id": id, "enqueued": true}, msg, nil)
}

func (h *FestivalHandler) Reset(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.Load(c.Request.Context()), "festivals reloaded", nil)
}
