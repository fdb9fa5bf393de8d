package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/edo-marketplace-admin/internal/application"
	"github.com/oksasatya/edo-marketplace-admin/pkg/response"
)

type CategoryHandler struct {
	Svc    *app.CategoryService
	Logger *logrus.Logger
}

func NewCategoryHandler(svc *app.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Svc: svc, Logger: logger}
}

type addCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Icon        string `json:"icon" binding:"max=16"`
	Description string `json:"description" binding:"max=500"`
	EdoMotif    string `json:"edoMotif" binding:"max=100"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	items := h.Svc.List()
	response.Success(c, http.StatusOK, items, "categories", map[string]any{"total": len(items)})
}

func (h *CategoryHandler) Add(c *gin.Context) {
	var req addCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cat, err := h.Svc.Add(c.Request.Context(), app.AddCategoryInput{
		Name:        req.Name,
		Icon:        req.Icon,
		Description: req.Description,
		EdoMotif:    req.EdoMotif,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, cat, "category added", nil)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"id": id, "deleted": true}, "category deleted", nil)
}

func (h *CategoryHandler) Reset(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.Load(c.Request.Context()), "categories reloaded", nil)
}
