package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/edo-marketplace-admin/internal/application"
	"github.com/oksasatya/edo-marketplace-admin/pkg/response"
)

type ProductHandler struct {
	Svc    *app.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *app.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

type updateProductRequest struct {
	Title    *string  `json:"title" binding:"omitempty,title"`
	Price    *float64 `json:"price" binding:"omitempty,price"`
	Category *string  `json:"category" binding:"omitempty,min=1"`
}

func (h *ProductHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	res := h.Svc.List(c.Query("search"), c.Query("category"), page, size)
	response.Success(c, http.StatusOK, res.Items, "products", pageMeta(res))
}

func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "product", nil)
}

func (h *ProductHandler) Approve(c *gin.Context) {
	p, err := h.Svc.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "product approved", nil)
}

func (h *ProductHandler) Reject(c *gin.Context) {
	p, err := h.Svc.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "product rejected", nil)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"id": id, "deleted": true}, "product deleted", nil)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), c.Param("id"), app.UpdateProductInput{
		Title:    req.Title,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "product updated", nil)
}

func (h *ProductHandler) Export(c *gin.Context) {
	exp, err := h.Svc.Export(c.Request.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	sendExport(c, exp)
}

func (h *ProductHandler) Reset(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.Load(c.Request.Context()), "products reloaded", nil)
}
