package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/edo-marketplace-admin/internal/application"
	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	"github.com/oksasatya/edo-marketplace-admin/pkg/response"
)

type TransactionHandler struct {
	Svc    *app.TransactionService
	Logger *logrus.Logger
}

func NewTransactionHandler(svc *app.TransactionService, logger *logrus.Logger) *TransactionHandler {
	return &TransactionHandler{Svc: svc, Logger: logger}
}

type resolveDisputeRequest struct {
	Note string `json:"note" binding:"max=1000"`
}

func transactionFilter(c *gin.Context) app.TransactionFilter {
	return app.TransactionFilter{
		Query:  c.Query("search"),
		Status: entity.TransactionStatus(c.Query("status")),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}
}

func (h *TransactionHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	res, err := h.Svc.List(transactionFilter(c), page, size)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res.Items, "transactions", pageMeta(res))
}

func (h *TransactionHandler) Get(c *gin.Context) {
	t, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, t, "transaction", nil)
}

func (h *TransactionHandler) Resolve(c *gin.Context) {
	// the note is optional, so an empty body is fine
	var req resolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return
	}
	t, err := h.Svc.Resolve(c.Request.Context(), c.Param("id"), req.Note)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, t, "dispute resolved", nil)
}

func (h *TransactionHandler) Summary(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.Summary(), "transaction summary", nil)
}

func (h *TransactionHandler) Export(c *gin.Context) {
	exp, err := h.Svc.Export(c.Request.Context(), transactionFilter(c))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	sendExport(c, exp)
}

func (h *TransactionHandler) Reset(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.Load(c.Request.Context()), "transactions reloaded", nil)
}
