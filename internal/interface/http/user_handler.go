package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/edo-marketplace-admin/internal/application"
	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	"github.com/oksasatya/edo-marketplace-admin/pkg/response"
)

type UserHandler struct {
	Svc     *app.UserService
	Profile *app.ProfileService
	Logger  *logrus.Logger
}

func NewUserHandler(svc *app.UserService, profile *app.ProfileService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Profile: profile, Logger: logger}
}

type setUserStatusRequest struct {
	Status entity.UserStatus `json:"status" binding:"required,oneof=active pending banned"`
}

type inviteAdminRequest struct {
	Email string          `json:"email" binding:"required,email"`
	Role  entity.UserRole `json:"role" binding:"omitempty,oneof=admin super_admin moderator"`
}

func (h *UserHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	res := h.Svc.List(c.Query("search"), page, size)
	response.Success(c, http.StatusOK, res.Items, "users", pageMeta(res))
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user", nil)
}

func (h *UserHandler) Ban(c *gin.Context) {
	u, err := h.Svc.Ban(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user banned", nil)
}

func (h *UserHandler) Activate(c *gin.Context) {
	u, err := h.Svc.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user activated", nil)
}

func (h *UserHandler) SetStatus(c *gin.Context) {
	var req setUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.Svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user updated", nil)
}

func (h *UserHandler) InviteAdmin(c *gin.Context) {
	var req inviteAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	invitedBy := ""
	if h.Profile != nil {
		invitedBy = h.Profile.Get().Name
	}
	if err := h.Svc.InviteAdmin(c.Request.Context(), req.Email, req.Role, invitedBy); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusAccepted, map[string]any{"email": req.Email, "enqueued": true}, "invitation queued", nil)
}

func (h *UserHandler) Export(c *gin.Context) {
	exp, err := h.Svc.Export(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	sendExport(c, exp)
}

func (h *UserHandler) Reset(c *gin.Context) {
	res := h.Svc.Load(c.Request.Context())
	response.Success(c, http.StatusOK, res, "users reloaded", nil)
}
