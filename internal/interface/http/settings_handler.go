package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/edo-marketplace-admin/internal/application"
	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	"github.com/oksasatya/edo-marketplace-admin/pkg/response"
)

type SettingsHandler struct {
	Svc     *app.SettingsService
	Profile *app.ProfileService
	Logger  *logrus.Logger
}

func NewSettingsHandler(svc *app.SettingsService, profile *app.ProfileService, logger *logrus.Logger) *SettingsHandler {
	return &SettingsHandler{Svc: svc, Profile: profile, Logger: logger}
}

type themeRequest struct {
	PrimaryColor string `json:"primaryColor" binding:"required,max=64"`
	AccentColor  string `json:"accentColor" binding:"required,max=64"`
	DarkMode     bool   `json:"darkMode"`
}

type platformRequest struct {
	PlatformFee     float64 `json:"platformFee" binding:"percent"`
	MinWithdrawal   float64 `json:"minWithdrawal" binding:"gte=0"`
	MaxProductPrice float64 `json:"maxProductPrice" binding:"required,gt=0"`
	MaintenanceMode bool    `json:"maintenanceMode"`
}

type paymentRequest struct {
	Enabled bool    `json:"enabled"`
	APIKey  *string `json:"apiKey" binding:"omitempty,max=256"`
}

type profileRequest struct {
	Name  string `json:"name" binding:"required,max=120"`
	Email string `json:"email" binding:"required,email"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.Get(), "settings", nil)
}

func (h *SettingsHandler) SaveTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	t := entity.ThemeSettings{PrimaryColor: req.PrimaryColor, AccentColor: req.AccentColor, DarkMode: req.DarkMode}
	msg := h.Svc.SaveTheme(c.Request.Context(), t)
	response.Success(c, http.StatusOK, t, msg, nil)
}

func (h *SettingsHandler) SavePlatform(c *gin.Context) {
	var req platformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p := entity.PlatformSettings{
		PlatformFee:     req.PlatformFee,
		MinWithdrawal:   req.MinWithdrawal,
		MaxProductPrice: req.MaxProductPrice,
		MaintenanceMode: req.MaintenanceMode,
	}
	msg, err := h.Svc.SavePlatform(c.Request.Context(), p)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, msg, nil)
}

func (h *SettingsHandler) SavePayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.Svc.SavePayment(c.Request.Context(), entity.PaymentProvider(c.Param("provider")), req.Enabled, req.APIKey)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "Payment settings saved!", nil)
}

func (h *SettingsHandler) GetProfile(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Profile.Get(), "profile", nil)
}

func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.Profile.Update(c.Request.Context(), app.UpdateProfileInput{Name: req.Name, Email: req.Email})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile updated", nil)
}
