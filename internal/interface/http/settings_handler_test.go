package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
)

func TestSettingsHandlerGetMasksKeys(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	st := decodeData[entity.Settings](t, w)
	require.Len(t, st.Payments, 3)
	assert.Equal(t, "", st.Payments[0].APIKey)
	assert.Equal(t, "pk_***", st.Payments[1].APIKey)
}

func TestSettingsHandlerSave(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPut, "/api/settings/theme", map[string]any{"primaryColor": "#8b0000", "accentColor": "#d4a017", "darkMode": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Theme settings saved!", decode(t, w).Message)

	w = s.do(t, http.MethodPut, "/api/settings/platform", map[string]any{"platformFee": 5, "minWithdrawal": 500, "maxProductPrice": 50000})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Platform settings saved!", decode(t, w).Message)

	w = s.do(t, http.MethodGet, "/api/transactions/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1400.0, decodeData[entity.TransactionSummary](t, w).TotalFees)

	w = s.do(t, http.MethodPatch, "/api/products/prod_001", map[string]any{"price": 60000})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/api/settings/platform", map[string]any{"platformFee": 101, "maxProductPrice": 50000})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsHandlerSavePayment(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPut, "/api/settings/payments/stripe", map[string]any{"enabled": true, "apiKey": "sk_test_123"})
	require.Equal(t, http.StatusOK, w.Code)
	p := decodeData[entity.PaymentIntegration](t, w)
	assert.True(t, p.Enabled)
	assert.Equal(t, "sk_***", p.APIKey)

	w = s.do(t, http.MethodPut, "/api/settings/payments/paystack", map[string]any{"enabled": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pk_***", decodeData[entity.PaymentIntegration](t, w).APIKey)

	w = s.do(t, http.MethodPut, "/api/settings/payments/paypal", map[string]any{"enabled": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileHandler(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPut, "/api/profile", map[string]string{"name": "Osaro Igbinedion", "email": "osaro@marketplace.edo"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	p := decodeData[entity.AdminProfile](t, w)
	assert.Equal(t, "Osaro Igbinedion", p.Name)
	assert.Equal(t, "Administrator", p.Role)

	w = s.do(t, http.MethodPut, "/api/profile", map[string]string{"name": "", "email": "bad"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/api/profile", map[string]string{"name": "   ", "email": "osaro@marketplace.edo"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReferenceHandler(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/reference", nil)
	require.Equal(t, http.StatusOK, w.Code)
	ref := decodeData[entity.Reference](t, w)
	assert.Len(t, ref.Categories, 7)
	assert.Equal(t, "Benin Bronze Artistry", ref.CulturalMotifs["benin_bronze"])
}
