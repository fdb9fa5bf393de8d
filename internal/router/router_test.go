package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/edo-marketplace-admin/config"
	"github.com/oksasatya/edo-marketplace-admin/internal/container"
	"github.com/oksasatya/edo-marketplace-admin/pkg/helpers"
	"github.com/oksasatya/edo-marketplace-admin/pkg/validation"
)

func newEngine(t *testing.T) (*gin.Engine, Services) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()
	container.SetConfig(&config.Config{AppName: "edo-marketplace-admin", DebugMetricsEnabled: true})
	container.SetLogger(helpers.DiscardLogger())

	r := gin.New()
	reg := NewRegistry(r)
	s := InitModules(context.Background(), reg)
	reg.RegisterAll()
	return r, s
}

func TestInitModulesLoadsMockViews(t *testing.T) {
	_, s := newEngine(t)

	assert.Len(t, s.Users.Repo.All(), 5)
	assert.Len(t, s.Products.Repo.All(), 5)
	assert.Len(t, s.Transactions.Repo.All(), 5)
	assert.Len(t, s.Categories.Repo.All(), 5)
	assert.Len(t, s.Festivals.Repo.All(), 3)
}

func TestRegisteredRoutes(t *testing.T) {
	r, _ := newEngine(t)

	cases := []struct {
		method, path string
		code         int
	}{
		{http.MethodGet, "/api/users", http.StatusOK},
		{http.MethodGet, "/api/users/user_002", http.StatusOK},
		{http.MethodGet, "/api/products/export", http.StatusOK},
		{http.MethodGet, "/api/transactions/summary", http.StatusOK},
		{http.MethodGet, "/api/categories", http.StatusOK},
		{http.MethodGet, "/api/festivals", http.StatusOK},
		{http.MethodGet, "/api/dashboard/metrics", http.StatusOK},
		{http.MethodPost, "/api/dashboard/metrics/refresh", http.StatusOK},
		{http.MethodGet, "/api/analytics", http.StatusOK},
		{http.MethodGet, "/api/settings", http.StatusOK},
		{http.MethodGet, "/api/profile", http.StatusOK},
		{http.MethodGet, "/api/reference", http.StatusOK},
		{http.MethodGet, "/api/activity", http.StatusOK},
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodGet, "/api/debug/vars", http.StatusOK},
		{http.MethodPost, "/api/festivals/fest_001/notifications", http.StatusServiceUnavailable},
		{http.MethodGet, "/api/nothing", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestResetReloadsView(t *testing.T) {
	r, s := newEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/users/user_001/ban", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/users/reset", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			View   string `json:"view"`
			Source string `json:"source"`
			Count  int    `json:"count"`
			Error  string `json:"error"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "users", body.Data.View)
	assert.Equal(t, "mock", body.Data.Source)
	assert.Equal(t, 5, body.Data.Count)
	assert.Equal(t, "Failed to load users", body.Data.Error)

	u, err := s.Users.Get("user_001")
	require.NoError(t, err)
	assert.Equal(t, "active", string(u.Status))
}
