package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
)

func TestTransactionHandlerList(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/transactions?status=completed&from=2025-01-12", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeData[[]entity.Transaction](t, w)
	require.Len(t, items, 2)
	assert.Equal(t, "txn_001", items[0].ID)
	assert.Equal(t, "txn_002", items[1].ID)

	w = s.do(t, http.MethodGet, "/api/transactions?from=2025-01-14&to=2025-01-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/transactions?from=14-01-2025", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactionHandlerSummary(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/transactions/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sum := decodeData[entity.TransactionSummary](t, w)
	assert.Equal(t, 28000.0, sum.TotalRevenue)
	assert.Equal(t, 700.0, sum.TotalFees)
	assert.Equal(t, "₦28,000", sum.TotalRevenueFormatted)
	assert.Equal(t, "₦700.00", sum.TotalFeesFormatted)
	assert.Equal(t, 1, sum.Disputed)
}

func TestTransactionHandlerResolve(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/transactions/txn_001/resolve", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, "/api/transactions/txn_003/resolve", map[string]string{"note": "refunded buyer"})
	require.Equal(t, http.StatusOK, w.Code)
	txn := decodeData[entity.Transaction](t, w)
	assert.Equal(t, entity.TransactionCompleted, txn.Status)
	assert.Equal(t, "refunded buyer", txn.ResolutionNote)

	w = s.do(t, http.MethodPost, "/api/transactions/txn_404/resolve", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTransactionHandlerResolveChunkedEmptyBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/txn_003/resolve", strings.NewReader(""))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	txn := decodeData[entity.Transaction](t, w)
	assert.Equal(t, entity.TransactionCompleted, txn.Status)
	assert.Empty(t, txn.ResolutionNote)

	w = s.do(t, http.MethodPost, "/api/transactions/txn_003/resolve", map[string]int{"note": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactionHandlerExport(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/transactions/export?status=disputed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="transactions.csv"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "txn_003")
	assert.NotContains(t, w.Body.String(), "txn_001")
}
