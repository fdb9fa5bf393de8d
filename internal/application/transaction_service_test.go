package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	"github.com/oksasatya/edo-marketplace-admin/internal/infrastructure/memory"
	"github.com/oksasatya/edo-marketplace-admin/internal/mockdata"
)

func newTransactionService() *TransactionService {
	deps, _ := testDeps()
	return NewTransactionService(memory.NewTransactionRepository(mockdata.Transactions()), newSettings(), deps)
}

func ids(items []entity.Transaction) []string {
	out := make([]string, 0, len(items))
	for _, t := range items {
		out = append(out, t.ID)
	}
	return out
}

func TestTransactionServiceFilter(t *testing.T) {
	s := newTransactionService()

	t.Run("search buyer seller item", func(t *testing.T) {
		items, err := s.Filtered(TransactionFilter{Query: "herbal"})
		require.NoError(t, err)
		assert.Equal(t, []string{"txn_005"}, ids(items))
	})

	t.Run("status", func(t *testing.T) {
		items, err := s.Filtered(TransactionFilter{Status: entity.TransactionCompleted})
		require.NoError(t, err)
		assert.Equal(t, []string{"txn_001", "txn_002", "txn_005"}, ids(items))
	})

	t.Run("inclusive date range", func(t *testing.T) {
		items, err := s.Filtered(TransactionFilter{From: "2025-01-11", To: "2025-01-13"})
		require.NoError(t, err)
		assert.Equal(t, []string{"txn_002", "txn_003", "txn_004"}, ids(items))
	})

	t.Run("open ended range", func(t *testing.T) {
		items, err := s.Filtered(TransactionFilter{From: "2025-01-13"})
		require.NoError(t, err)
		assert.Equal(t, []string{"txn_001", "txn_002"}, ids(items))
	})

	t.Run("reversed range", func(t *testing.T) {
		_, err := s.Filtered(TransactionFilter{From: "2025-01-14", To: "2025-01-01"})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := s.Filtered(TransactionFilter{From: "14-01-2025"})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := s.Filtered(TransactionFilter{Status: "refunded"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestTransactionServiceSummary(t *testing.T) {
	sum := newTransactionService().Summary()
	assert.Equal(t, 28000.0, sum.TotalRevenue)
	assert.Equal(t, 700.0, sum.TotalFees)
	assert.Equal(t, 2.5, sum.PlatformFeePercent)
	assert.Equal(t, "₦28,000", sum.TotalRevenueFormatted)
	assert.Equal(t, "₦700.00", sum.TotalFeesFormatted)
	assert.Equal(t, 3, sum.Completed)
	assert.Equal(t, 1, sum.Pending)
	assert.Equal(t, 1, sum.Disputed)
}

func TestTransactionServiceResolve(t *testing.T) {
	ctx := context.Background()
	s := newTransactionService()

	tx, err := s.Resolve(ctx, "txn_003", "Refund issued to buyer")
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionCompleted, tx.Status)
	assert.Equal(t, "Refund issued to buyer", tx.ResolutionNote)
	assert.Equal(t, 53000.0, s.Summary().TotalRevenue)

	_, err = s.Resolve(ctx, "txn_004", "")
	assert.ErrorIs(t, err, ErrNotDisputed)
	pending, _ := s.Get("txn_004")
	assert.Equal(t, entity.TransactionPending, pending.Status)

	_, err = s.Resolve(ctx, "txn_404", "")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestTransactionServiceExport(t *testing.T) {
	exp, err := newTransactionService().Export(context.Background(), TransactionFilter{Status: entity.TransactionDisputed})
	require.NoError(t, err)
	assert.Equal(t, "transactions.csv", exp.Filename)
	lines := strings.Split(strings.TrimSpace(string(exp.Body)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Buyer,Seller,Item,Amount,Date,Status", lines[0])
	assert.Equal(t, "txn_003,Blessing Eze,Heritage Arts,Bronze Mask Replica,25000,2025-01-12,disputed", lines[1])
	assert.Equal(t, len(strings.Split(lines[0], ",")), len(strings.Split(lines[1], ",")))
}
