package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService(t *testing.T) {
	deps, _ := testDeps()
	s := NewAnalyticsService(deps)

	r, err := s.Report("", "")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", r.DateRange.Start)
	assert.Equal(t, "2025-01-14", r.DateRange.End)
	assert.Len(t, r.SalesByCategory, 5)
	assert.Len(t, r.TopSellers, 5)

	r, err = s.Report("2024-12-01", "2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-01", r.DateRange.Start)

	_, err = s.Report("2025-02-01", "2025-01-01")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	exp, err := s.Export(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "analytics.csv", exp.Filename)
	lines := strings.Split(strings.TrimSpace(string(exp.Body)), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Category,Sales,Percentage", lines[0])
	assert.Equal(t, "Agricultural Produce,4500,28", lines[1])
}
