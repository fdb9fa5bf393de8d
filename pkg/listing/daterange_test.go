package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRange(t *testing.T) {
	t.Run("Inclusive", func(t *testing.T) {
		r, err := ParseDateRange("2025-01-11", "2025-01-13")
		require.NoError(t, err)
		assert.True(t, r.Contains("2025-01-11"))
		assert.True(t, r.Contains("2025-01-13"))
		assert.False(t, r.Contains("2025-01-10"))
		assert.False(t, r.Contains("2025-01-14"))
		assert.False(t, r.Contains("not-a-date"))
	})

	t.Run("OpenBounds", func(t *testing.T) {
		r, err := ParseDateRange("", "2025-01-12")
		require.NoError(t, err)
		assert.True(t, r.Contains("1999-01-01"))
		assert.False(t, r.Contains("2025-01-13"))

		all, err := ParseDateRange("", "")
		require.NoError(t, err)
		assert.True(t, all.Contains("anything"))
	})

	t.Run("Reversed", func(t *testing.T) {
		_, err := ParseDateRange("2025-01-14", "2025-01-01")
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseDateRange("14/01/2025", "")
		assert.Error(t, err)
	})

	t.Run("InRange", func(t *testing.T) {
		type rec struct{ Date string }
		recs := []rec{{"2025-01-10"}, {"2025-01-12"}, {"2025-01-14"}}
		r, err := ParseDateRange("2025-01-11", "")
		require.NoError(t, err)
		got := InRange(recs, r, func(x rec) string { return x.Date })
		assert.Equal(t, []rec{{"2025-01-12"}, {"2025-01-14"}}, got)
	})
}
