package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
)

func TestActivityLog(t *testing.T) {
	ctx := context.Background()
	l := NewActivityLog(3)
	for _, a := range []entity.Activity{
		{ID: "1", Action: "ban", Entity: "user", EntityID: "user_005"},
		{ID: "2", Action: "approve", Entity: "product", EntityID: "prod_002"},
		{ID: "3", Action: "reject", Entity: "product", EntityID: "prod_004"},
		{ID: "4", Action: "toggle", Entity: "festival", EntityID: "fest_001"},
	} {
		require.NoError(t, l.Record(ctx, a))
	}

	all, err := l.Search(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "4", all[0].ID)
	assert.Equal(t, "2", all[2].ID)

	products, err := l.Search(ctx, "PRODUCT", 10)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "3", products[0].ID)

	limited, err := l.Search(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
