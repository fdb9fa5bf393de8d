package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	"github.com/oksasatya/edo-marketplace-admin/pkg/listing"
)

// ActivityLog keeps the most recent activities when no search index is configured.
type ActivityLog struct {
	mu    sync.RWMutex
	limit int
	items []entity.Activity
}

func NewActivityLog(limit int) *ActivityLog {
	if limit <= 0 {
		limit = 500
	}
	return &ActivityLog{limit: limit}
}

func (l *ActivityLog) Record(_ context.Context, a entity.Activity) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = append(l.items, a)
	if over := len(l.items) - l.limit; over > 0 {
		l.items = append([]entity.Activity(nil), l.items[over:]...)
	}
	return nil
}

// Search filters by action, entity, entity id and detail, newest first.
func (l *ActivityLog) Search(_ context.Context, q string, size int) ([]entity.Activity, error) {
	if size <= 0 || size > 100 {
		size = 20
	}
	l.mu.RLock()
	newest := make([]entity.Activity, len(l.items))
	for i, a := range l.items {
		newest[len(l.items)-1-i] = a
	}
	l.mu.RUnlock()

	hits := listing.Filter(newest, strings.TrimSpace(q),
		func(a entity.Activity) string { return a.Action },
		func(a entity.Activity) string { return a.Entity },
		func(a entity.Activity) string { return a.EntityID },
		func(a entity.Activity) string { return a.Detail },
	)
	if len(hits) > size {
		hits = hits[:size]
	}
	return hits, nil
}
