package application

import (
	"context"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
)

type ActivityService struct {
	Deps
}

func NewActivityService(deps Deps) *ActivityService {
	return &ActivityService{Deps: deps}
}

// Search returns matching activities, newest first.
func (s *ActivityService) Search(ctx context.Context, q string, size int) ([]entity.Activity, error) {
	if s.Activity == nil {
		return []entity.Activity{}, nil
	}
	return s.Activity.Search(ctx, q, size)
}
