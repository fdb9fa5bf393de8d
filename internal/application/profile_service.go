package application

import (
	"context"
	"strings"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	repo "github.com/oksasatya/edo-marketplace-admin/internal/domain/repository"
)

type ProfileService struct {
	Repo repo.ProfileRepository
	Deps
}

func NewProfileService(r repo.ProfileRepository, deps Deps) *ProfileService {
	return &ProfileService{Repo: r, Deps: deps}
}

func (s *ProfileService) Get() entity.AdminProfile {
	return s.Repo.Get()
}

type UpdateProfileInput struct {
	Name  string
	Email string
}

// Update changes name and email; the role is fixed.
func (s *ProfileService) Update(ctx context.Context, in UpdateProfileInput) (entity.AdminProfile, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entity.AdminProfile{}, ErrNameRequired
	}
	p := s.Repo.Get()
	p.Name = name
	p.Email = strings.TrimSpace(in.Email)
	s.Repo.Save(p)
	record(ctx, s.Deps, "update", "profile", p.Email, "")
	return p, nil
}
