package application

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	repo "github.com/oksasatya/edo-marketplace-admin/internal/domain/repository"
	"github.com/oksasatya/edo-marketplace-admin/internal/mockdata"
)

type CategoryService struct {
	Repo repo.CategoryRepository
	Deps
}

func NewCategoryService(r repo.CategoryRepository, deps Deps) *CategoryService {
	return &CategoryService{Repo: r, Deps: deps}
}

func (s *CategoryService) Load(ctx context.Context) LoadResult {
	return loadView[entity.Category](ctx, s.Deps, "categories", "/categories", mockdata.Categories(), s.Repo)
}

func (s *CategoryService) List() []entity.Category {
	return s.Repo.All()
}

type AddCategoryInput struct {
	Name        string
	Icon        string
	Description string
	EdoMotif    string
}

// Add creates an empty category. Names are unique, compared case-insensitively.
func (s *CategoryService) Add(ctx context.Context, in AddCategoryInput) (entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entity.Category{}, ErrNameRequired
	}
	icon := strings.TrimSpace(in.Icon)
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}
	c := entity.Category{
		ID:          "cat_" + uuid.NewString(),
		Name:        name,
		Icon:        icon,
		Description: in.Description,
		ItemCount:   0,
		EdoMotif:    in.EdoMotif,
	}
	err := s.Repo.CreateIf(c, func(existing []entity.Category) error {
		for _, e := range existing {
			if strings.EqualFold(e.Name, name) {
				return ErrCategoryNameTaken
			}
		}
		return nil
	})
	if err != nil {
		return entity.Category{}, err
	}
	record(ctx, s.Deps, "create", "category", c.ID, c.Name)
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return notFound(err, ErrCategoryNotFound)
	}
	record(ctx, s.Deps, "delete", "category", id, "")
	return nil
}
