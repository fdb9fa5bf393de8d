package application

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	repo "github.com/oksasatya/edo-marketplace-admin/internal/domain/repository"
	"github.com/oksasatya/edo-marketplace-admin/internal/mockdata"
	"github.com/oksasatya/edo-marketplace-admin/pkg/csvexport"
	"github.com/oksasatya/edo-marketplace-admin/pkg/listing"
)

// AllCategories disables the category filter.
const AllCategories = "all"

var productColumns = []csvexport.Column[entity.Product]{
	{Header: "ID", Value: func(p entity.Product) string { return p.ID }},
	{Header: "Title", Value: func(p entity.Product) string { return p.Title }},
	{Header: "Category", Value: func(p entity.Product) string { return p.Category }},
	{Header: "Seller", Value: func(p entity.Product) string { return p.Seller }},
	{Header: "Price", Value: func(p entity.Product) string { return csvexport.Number(p.Price) }},
	{Header: "Status", Value: func(p entity.Product) string { return string(p.Status) }},
	{Header: "Upload Date", Value: func(p entity.Product) string { return p.UploadDate }},
}

type ProductService struct {
	Repo     repo.ProductRepository
	Settings *SettingsService
	Deps
}

func NewProductService(r repo.ProductRepository, settings *SettingsService, deps Deps) *ProductService {
	return &ProductService{Repo: r, Settings: settings, Deps: deps}
}

func (s *ProductService) Load(ctx context.Context) LoadResult {
	return loadView[entity.Product](ctx, s.Deps, "products", "/products", mockdata.Products(), s.Repo)
}

// Filtered applies the title/seller search and the exact category filter.
func (s *ProductService) Filtered(query, category string) []entity.Product {
	items := listing.Filter(s.Repo.All(), query,
		func(p entity.Product) string { return p.Title },
		func(p entity.Product) string { return p.Seller },
	)
	if category != "" && category != AllCategories {
		items = listing.Where(items, func(p entity.Product) bool { return p.Category == category })
	}
	return items
}

func (s *ProductService) List(query, category string, page, size int) listing.Page[entity.Product] {
	return listing.Paginate(s.Filtered(query, category), page, size)
}

func (s *ProductService) Get(id string) (entity.Product, error) {
	p, err := s.Repo.GetByID(id)
	return p, notFound(err, ErrProductNotFound)
}

func (s *ProductService) Approve(ctx context.Context, id string) (entity.Product, error) {
	return s.setStatus(ctx, id, entity.ProductApproved)
}

func (s *ProductService) Reject(ctx context.Context, id string) (entity.Product, error) {
	return s.setStatus(ctx, id, entity.ProductRejected)
}

func (s *ProductService) setStatus(ctx context.Context, id string, status entity.ProductStatus) (entity.Product, error) {
	p, err := s.Repo.Update(id, func(p *entity.Product) error {
		p.Status = status
		return nil
	})
	if err != nil {
		return entity.Product{}, notFound(err, ErrProductNotFound)
	}
	record(ctx, s.Deps, string(status), "product", id, p.Title)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return notFound(err, ErrProductNotFound)
	}
	record(ctx, s.Deps, "delete", "product", id, "")
	return nil
}

// UpdateProductInput holds the editable fields; nil fields are left alone.
type UpdateProductInput struct {
	Title    *string
	Price    *float64
	Category *string
}

func (s *ProductService) maxPrice() float64 {
	if s.Settings == nil {
		return MaxListingPrice
	}
	return s.Settings.MaxProductPrice()
}

func (s *ProductService) Update(ctx context.Context, id string, in UpdateProductInput) (entity.Product, error) {
	if in.Title != nil {
		n := utf8.RuneCountInString(strings.TrimSpace(*in.Title))
		if n == 0 || n > 255 {
			return entity.Product{}, ErrInvalidProduct
		}
	}
	if in.Price != nil && *in.Price <= 0 {
		return entity.Product{}, ErrInvalidProduct
	}
	if in.Price != nil && *in.Price > s.maxPrice() {
		return entity.Product{}, fmt.Errorf("%w (%s)", ErrPriceAboveLimit, csvexport.Number(s.maxPrice()))
	}
	p, err := s.Repo.Update(id, func(p *entity.Product) error {
		if in.Title != nil {
			p.Title = strings.TrimSpace(*in.Title)
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		return nil
	})
	if err != nil {
		return entity.Product{}, notFound(err, ErrProductNotFound)
	}
	record(ctx, s.Deps, "update", "product", id, p.Title)
	return p, nil
}

// Export renders the filtered view.
func (s *ProductService) Export(ctx context.Context, query, category string) (Export, error) {
	return export(ctx, s.Deps, csvexport.ProductsFile, productColumns, s.Filtered(query, category))
}
