package memory

import (
	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	"github.com/oksasatya/edo-marketplace-admin/internal/domain/repository"
)

type UserRepository struct{ *Store[entity.User] }

func NewUserRepository(seed []entity.User) *UserRepository {
	return &UserRepository{NewStore(seed)}
}

type ProductRepository struct{ *Store[entity.Product] }

func NewProductRepository(seed []entity.Product) *ProductRepository {
	return &ProductRepository{NewStore(seed)}
}

type TransactionRepository struct{ *Store[entity.Transaction] }

func NewTransactionRepository(seed []entity.Transaction) *TransactionRepository {
	return &TransactionRepository{NewStore(seed)}
}

type CategoryRepository struct{ *Store[entity.Category] }

func NewCategoryRepository(seed []entity.Category) *CategoryRepository {
	return &CategoryRepository{NewStore(seed)}
}

type FestivalRepository struct{ *Store[entity.Festival] }

func NewFestivalRepository(seed []entity.Festival) *FestivalRepository {
	return &FestivalRepository{NewStore(seed)}
}

var (
	_ repository.UserRepository        = (*UserRepository)(nil)
	_ repository.ProductRepository     = (*ProductRepository)(nil)
	_ repository.TransactionRepository = (*TransactionRepository)(nil)
	_ repository.CategoryRepository    = (*CategoryRepository)(nil)
	_ repository.FestivalRepository    = (*FestivalRepository)(nil)
)
