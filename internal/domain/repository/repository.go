package repository

import (
	"errors"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a record with the same id already exists.
var ErrDuplicate = errors.New("record already exists")

// ViewStore holds the working copy of one dashboard view.
// Reads return copies; Update applies fn to the stored record under the store's lock.
type ViewStore[T any] interface {
	All() []T
	GetByID(id string) (T, error)
	Create(v T) error
	CreateIf(v T, check func(existing []T) error) error
	Update(id string, fn func(*T) error) (T, error)
	Delete(id string) error
	Replace(items []T)
	Len() int
}

// UserRepository defines the operations on the users view.
type UserRepository interface {
	ViewStore[entity.User]
}

type ProductRepository interface {
	ViewStore[entity.Product]
}

type TransactionRepository interface {
	ViewStore[entity.Transaction]
}

type CategoryRepository interface {
	ViewStore[entity.Category]
}

type FestivalRepository interface {
	ViewStore[entity.Festival]
}

// SettingsRepository holds platform configuration edited on the settings view.
type SettingsRepository interface {
	Get() entity.Settings
	SaveTheme(t entity.ThemeSettings)
	SavePlatform(p entity.PlatformSettings)
	UpdatePayment(provider entity.PaymentProvider, fn func(*entity.PaymentIntegration)) (entity.PaymentIntegration, error)
}

type ProfileRepository interface {
	Get() entity.AdminProfile
	Save(p entity.AdminProfile)
}
