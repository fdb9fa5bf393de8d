package application

import (
	"context"
	"math"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	repo "github.com/oksasatya/edo-marketplace-admin/internal/domain/repository"
)

// MaxListingPrice is the absolute price ceiling for any product.
const MaxListingPrice = 10000000

type SettingsService struct {
	Repo repo.SettingsRepository
	Deps
}

func NewSettingsService(r repo.SettingsRepository, deps Deps) *SettingsService {
	return &SettingsService{Repo: r, Deps: deps}
}

// MaskKey keeps the first three characters of a key.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}
	r := []rune(key)
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r) + "***"
}

// Get returns the settings with payment keys masked.
func (s *SettingsService) Get() entity.Settings {
	st := s.Repo.Get()
	for i := range st.Payments {
		st.Payments[i].APIKey = MaskKey(st.Payments[i].APIKey)
	}
	return st
}

func (s *SettingsService) Platform() entity.PlatformSettings {
	return s.Repo.Get().Platform
}

// MaxProductPrice is the lower of the platform setting and MaxListingPrice.
func (s *SettingsService) MaxProductPrice() float64 {
	max := s.Platform().MaxProductPrice
	if max <= 0 {
		return MaxListingPrice
	}
	return math.Min(max, MaxListingPrice)
}

func (s *SettingsService) SaveTheme(ctx context.Context, t entity.ThemeSettings) string {
	s.Repo.SaveTheme(t)
	record(ctx, s.Deps, "save", "settings", "theme", "")
	return "Theme settings saved!"
}

func (s *SettingsService) SavePlatform(ctx context.Context, p entity.PlatformSettings) (string, error) {
	if p.PlatformFee < 0 || p.PlatformFee > 100 || p.MinWithdrawal < 0 || p.MaxProductPrice <= 0 {
		return "", ErrInvalidSettings
	}
	s.Repo.SavePlatform(p)
	record(ctx, s.Deps, "save", "settings", "platform", "")
	return "Platform settings saved!", nil
}

// SavePayment updates one provider. A nil apiKey keeps the stored key.
func (s *SettingsService) SavePayment(ctx context.Context, provider entity.PaymentProvider, enabled bool, apiKey *string) (entity.PaymentIntegration, error) {
	if !provider.Valid() {
		return entity.PaymentIntegration{}, ErrUnknownProvider
	}
	p, err := s.Repo.UpdatePayment(provider, func(cur *entity.PaymentIntegration) {
		cur.Enabled = enabled
		if apiKey != nil {
			cur.APIKey = *apiKey
		}
	})
	if err != nil {
		return entity.PaymentIntegration{}, notFound(err, ErrUnknownProvider)
	}
	record(ctx, s.Deps, "save", "settings", "payments:"+string(provider), "")
	p.APIKey = MaskKey(p.APIKey)
	return p, nil
}
