package memory

import (
	"sync"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	"github.com/oksasatya/edo-marketplace-admin/internal/domain/repository"
)

type SettingsRepository struct {
	mu       sync.RWMutex
	settings entity.Settings
}

func NewSettingsRepository(seed entity.Settings) *SettingsRepository {
	r := &SettingsRepository{settings: seed}
	r.settings.Payments = append([]entity.PaymentIntegration(nil), seed.Payments...)
	return r
}

func (r *SettingsRepository) Get() entity.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := r.settings
	s.Payments = append([]entity.PaymentIntegration(nil), r.settings.Payments...)
	return s
}

func (r *SettingsRepository) SaveTheme(t entity.ThemeSettings) {
	r.mu.Lock()
	r.settings.Theme = t
	r.mu.Unlock()
}

func (r *SettingsRepository) SavePlatform(p entity.PlatformSettings) {
	r.mu.Lock()
	r.settings.Platform = p
	r.mu.Unlock()
}

// UpdatePayment applies fn to the stored integration for provider under the write lock.
func (r *SettingsRepository) UpdatePayment(provider entity.PaymentProvider, fn func(*entity.PaymentIntegration)) (entity.PaymentIntegration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.settings.Payments {
		if r.settings.Payments[i].Provider == provider {
			p := r.settings.Payments[i]
			fn(&p)
			p.Provider = provider
			r.settings.Payments[i] = p
			return p, nil
		}
	}
	return entity.PaymentIntegration{}, repository.ErrNotFound
}

type ProfileRepository struct {
	mu      sync.RWMutex
	profile entity.AdminProfile
}

func NewProfileRepository(seed entity.AdminProfile) *ProfileRepository {
	return &ProfileRepository{profile: seed}
}

func (r *ProfileRepository) Get() entity.AdminProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile
}

func (r *ProfileRepository) Save(p entity.AdminProfile) {
	r.mu.Lock()
	r.profile = p
	r.mu.Unlock()
}

var (
	_ repository.SettingsRepository = (*SettingsRepository)(nil)
	_ repository.ProfileRepository  = (*ProfileRepository)(nil)
)
