package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/oksasatya/edo-marketplace-admin/config"
	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	repo "github.com/oksasatya/edo-marketplace-admin/internal/domain/repository"
	"github.com/oksasatya/edo-marketplace-admin/internal/mockdata"
	"github.com/oksasatya/edo-marketplace-admin/pkg/listing"
	"github.com/oksasatya/edo-marketplace-admin/pkg/mailer"
	mailtpl "github.com/oksasatya/edo-marketplace-admin/pkg/mailer/templates"
)

type FestivalService struct {
	Repo repo.FestivalRepository
	Cfg  *config.Config
	Deps
}

func NewFestivalService(r repo.FestivalRepository, cfg *config.Config, deps Deps) *FestivalService {
	return &FestivalService{Repo: r, Cfg: cfg, Deps: deps}
}

func (s *FestivalService) Load(ctx context.Context) LoadResult {
	return loadView[entity.Festival](ctx, s.Deps, "festivals", "/festivals", mockdata.Festivals(), s.Repo)
}

func (s *FestivalService) List() []entity.Festival {
	return s.Repo.All()
}

// CreateFestivalInput mirrors the create form. Nil Discount and IsActive take defaults.
type CreateFestivalInput struct {
	Name        string
	StartDate   string
	EndDate     string
	Discount    *float64
	Description string
	IsActive    *bool
}

func (s *FestivalService) Create(ctx context.Context, in CreateFestivalInput) (entity.Festival, error) {
	if strings.TrimSpace(in.Name) == "" {
		return entity.Festival{}, ErrNameRequired
	}
	if _, err := listing.ParseDateRange(in.StartDate, in.EndDate); err != nil {
		return entity.Festival{}, ErrInvalidDateRange
	}
	f := entity.Festival{
		ID:          "fest_" + uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Discount:    entity.DefaultFestivalDiscount,
		Description: in.Description,
		IsActive:    true,
	}
	if in.Discount != nil {
		f.Discount = *in.Discount
	}
	if in.IsActive != nil {
		f.IsActive = *in.IsActive
	}
	if err := s.Repo.Create(f); err != nil {
		return entity.Festival{}, err
	}
	record(ctx, s.Deps, "create", "festival", f.ID, f.Name)
	return f, nil
}

// Toggle flips IsActive.
func (s *FestivalService) Toggle(ctx context.Context, id string) (entity.Festival, error) {
	f, err := s.Repo.Update(id, func(f *entity.Festival) error {
		f.IsActive = !f.IsActive
		return nil
	})
	if err != nil {
		return entity.Festival{}, notFound(err, ErrFestivalNotFound)
	}
	record(ctx, s.Deps, "toggle", "festival", id, fmt.Sprintf("active=%t", f.IsActive))
	return f, nil
}

func (s *FestivalService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return notFound(err, ErrFestivalNotFound)
	}
	record(ctx, s.Deps, "delete", "festival", id, "")
	return nil
}

// ScheduleNotification queues a festival_announcement email to the configured audience.
func (s *FestivalService) ScheduleNotification(ctx context.Context, id string) (string, error) {
	f, err := s.Repo.GetByID(id)
	if err != nil {
		return "", notFound(err, ErrFestivalNotFound)
	}
	if s.Publisher == nil {
		return "", ErrNotificationsOff
	}
	if s.Cfg == nil || s.Cfg.NotifyAudienceEmail == "" {
		return "", ErrAudienceMissing
	}
	to := s.Cfg.NotifyAudienceEmail
	job := mailer.EmailJob{
		To:       to,
		Template: mailtpl.FestivalAnnouncement,
		Data:     mailtpl.NewFestivalAnnouncementData(s.Cfg, to, f.Name, f.StartDate, f.EndDate, f.Discount, f.Description),
	}
	if err := s.Publisher.PublishJSON(ctx, job); err != nil {
		s.log().WithError(err).WithField("festival_id", id).Error("publish festival announcement failed")
		return "", fmt.Errorf("queue announcement: %w", err)
	}
	record(ctx, s.Deps, "notify", "festival", id, f.Name)
	return "Notifications scheduled for festival " + id, nil
}
