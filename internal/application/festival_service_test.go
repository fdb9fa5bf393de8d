package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/edo-marketplace-admin/internal/infrastructure/memory"
	"github.com/oksasatya/edo-marketplace-admin/internal/mockdata"
	mailtpl "github.com/oksasatya/edo-marketplace-admin/pkg/mailer/templates"
)

func newFestivalService(pub JobPublisher) *FestivalService {
	deps, _ := testDeps()
	deps.Publisher = pub
	return NewFestivalService(memory.NewFestivalRepository(mockdata.Festivals()), testConfig(), deps)
}

func TestFestivalServiceCreate(t *testing.T) {
	ctx := context.Background()
	s := newFestivalService(nil)

	f, err := s.Create(ctx, CreateFestivalInput{Name: "Abaraka Festival", StartDate: "2025-09-01", EndDate: "2025-09-30"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(f.ID, "fest_"))
	assert.Equal(t, 10.0, f.Discount)
	assert.True(t, f.IsActive)

	zero := 0.0
	inactive := false
	f, err = s.Create(ctx, CreateFestivalInput{Name: "Pre-Igue", StartDate: "2025-01-20", EndDate: "2025-01-31", Discount: &zero, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, 0.0, f.Discount)
	assert.False(t, f.IsActive)

	_, err = s.Create(ctx, CreateFestivalInput{Name: "Backwards", StartDate: "2025-03-01", EndDate: "2025-02-01"})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = s.Create(ctx, CreateFestivalInput{Name: "   ", StartDate: "2025-09-01", EndDate: "2025-09-30"})
	assert.ErrorIs(t, err, ErrNameRequired)

	assert.Len(t, s.List(), 5)
}

func TestFestivalServiceToggleDelete(t *testing.T) {
	ctx := context.Background()
	s := newFestivalService(nil)

	f, err := s.Toggle(ctx, "fest_002")
	require.NoError(t, err)
	assert.True(t, f.IsActive)
	f, err = s.Toggle(ctx, "fest_002")
	require.NoError(t, err)
	assert.False(t, f.IsActive)

	first := s.List()[0]
	assert.True(t, first.IsActive)

	require.NoError(t, s.Delete(ctx, "fest_003"))
	_, err = s.Toggle(ctx, "fest_003")
	assert.ErrorIs(t, err, ErrFestivalNotFound)
}

func TestFestivalServiceScheduleNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("queues announcement", func(t *testing.T) {
		pub := &fakePublisher{}
		s := newFestivalService(pub)

		msg, err := s.ScheduleNotification(ctx, "fest_001")
		require.NoError(t, err)
		assert.Equal(t, "Notifications scheduled for festival fest_001", msg)
		require.Len(t, pub.jobs, 1)
		job := pub.jobs[0]
		assert.Equal(t, "subscribers@example.com", job.To)
		assert.Equal(t, mailtpl.FestivalAnnouncement, job.Template)
		assert.Equal(t, "Igue Festival", job.Data["FestivalName"])
	})

	t.Run("unknown festival", func(t *testing.T) {
		_, err := newFestivalService(&fakePublisher{}).ScheduleNotification(ctx, "fest_999")
		assert.ErrorIs(t, err, ErrFestivalNotFound)
	})

	t.Run("no publisher", func(t *testing.T) {
		_, err := newFestivalService(nil).ScheduleNotification(ctx, "fest_001")
		assert.ErrorIs(t, err, ErrNotificationsOff)
	})

	t.Run("no audience", func(t *testing.T) {
		s := newFestivalService(&fakePublisher{})
		s.Cfg = testConfig()
		s.Cfg.NotifyAudienceEmail = ""
		_, err := s.ScheduleNotification(ctx, "fest_001")
		assert.ErrorIs(t, err, ErrAudienceMissing)
	})
}
