package application

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/oksasatya/edo-marketplace-admin/config"
	"github.com/oksasatya/edo-marketplace-admin/internal/infrastructure/memory"
	"github.com/oksasatya/edo-marketplace-admin/internal/mockdata"
	"github.com/oksasatya/edo-marketplace-admin/pkg/helpers"
	"github.com/oksasatya/edo-marketplace-admin/pkg/mailer"
)

type fakePublisher struct {
	mu   sync.Mutex
	jobs []mailer.EmailJob
	err  error
}

func (p *fakePublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, body.(mailer.EmailJob))
	return nil
}

type fakeArchiver struct {
	names []string
	body  []byte
	err   error
}

func (a *fakeArchiver) Archive(_ context.Context, filename, _ string, r io.Reader) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.names = append(a.names, filename)
	a.body, _ = io.ReadAll(r)
	return "https://storage.googleapis.com/bucket/exports/" + filename, nil
}

var errBoom = errors.New("boom")

func testConfig() *config.Config {
	return &config.Config{
		AppName:             "edo-marketplace-admin",
		CompanyName:         "Edo Marketplace",
		AdminInviteURL:      "http://localhost:3000/invite",
		NotifyAudienceEmail: "subscribers@example.com",
	}
}

func testDeps() (Deps, *memory.ActivityLog) {
	log := memory.NewActivityLog(100)
	return Deps{Activity: log, Logger: helpers.DiscardLogger()}, log
}

func newSettings() *SettingsService {
	return NewSettingsService(memory.NewSettingsRepository(mockdata.Settings()), Deps{Logger: helpers.DiscardLogger()})
}
