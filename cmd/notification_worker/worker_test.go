package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/edo-marketplace-admin/config"
	"github.com/oksasatya/edo-marketplace-admin/pkg/helpers"
	"github.com/oksasatya/edo-marketplace-admin/pkg/mailer"
	mailtpl "github.com/oksasatya/edo-marketplace-admin/pkg/mailer/templates"
)

type sent struct{ to, subject, text, html string }

type fakeSender struct {
	out []sent
	err error
}

func (f *fakeSender) Send(_ context.Context, to, subject, text, html string) error {
	if f.err != nil {
		return f.err
	}
	f.out = append(f.out, sent{to, subject, text, html})
	return nil
}

func encode(t *testing.T, job mailer.EmailJob) []byte {
	t.Helper()
	b, err := json.Marshal(job)
	require.NoError(t, err)
	return b
}

func TestProcessRendersTemplate(t *testing.T) {
	cfg := &config.Config{AppName: "edo-marketplace-admin", CompanyName: "Edo Marketplace"}
	job := mailer.EmailJob{
		To:       "subscribers@example.com",
		Template: mailtpl.FestivalAnnouncement,
		Data:     mailtpl.NewFestivalAnnouncementData(cfg, "subscribers@example.com", "Igue Festival", "2025-02-01", "2025-02-28", 15, "New Year celebration"),
	}
	mg := &fakeSender{}

	got := process(context.Background(), mg, helpers.DiscardLogger(), encode(t, job))
	require.Equal(t, ack, got)
	require.Len(t, mg.out, 1)
	assert.Equal(t, "subscribers@example.com", mg.out[0].to)
	assert.Contains(t, mg.out[0].subject, "Igue Festival")
	assert.NotEmpty(t, mg.out[0].html)
}

func TestProcessPlainMessage(t *testing.T) {
	mg := &fakeSender{}
	job := mailer.EmailJob{To: "a@example.com", Subject: "hi", Text: "hello"}

	assert.Equal(t, ack, process(context.Background(), mg, helpers.DiscardLogger(), encode(t, job)))
	assert.Equal(t, sent{"a@example.com", "hi", "hello", ""}, mg.out[0])
}

func TestProcessFailures(t *testing.T) {
	logger := helpers.DiscardLogger()

	assert.Equal(t, drop, process(context.Background(), &fakeSender{}, logger, []byte("{not json")))
	assert.Equal(t, drop, process(context.Background(), &fakeSender{}, logger, encode(t, mailer.EmailJob{Subject: "x"})))
	assert.Equal(t, drop, process(context.Background(), &fakeSender{}, logger, encode(t, mailer.EmailJob{To: "a@example.com", Template: "missing"})))

	failing := &fakeSender{err: errors.New("mailgun down")}
	assert.Equal(t, requeue, process(context.Background(), failing, logger, encode(t, mailer.EmailJob{To: "a@example.com", Text: "x"})))
}
