package templates

import (
	"github.com/oksasatya/edo-marketplace-admin/config"
)

// Option pattern
type Option func(*EmailData)

func WithInvitedBy(name string) Option { return func(d *EmailData) { d.InvitedBy = name } }
func WithInviteURL(url string) Option  { return func(d *EmailData) { d.InviteURL = url } }

// NewBaseEmailData fills the shared fields from config, then applies options.
func NewBaseEmailData(cfg *config.Config, typ, name, recipient string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		RecipientEmail: recipient,
		Type:           typ,
		CompanyName:    cfg.CompanyName,
		AppName:        cfg.AppName,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewAdminInvitationData(cfg *config.Config, email, role string, opts ...Option) map[string]any {
	opts = append([]Option{WithInviteURL(cfg.AdminInviteURL)}, opts...)
	d := NewBaseEmailData(cfg, AdminInvitation, email, email, opts...)
	d.Role = role
	return ToMap(d)
}

func NewFestivalAnnouncementData(cfg *config.Config, recipient, festival, start, end string, discount float64, description string, opts ...Option) map[string]any {
	d := NewBaseEmailData(cfg, FestivalAnnouncement, "", recipient, opts...)
	d.FestivalName = festival
	d.StartDate = start
	d.EndDate = end
	d.Discount = discount
	d.Description = description
	return ToMap(d)
}
