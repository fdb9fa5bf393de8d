package application

import (
	"context"
	"fmt"

	"github.com/oksasatya/edo-marketplace-admin/config"
	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	repo "github.com/oksasatya/edo-marketplace-admin/internal/domain/repository"
	"github.com/oksasatya/edo-marketplace-admin/internal/mockdata"
	"github.com/oksasatya/edo-marketplace-admin/pkg/csvexport"
	"github.com/oksasatya/edo-marketplace-admin/pkg/listing"
	"github.com/oksasatya/edo-marketplace-admin/pkg/mailer"
	mailtpl "github.com/oksasatya/edo-marketplace-admin/pkg/mailer/templates"
)

var userColumns = []csvexport.Column[entity.User]{
	{Header: "ID", Value: func(u entity.User) string { return u.ID }},
	{Header: "Name", Value: func(u entity.User) string { return u.Name }},
	{Header: "Email", Value: func(u entity.User) string { return u.Email }},
	{Header: "Role", Value: func(u entity.User) string { return string(u.Role) }},
	{Header: "Registration Date", Value: func(u entity.User) string { return u.RegistrationDate }},
	{Header: "Status", Value: func(u entity.User) string { return string(u.Status) }},
}

type UserService struct {
	Repo repo.UserRepository
	Cfg  *config.Config
	Deps
}

func NewUserService(r repo.UserRepository, cfg *config.Config, deps Deps) *UserService {
	return &UserService{Repo: r, Cfg: cfg, Deps: deps}
}

// Load reloads the users view from the REST API, falling back to mock users.
func (s *UserService) Load(ctx context.Context) LoadResult {
	return loadView[entity.User](ctx, s.Deps, "users", "/users", mockdata.Users(), s.Repo)
}

// List searches name and email.
func (s *UserService) List(query string, page, size int) listing.Page[entity.User] {
	hits := listing.Filter(s.Repo.All(), query,
		func(u entity.User) string { return u.Name },
		func(u entity.User) string { return u.Email },
	)
	return listing.Paginate(hits, page, size)
}

func (s *UserService) Get(id string) (entity.User, error) {
	u, err := s.Repo.GetByID(id)
	return u, notFound(err, ErrUserNotFound)
}

func (s *UserService) Ban(ctx context.Context, id string) (entity.User, error) {
	return s.SetStatus(ctx, id, entity.UserBanned)
}

func (s *UserService) Activate(ctx context.Context, id string) (entity.User, error) {
	return s.SetStatus(ctx, id, entity.UserActive)
}

// SetStatus moves a user to any of the known statuses.
func (s *UserService) SetStatus(ctx context.Context, id string, status entity.UserStatus) (entity.User, error) {
	switch status {
	case entity.UserActive, entity.UserPending, entity.UserBanned:
	default:
		return entity.User{}, ErrInvalidStatus
	}
	u, err := s.Repo.Update(id, func(u *entity.User) error {
		u.Status = status
		return nil
	})
	if err != nil {
		return entity.User{}, notFound(err, ErrUserNotFound)
	}
	record(ctx, s.Deps, "status:"+string(status), "user", id, u.Name)
	return u, nil
}

// InviteAdmin queues an admin_invitation email for the address.
func (s *UserService) InviteAdmin(ctx context.Context, email string, role entity.UserRole, invitedBy string) error {
	if role == "" {
		role = entity.RoleAdmin
	}
	if !role.IsAdmin() {
		return ErrInvalidRole
	}
	if s.Publisher == nil {
		return ErrNotificationsOff
	}
	job := mailer.EmailJob{
		To:       email,
		Template: mailtpl.AdminInvitation,
		Data:     mailtpl.NewAdminInvitationData(s.Cfg, email, string(role), mailtpl.WithInvitedBy(invitedBy)),
	}
	if err := s.Publisher.PublishJSON(ctx, job); err != nil {
		s.log().WithError(err).WithField("to", email).Error("publish admin invitation failed")
		return fmt.Errorf("queue invitation: %w", err)
	}
	record(ctx, s.Deps, "invite", "admin", email, string(role))
	return nil
}

// Export renders every user, not only the filtered view.
func (s *UserService) Export(ctx context.Context) (Export, error) {
	return export(ctx, s.Deps, csvexport.UsersFile, userColumns, s.Repo.All())
}
