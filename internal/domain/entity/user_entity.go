package entity

// UserStatus is the moderation state of a user account.
type UserStatus string

const (
	UserActive  UserStatus = "active"
	UserPending UserStatus = "pending"
	UserBanned  UserStatus = "banned"
)

// User is a marketplace account as shown on the users view.
// RegistrationDate is YYYY-MM-DD.
type User struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Role             UserRole   `json:"role"`
	Status           UserStatus `json:"status"`
	RegistrationDate string     `json:"registrationDate"`
}

func (u User) Key() string { return u.ID }
