package entity

// UserRole is the marketplace role of a user account.
type UserRole string

const (
	RoleBuyer      UserRole = "buyer"
	RoleSeller     UserRole = "seller"
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "super_admin"
	RoleModerator  UserRole = "moderator"
)

// AdminRoles are the roles an admin invitation may grant.
var AdminRoles = []UserRole{RoleAdmin, RoleSuperAdmin, RoleModerator}

func (r UserRole) IsAdmin() bool {
	for _, a := range AdminRoles {
		if r == a {
			return true
		}
	}
	return false
}
