package constants

// Member roles as captured on the registration form.
const (
	RoleChorister       = "Chorister"
	RoleInstrumentalist = "Instrumentalist"
	RoleUsher           = "Usher"
	RoleConductor       = "Conductor"
	RoleOther           = "Other"
)

var MemberRoles = []string{
	RoleChorister,
	RoleInstrumentalist,
	RoleUsher,
	RoleConductor,
	RoleOther,
}

// Admin roles.
const (
	AdminRoleSuperAdmin = "super_admin"
	AdminRoleAdmin      = "admin"
	AdminRoleModerator  = "moderator"
)

// Member approval statuses.
const (
	MemberStatusPending  = "pending"
	MemberStatusApproved = "approved"
	MemberStatusRejected = "rejected"
)

func IsValidMemberRole(role string) bool {
	for _, r := range MemberRoles {
		if r == role {
			return true
		}
	}
	return false
}
