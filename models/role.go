package models

// Roles ordered from least to most privileged.
const (
	RoleLearner    = "LEARNER"
	RoleTrainer    = "TRAINER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER-ADMIN"
)

var roleRank = map[string]int{
	RoleLearner:    1,
	RoleTrainer:    2,
	RoleAdmin:      3,
	RoleSuperAdmin: 4,
}

// IsValidRole reports whether role is one of the known roles.
func IsValidRole(role string) bool {
	_, ok := roleRank[role]
	return ok
}

// RoleAtLeast reports whether role ranks at or above threshold.
// Unknown roles never satisfy any threshold.
func RoleAtLeast(role, threshold string) bool {
	r, ok := roleRank[role]
	if !ok {
		return false
	}
	t, ok := roleRank[threshold]
	if !ok {
		return false
	}
	return r >= t
}

// IsSuperAdmin reports whether role is the SUPER-ADMIN role.
func IsSuperAdmin(role string) bool {
	return role == RoleSuperAdmin
}
