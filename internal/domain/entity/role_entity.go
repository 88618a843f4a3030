package entity

// Role is one of a closed set of authorization labels. A user always has at
// least RoleUser; roles are additive, not hierarchical.
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleSuperUser Role = "super-user"
)

// ValidRole reports whether r belongs to the closed enumeration.
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperUser:
		return true
	}
	return false
}

// RolesToStrings converts a role slice for storage as text[].
func RolesToStrings(roles []Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

// RolesFromStrings converts a stored text[] back into roles.
func RolesFromStrings(raw []string) []Role {
	out := make([]Role, 0, len(raw))
	for _, s := range raw {
		out = append(out, Role(s))
	}
	return out
}
