package entity

// User is the aggregate root for the auth domain.
// Password holds the bcrypt digest, never the plaintext; services strip it
// from any user handed back to a caller.
type User struct {
	ID       string
	Email    string
	Password string
	FullName string
	IsActive bool
	Roles    []Role
}

// HasAnyRole reports whether the user holds at least one of the required
// roles. Membership is plain set intersection: holding admin does not
// satisfy a super-user requirement unless super-user is listed too.
func (u *User) HasAnyRole(required ...Role) bool {
	for _, need := range required {
		for _, have := range u.Roles {
			if have == need {
				return true
			}
		}
	}
	return false
}

// Sanitized returns a copy of the user safe to hand back to API callers.
func (u *User) Sanitized() *User {
	cp := *u
	cp.Password = ""
	return &cp
}
