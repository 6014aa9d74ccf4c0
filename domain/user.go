package domain

import "strings"

// Role discriminates the two access levels the backend knows about.
type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

// RoleFromList maps the roles list of a structured login response. Only an
// exact "ROLE_ADMIN" in first position grants administrator; anything else,
// including an empty list, yields an ordinary user.
func RoleFromList(roles []string) Role {
	if len(roles) > 0 && roles[0] == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

// RoleFromClaim maps the free-form role claim of a decoded token. The older
// backend emits variations like "admin" or "ROLE_ADMIN", so the check is a
// case-insensitive substring match.
func RoleFromClaim(raw string) Role {
	if raw == "" {
		raw = string(RoleUser)
	}
	if strings.Contains(strings.ToUpper(raw), "ADMIN") {
		return RoleAdmin
	}
	return RoleUser
}

// User is the identity known to the client. A nil *User means anonymous.
// Users are replaced wholesale on login and dropped on logout, never mutated.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// IsAdmin is nil-safe so callers can ask the question about an anonymous session.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UpdateRoleRequest changes a user's role through the admin endpoint.
type UpdateRoleRequest struct {
	Role Role `json:"role"`
}
