// Package user provides the signed-in account and public author types.
package user

// Role is an account's permission level.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is the account behind the current session.
type User struct {
	ID        string `json:"userId" validate:"required"`
	Nickname  string `json:"nickname" validate:"required"`
	Role      Role   `json:"role" validate:"oneof=ADMIN USER"`
	AvatarURL string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
}

// IsAdmin reports whether u may manage content.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Author is the public face of whoever wrote a comment or guestbook entry.
// Guests have no ID.
type Author struct {
	ID        string `json:"userId,omitempty"`
	Nickname  string `json:"nickname" validate:"required"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Guest     bool   `json:"guest"`
}
