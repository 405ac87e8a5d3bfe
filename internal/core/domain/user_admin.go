package domain

import "time"

const RoleAdmin = "admin"

// UserAdmin models an administrative user of the directory.
// PasswordHash is never serialised in API responses.
type UserAdmin struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Active       bool       `json:"active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}
