package domain

import (
	"errors"
	"time"
)

// Role is the closed set of access levels known to the system. New roles must
// be added here and to ParseRole; raw string comparison against role values
// is never done outside this package.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole validates a raw role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleUser, RoleAdmin:
		return r, nil
	}
	return "", ErrUnknownRole
}

var (
	// ErrInvalidCredentials covers every authentication failure visible to a
	// caller: unknown username, wrong password, and invalid or expired
	// tokens. The causes are deliberately not distinguishable from outside.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnknownRole        = errors.New("unknown role")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)

// User models an authenticated actor in the system.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
