package ports

import (
	"context"

	"github.com/footleague/football-api/internal/core/domain"
)

// AuthService turns credentials or bearer tokens into authenticated
// identities, and provisions new ones.
type AuthService interface {
	// CreateUser stores a new identity with a hashed password.
	CreateUser(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	// Login verifies a username/password pair and returns a signed session
	// token. Unknown usernames and wrong passwords both fail with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
	// AuthenticateToken verifies a bearer token and re-resolves its subject
	// against the user store, so role changes and deletions take effect
	// before the token expires.
	AuthenticateToken(ctx context.Context, raw string) (*domain.User, error)
}
