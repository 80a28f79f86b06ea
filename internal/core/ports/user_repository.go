package ports

import (
	"context"

	"github.com/footleague/football-api/internal/core/domain"
)

// UserRepository defines the interface for identity persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
