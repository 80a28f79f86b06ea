package ports

import (
	"context"

	"github.com/footleague/football-api/internal/core/domain"
)

// ClubRepository persists clubs. Update reports domain.ErrClubNotFound when
// the row no longer exists.
type ClubRepository interface {
	Create(ctx context.Context, club *domain.Club) (*domain.Club, error)
	List(ctx context.Context) ([]domain.Club, error)
	FindByID(ctx context.Context, id int64) (*domain.Club, error)
	Update(ctx context.Context, club *domain.Club) (*domain.Club, error)
}

// PlayerRepository persists players.
type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) (*domain.Player, error)
	List(ctx context.Context) ([]domain.Player, error)
	FindByID(ctx context.Context, id int64) (*domain.Player, error)
	Update(ctx context.Context, player *domain.Player) (*domain.Player, error)
}

// GoalRepository persists goals.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	List(ctx context.Context) ([]domain.Goal, error)
	FindByID(ctx context.Context, id int64) (*domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
}
