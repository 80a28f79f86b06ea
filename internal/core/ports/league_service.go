package ports

import (
	"context"

	"github.com/footleague/football-api/internal/core/domain"
)

// CreatePlayerInput carries the fields for a new player.
type CreatePlayerInput struct {
	ClubID  int64
	Name    string
	Surname string
}

// UpdatePlayerInput carries a partial update; nil fields are left unchanged.
type UpdatePlayerInput struct {
	ClubID  *int64
	Name    *string
	Surname *string
}

// CreateGoalInput carries the fields for a new goal.
type CreateGoalInput struct {
	PlayerID int64
	Minute   int
}

// UpdateGoalInput carries a partial update; nil fields are left unchanged.
type UpdateGoalInput struct {
	PlayerID *int64
	Minute   *int
}

// LeagueService implements the business rules over the club → player → goal
// hierarchy. Creating or re-parenting a child validates that the referenced
// parent exists; deletions cascade through the CascadeEngine.
type LeagueService interface {
	ListClubs(ctx context.Context) ([]domain.Club, error)
	CreateClub(ctx context.Context, name string) (*domain.Club, error)
	UpdateClub(ctx context.Context, id int64, name string) (*domain.Club, error)
	DeleteClub(ctx context.Context, id int64) error

	ListPlayers(ctx context.Context) ([]domain.Player, error)
	CreatePlayer(ctx context.Context, in CreatePlayerInput) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, id int64, in UpdatePlayerInput) (*domain.Player, error)
	DeletePlayer(ctx context.Context, id int64) error

	ListGoals(ctx context.Context) ([]domain.Goal, error)
	CreateGoal(ctx context.Context, in CreateGoalInput) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, id int64, in UpdateGoalInput) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, id int64) error
}
