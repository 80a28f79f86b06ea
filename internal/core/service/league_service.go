package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/footleague/football-api/internal/core/domain"
	"github.com/footleague/football-api/internal/core/ports"
)

// LeagueService implements CRUD over the club → player → goal hierarchy.
// Parent references are validated on create and re-parent; deletions go
// through the cascade engine so children never outlive their parent.
type LeagueService struct {
	clubs   ports.ClubRepository
	players ports.PlayerRepository
	goals   ports.GoalRepository
	cascade ports.CascadeEngine
	log     zerolog.Logger
}

func NewLeagueService(
	clubs ports.ClubRepository,
	players ports.PlayerRepository,
	goals ports.GoalRepository,
	cascade ports.CascadeEngine,
	log zerolog.Logger,
) *LeagueService {
	return &LeagueService{clubs: clubs, players: players, goals: goals, cascade: cascade, log: log}
}

func (s *LeagueService) ListClubs(ctx context.Context) ([]domain.Club, error) {
	return s.clubs.List(ctx)
}

func (s *LeagueService) CreateClub(ctx context.Context, name string) (*domain.Club, error) {
	club, err := s.clubs.Create(ctx, &domain.Club{Name: name})
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("club_id", club.ID).Str("name", club.Name).Msg("club created")
	return club, nil
}

func (s *LeagueService) UpdateClub(ctx context.Context, id int64, name string) (*domain.Club, error) {
	return s.clubs.Update(ctx, &domain.Club{ID: id, Name: name})
}

func (s *LeagueService) DeleteClub(ctx context.Context, id int64) error {
	return s.cascade.DeleteClub(ctx, id)
}

func (s *LeagueService) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	return s.players.List(ctx)
}

func (s *LeagueService) CreatePlayer(ctx context.Context, in ports.CreatePlayerInput) (*domain.Player, error) {
	// The club must exist before a player may reference it. The schema FK
	// backstops the race where it vanishes between this check and the insert.
	if _, err := s.clubs.FindByID(ctx, in.ClubID); err != nil {
		return nil, err
	}
	player, err := s.players.Create(ctx, &domain.Player{
		ClubID:  in.ClubID,
		Name:    in.Name,
		Surname: in.Surname,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("player_id", player.ID).Int64("club_id", player.ClubID).Msg("player created")
	return player, nil
}

func (s *LeagueService) UpdatePlayer(ctx context.Context, id int64, in ports.UpdatePlayerInput) (*domain.Player, error) {
	player, err := s.players.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ClubID != nil && *in.ClubID != player.ClubID {
		if _, err := s.clubs.FindByID(ctx, *in.ClubID); err != nil {
			return nil, err
		}
		player.ClubID = *in.ClubID
	}
	if in.Name != nil {
		player.Name = *in.Name
	}
	if in.Surname != nil {
		player.Surname = *in.Surname
	}
	return s.players.Update(ctx, player)
}

func (s *LeagueService) DeletePlayer(ctx context.Context, id int64) error {
	return s.cascade.DeletePlayer(ctx, id)
}

func (s *LeagueService) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	return s.goals.List(ctx)
}

func (s *LeagueService) CreateGoal(ctx context.Context, in ports.CreateGoalInput) (*domain.Goal, error) {
	if _, err := s.players.FindByID(ctx, in.PlayerID); err != nil {
		return nil, err
	}
	goal, err := s.goals.Create(ctx, &domain.Goal{
		PlayerID: in.PlayerID,
		Minute:   in.Minute,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("goal_id", goal.ID).Int64("player_id", goal.PlayerID).Msg("goal created")
	return goal, nil
}

func (s *LeagueService) UpdateGoal(ctx context.Context, id int64, in ports.UpdateGoalInput) (*domain.Goal, error) {
	goal, err := s.goals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.PlayerID != nil && *in.PlayerID != goal.PlayerID {
		if _, err := s.players.FindByID(ctx, *in.PlayerID); err != nil {
			return nil, err
		}
		goal.PlayerID = *in.PlayerID
	}
	if in.Minute != nil {
		goal.Minute = *in.Minute
	}
	return s.goals.Update(ctx, goal)
}

func (s *LeagueService) DeleteGoal(ctx context.Context, id int64) error {
	return s.cascade.DeleteGoal(ctx, id)
}
