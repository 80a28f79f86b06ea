package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/footleague/football-api/internal/core/domain"
	"github.com/footleague/football-api/internal/core/ports"
)

type stubClubRepo struct {
	clubs  map[int64]*domain.Club
	nextID int64
}

func newStubClubRepo() *stubClubRepo {
	return &stubClubRepo{clubs: make(map[int64]*domain.Club)}
}

func (r *stubClubRepo) Create(_ context.Context, club *domain.Club) (*domain.Club, error) {
	r.nextID++
	created := *club
	created.ID = r.nextID
	r.clubs[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubClubRepo) List(context.Context) ([]domain.Club, error) {
	out := make([]domain.Club, 0, len(r.clubs))
	for _, c := range r.clubs {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClubRepo) FindByID(_ context.Context, id int64) (*domain.Club, error) {
	c, ok := r.clubs[id]
	if !ok {
		return nil, domain.ErrClubNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClubRepo) Update(_ context.Context, club *domain.Club) (*domain.Club, error) {
	if _, ok := r.clubs[club.ID]; !ok {
		return nil, domain.ErrClubNotFound
	}
	updated := *club
	r.clubs[club.ID] = &updated
	clone := updated
	return &clone, nil
}

type stubPlayerRepo struct {
	players map[int64]*domain.Player
	nextID  int64
}

func newStubPlayerRepo() *stubPlayerRepo {
	return &stubPlayerRepo{players: make(map[int64]*domain.Player)}
}

func (r *stubPlayerRepo) Create(_ context.Context, player *domain.Player) (*domain.Player, error) {
	r.nextID++
	created := *player
	created.ID = r.nextID
	r.players[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubPlayerRepo) List(context.Context) ([]domain.Player, error) {
	out := make([]domain.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPlayerRepo) FindByID(_ context.Context, id int64) (*domain.Player, error) {
	p, ok := r.players[id]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPlayerRepo) Update(_ context.Context, player *domain.Player) (*domain.Player, error) {
	if _, ok := r.players[player.ID]; !ok {
		return nil, domain.ErrPlayerNotFound
	}
	updated := *player
	r.players[player.ID] = &updated
	clone := updated
	return &clone, nil
}

type stubGoalRepo struct {
	goals  map[int64]*domain.Goal
	nextID int64
}

func newStubGoalRepo() *stubGoalRepo {
	return &stubGoalRepo{goals: make(map[int64]*domain.Goal)}
}

func (r *stubGoalRepo) Create(_ context.Context, goal *domain.Goal) (*domain.Goal, error) {
	r.nextID++
	created := *goal
	created.ID = r.nextID
	r.goals[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubGoalRepo) List(context.Context) ([]domain.Goal, error) {
	out := make([]domain.Goal, 0, len(r.goals))
	for _, g := range r.goals {
		out = append(out, *g)
	}
	return out, nil
}

func (r *stubGoalRepo) FindByID(_ context.Context, id int64) (*domain.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, domain.ErrGoalNotFound
	}
	clone := *g
	return &clone, nil
}

func (r *stubGoalRepo) Update(_ context.Context, goal *domain.Goal) (*domain.Goal, error) {
	if _, ok := r.goals[goal.ID]; !ok {
		return nil, domain.ErrGoalNotFound
	}
	updated := *goal
	r.goals[goal.ID] = &updated
	clone := updated
	return &clone, nil
}

type stubCascade struct {
	clubCalls   []int64
	playerCalls []int64
	goalCalls   []int64
	err         error
}

func (c *stubCascade) DeleteClub(_ context.Context, id int64) error {
	c.clubCalls = append(c.clubCalls, id)
	return c.err
}

func (c *stubCascade) DeletePlayer(_ context.Context, id int64) error {
	c.playerCalls = append(c.playerCalls, id)
	return c.err
}

func (c *stubCascade) DeleteGoal(_ context.Context, id int64) error {
	c.goalCalls = append(c.goalCalls, id)
	return c.err
}

func newTestLeagueService() (*LeagueService, *stubClubRepo, *stubPlayerRepo, *stubGoalRepo, *stubCascade) {
	clubs := newStubClubRepo()
	players := newStubPlayerRepo()
	goals := newStubGoalRepo()
	cascade := &stubCascade{}
	svc := NewLeagueService(clubs, players, goals, cascade, zerolog.Nop())
	return svc, clubs, players, goals, cascade
}

func TestLeagueService_CreatePlayer_RequiresClub(t *testing.T) {
	svc, clubs, _, _, _ := newTestLeagueService()

	if _, err := svc.CreatePlayer(context.Background(), ports.CreatePlayerInput{ClubID: 42, Name: "Lionel", Surname: "Messi"}); err != domain.ErrClubNotFound {
		t.Fatalf("expected ErrClubNotFound, got %v", err)
	}

	club, err := svc.CreateClub(context.Background(), "Inter Miami")
	if err != nil {
		t.Fatalf("CreateClub failed: %v", err)
	}
	player, err := svc.CreatePlayer(context.Background(), ports.CreatePlayerInput{ClubID: club.ID, Name: "Lionel", Surname: "Messi"})
	if err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}
	if player.ClubID != club.ID {
		t.Fatalf("player references club %d, want %d", player.ClubID, club.ID)
	}
	if _, ok := clubs.clubs[club.ID]; !ok {
		t.Fatalf("club missing from repo")
	}
}

func TestLeagueService_CreateGoal_RequiresPlayer(t *testing.T) {
	svc, _, _, _, _ := newTestLeagueService()

	if _, err := svc.CreateGoal(context.Background(), ports.CreateGoalInput{PlayerID: 7, Minute: 90}); err != domain.ErrPlayerNotFound {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestLeagueService_UpdatePlayer_Partial(t *testing.T) {
	svc, _, _, _, _ := newTestLeagueService()

	club, _ := svc.CreateClub(context.Background(), "Arsenal")
	player, _ := svc.CreatePlayer(context.Background(), ports.CreatePlayerInput{ClubID: club.ID, Name: "Bukayo", Surname: "Saka"})

	name := "Gabriel"
	updated, err := svc.UpdatePlayer(context.Background(), player.ID, ports.UpdatePlayerInput{Name: &name})
	if err != nil {
		t.Fatalf("UpdatePlayer failed: %v", err)
	}
	if updated.Name != "Gabriel" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if updated.Surname != "Saka" || updated.ClubID != club.ID {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestLeagueService_UpdatePlayer_RejectsMissingClub(t *testing.T) {
	svc, _, _, _, _ := newTestLeagueService()

	club, _ := svc.CreateClub(context.Background(), "Chelsea")
	player, _ := svc.CreatePlayer(context.Background(), ports.CreatePlayerInput{ClubID: club.ID, Name: "Cole", Surname: "Palmer"})

	ghost := int64(999)
	if _, err := svc.UpdatePlayer(context.Background(), player.ID, ports.UpdatePlayerInput{ClubID: &ghost}); err != domain.ErrClubNotFound {
		t.Fatalf("expected ErrClubNotFound, got %v", err)
	}
}

func TestLeagueService_UpdateGoal_Partial(t *testing.T) {
	svc, _, _, _, _ := newTestLeagueService()

	club, _ := svc.CreateClub(context.Background(), "Liverpool")
	player, _ := svc.CreatePlayer(context.Background(), ports.CreatePlayerInput{ClubID: club.ID, Name: "Mohamed", Surname: "Salah"})
	goal, _ := svc.CreateGoal(context.Background(), ports.CreateGoalInput{PlayerID: player.ID, Minute: 12})

	minute := 90
	updated, err := svc.UpdateGoal(context.Background(), goal.ID, ports.UpdateGoalInput{Minute: &minute})
	if err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}
	if updated.Minute != 90 || updated.PlayerID != player.ID {
		t.Fatalf("unexpected goal after update: %+v", updated)
	}
}

func TestLeagueService_Deletes_DelegateToCascade(t *testing.T) {
	svc, _, _, _, cascade := newTestLeagueService()

	if err := svc.DeleteClub(context.Background(), 1); err != nil {
		t.Fatalf("DeleteClub failed: %v", err)
	}
	if err := svc.DeletePlayer(context.Background(), 2); err != nil {
		t.Fatalf("DeletePlayer failed: %v", err)
	}
	if err := svc.DeleteGoal(context.Background(), 3); err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}

	if len(cascade.clubCalls) != 1 || cascade.clubCalls[0] != 1 {
		t.Fatalf("club cascade calls: %v", cascade.clubCalls)
	}
	if len(cascade.playerCalls) != 1 || cascade.playerCalls[0] != 2 {
		t.Fatalf("player cascade calls: %v", cascade.playerCalls)
	}
	if len(cascade.goalCalls) != 1 || cascade.goalCalls[0] != 3 {
		t.Fatalf("goal cascade calls: %v", cascade.goalCalls)
	}

	cascade.err = domain.ErrClubNotFound
	if err := svc.DeleteClub(context.Background(), 1); err != domain.ErrClubNotFound {
		t.Fatalf("expected cascade error to propagate, got %v", err)
	}
}
