package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/footleague/football-api/internal/core/domain"
	"github.com/footleague/football-api/internal/core/ports"
)

type stubLeagueService struct {
	clubs     []domain.Club
	deleted   []int64
	deleteErr error
}

func (s *stubLeagueService) ListClubs(context.Context) ([]domain.Club, error) {
	return s.clubs, nil
}

func (s *stubLeagueService) CreateClub(_ context.Context, name string) (*domain.Club, error) {
	return &domain.Club{ID: 1, Name: name}, nil
}

func (s *stubLeagueService) UpdateClub(_ context.Context, id int64, name string) (*domain.Club, error) {
	return &domain.Club{ID: id, Name: name}, nil
}

func (s *stubLeagueService) DeleteClub(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubLeagueService) ListPlayers(context.Context) ([]domain.Player, error) {
	panic("not used")
}

func (s *stubLeagueService) CreatePlayer(context.Context, ports.CreatePlayerInput) (*domain.Player, error) {
	panic("not used")
}

func (s *stubLeagueService) UpdatePlayer(context.Context, int64, ports.UpdatePlayerInput) (*domain.Player, error) {
	panic("not used")
}

func (s *stubLeagueService) DeletePlayer(context.Context, int64) error { panic("not used") }

func (s *stubLeagueService) ListGoals(context.Context) ([]domain.Goal, error) { panic("not used") }

func (s *stubLeagueService) CreateGoal(context.Context, ports.CreateGoalInput) (*domain.Goal, error) {
	panic("not used")
}

func (s *stubLeagueService) UpdateGoal(context.Context, int64, ports.UpdateGoalInput) (*domain.Goal, error) {
	panic("not used")
}

func (s *stubLeagueService) DeleteGoal(context.Context, int64) error { panic("not used") }

func TestClubHandler_List(t *testing.T) {
	svc := &stubLeagueService{clubs: []domain.Club{{ID: 1, Name: "Rosario Central"}}}
	h := NewClubHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/clubs", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Rosario Central") {
		t.Fatalf("club missing from response: %s", rec.Body.String())
	}
}

func TestClubHandler_Create(t *testing.T) {
	h := NewClubHandler(&stubLeagueService{})

	c, rec := newTestContext(t, http.MethodPost, "/clubs", `{"name":"Boca Juniors"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestClubHandler_Create_MissingName(t *testing.T) {
	h := NewClubHandler(&stubLeagueService{})

	c, _ := newTestContext(t, http.MethodPost, "/clubs", `{}`)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestClubHandler_Delete(t *testing.T) {
	svc := &stubLeagueService{}
	h := NewClubHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/clubs/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != 7 {
		t.Fatalf("delete not forwarded: %v", svc.deleted)
	}
}

func TestClubHandler_Delete_NotFound(t *testing.T) {
	svc := &stubLeagueService{deleteErr: domain.ErrClubNotFound}
	h := NewClubHandler(svc)

	c, _ := newTestContext(t, http.MethodDelete, "/clubs/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")
	if err := h.Delete(c); err != domain.ErrClubNotFound {
		t.Fatalf("expected ErrClubNotFound to propagate, got %v", err)
	}
}

func TestClubHandler_Delete_InvalidID(t *testing.T) {
	h := NewClubHandler(&stubLeagueService{})

	c, _ := newTestContext(t, http.MethodDelete, "/clubs/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	err := h.Delete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
