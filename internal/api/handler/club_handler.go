package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/footleague/football-api/internal/core/ports"
)

type ClubHandler struct {
	league ports.LeagueService
}

func NewClubHandler(league ports.LeagueService) *ClubHandler {
	return &ClubHandler{league: league}
}

// List returns every club.
//
// @Summary      List clubs
// @Tags         clubs
// @Produce      json
// @Success      200  {array}  domain.Club
// @Router       /clubs [get]
func (h *ClubHandler) List(c echo.Context) error {
	clubs, err := h.league.ListClubs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clubs)
}

// Create adds a new club.
//
// @Summary      Create a club
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Param        body  body      clubRequest  true  "Club"
// @Success      201   {object}  domain.Club
// @Router       /clubs [post]
func (h *ClubHandler) Create(c echo.Context) error {
	var req clubRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	club, err := h.league.CreateClub(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, club)
}

// Update renames a club.
//
// @Summary      Update a club
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Club ID"
// @Param        body  body      clubRequest  true  "Club"
// @Success      200   {object}  domain.Club
// @Failure      404   {object}  map[string]string
// @Router       /clubs/{id} [put]
func (h *ClubHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req clubRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	club, err := h.league.UpdateClub(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, club)
}

// Delete removes a club and, transitively, its players and their goals.
//
// @Summary      Delete a club and all its players and goals
// @Tags         clubs
// @Param        id  path  int  true  "Club ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /clubs/{id} [delete]
func (h *ClubHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.league.DeleteClub(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
