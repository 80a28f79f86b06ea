package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/footleague/football-api/internal/core/ports"
)

type PlayerHandler struct {
	league ports.LeagueService
}

func NewPlayerHandler(league ports.LeagueService) *PlayerHandler {
	return &PlayerHandler{league: league}
}

// List returns every player.
//
// @Summary      List players
// @Tags         players
// @Produce      json
// @Success      200  {array}  domain.Player
// @Router       /players [get]
func (h *PlayerHandler) List(c echo.Context) error {
	players, err := h.league.ListPlayers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, players)
}

// Create adds a player to an existing club.
//
// @Summary      Create a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        body  body      createPlayerRequest  true  "Player"
// @Success      201   {object}  domain.Player
// @Failure      404   {object}  map[string]string
// @Router       /players [post]
func (h *PlayerHandler) Create(c echo.Context) error {
	var req createPlayerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	player, err := h.league.CreatePlayer(c.Request().Context(), ports.CreatePlayerInput{
		ClubID:  req.ClubID,
		Name:    req.Name,
		Surname: req.Surname,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, player)
}

// Update applies a partial update; omitted fields keep their value.
//
// @Summary      Update a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Player ID"
// @Param        body  body      updatePlayerRequest  true  "Fields to change"
// @Success      200   {object}  domain.Player
// @Failure      404   {object}  map[string]string
// @Router       /players/{id} [put]
func (h *PlayerHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updatePlayerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	player, err := h.league.UpdatePlayer(c.Request().Context(), id, ports.UpdatePlayerInput{
		ClubID:  req.ClubID,
		Name:    req.Name,
		Surname: req.Surname,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, player)
}

// Delete removes a player and every goal referencing them.
//
// @Summary      Delete a player and their goals
// @Tags         players
// @Param        id  path  int  true  "Player ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /players/{id} [delete]
func (h *PlayerHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.league.DeletePlayer(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
