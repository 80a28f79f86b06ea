package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/footleague/football-api/internal/core/ports"
)

type GoalHandler struct {
	league ports.LeagueService
}

func NewGoalHandler(league ports.LeagueService) *GoalHandler {
	return &GoalHandler{league: league}
}

// List returns every goal.
//
// @Summary      List goals
// @Tags         goals
// @Produce      json
// @Success      200  {array}  domain.Goal
// @Router       /goals [get]
func (h *GoalHandler) List(c echo.Context) error {
	goals, err := h.league.ListGoals(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, goals)
}

// Create records a goal for an existing player.
//
// @Summary      Create a goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        body  body      createGoalRequest  true  "Goal"
// @Success      201   {object}  domain.Goal
// @Failure      404   {object}  map[string]string
// @Router       /goals [post]
func (h *GoalHandler) Create(c echo.Context) error {
	var req createGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	goal, err := h.league.CreateGoal(c.Request().Context(), ports.CreateGoalInput{
		PlayerID: req.PlayerID,
		Minute:   req.Minute,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, goal)
}

// Update applies a partial update; omitted fields keep their value.
//
// @Summary      Update a goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Goal ID"
// @Param        body  body      updateGoalRequest  true  "Fields to change"
// @Success      200   {object}  domain.Goal
// @Failure      404   {object}  map[string]string
// @Router       /goals/{id} [put]
func (h *GoalHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	goal, err := h.league.UpdateGoal(c.Request().Context(), id, ports.UpdateGoalInput{
		PlayerID: req.PlayerID,
		Minute:   req.Minute,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, goal)
}

// Delete removes a single goal.
//
// @Summary      Delete a goal
// @Tags         goals
// @Param        id  path  int  true  "Goal ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /goals/{id} [delete]
func (h *GoalHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.league.DeleteGoal(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
