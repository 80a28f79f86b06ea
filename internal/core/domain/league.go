package domain

import "errors"

var (
	ErrClubNotFound   = errors.New("club not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrGoalNotFound   = errors.New("goal not found")
)

// Club is the root of the club → player → goal hierarchy.
type Club struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Player belongs to exactly one club. A player never references a club that
// does not exist; deleting a club removes its players first.
type Player struct {
	ID      int64  `json:"id"`
	ClubID  int64  `json:"club_id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// Goal records a goal scored by a player, by match minute.
type Goal struct {
	ID       int64 `json:"id"`
	PlayerID int64 `json:"player_id"`
	Minute   int   `json:"minute"`
}
