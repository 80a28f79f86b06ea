package handler

type clubRequest struct {
	Name string `json:"name" validate:"required"`
}

type createPlayerRequest struct {
	ClubID  int64  `json:"club_id" validate:"required,gt=0"`
	Name    string `json:"name"    validate:"required"`
	Surname string `json:"surname" validate:"required"`
}

type updatePlayerRequest struct {
	ClubID  *int64  `json:"club_id" validate:"omitempty,gt=0"`
	Name    *string `json:"name"    validate:"omitempty,min=1"`
	Surname *string `json:"surname" validate:"omitempty,min=1"`
}

type createGoalRequest struct {
	PlayerID int64 `json:"player_id" validate:"required,gt=0"`
	Minute   int   `json:"minute"    validate:"gte=0,lte=130"`
}

type updateGoalRequest struct {
	PlayerID *int64 `json:"player_id" validate:"omitempty,gt=0"`
	Minute   *int   `json:"minute"    validate:"omitempty,gte=0,lte=130"`
}
