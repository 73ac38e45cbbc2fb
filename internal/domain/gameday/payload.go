package gameday

type LineupEntryPayload struct {
	Name     string `json:"name" validate:"required"`
	Position string `json:"position"`
}

// LineupPayload is the body of the add_lineup and edit_lineup endpoints.
type LineupPayload struct {
	Title            string               `json:"title" validate:"required"`
	LineupData       []LineupEntryPayload `json:"lineup_data" validate:"dive"`
	AssociatedGameID *int64               `json:"associated_game_id"`
}

// RotationPayload is the body of save_rotation. ID is omitted on create.
type RotationPayload struct {
	ID               int64                        `json:"id,omitempty" validate:"gte=0"`
	Title            string                       `json:"title" validate:"required"`
	Innings          map[string]map[string]string `json:"innings" validate:"required,min=1"`
	AssociatedGameID *int64                       `json:"associated_game_id"`
}

// SaveResult is the server's answer to a successful save.
type SaveResult struct {
	ID      int64
	Message string
}
