package sqlc

import (
	"time"

	"github.com/google/uuid"
)

type Placement struct {
	ShipName    string
	Orientation string
	Anchor      string
	UpdatedAt   time.Time
}

type MatchResult struct {
	ID                  uuid.UUID
	GameUuid            string
	Winner              string
	Loser               string
	WinnerPolicy        string
	LoserPolicy         string
	Turns               int32
	WinnerShipCellsLeft int32
	PlayedAt            time.Time
}
