// Package store persists the placement cache and finished match results.
package store

import (
	"context"
	"time"

	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

// MatchRecord is one finished game.
type MatchRecord struct {
	GameUuid            string
	Winner              string
	Loser               string
	WinnerPolicy        string
	LoserPolicy         string
	Turns               int
	WinnerShipCellsLeft int
	PlayedAt            time.Time
}

// Stats summarizes every recorded match.
type Stats struct {
	Matches      int64
	AverageTurns float64
	Wins         map[string]int64
}

// Backend is implemented by every storage type.
type Backend interface {
	mb.PlacementCache

	RecordMatch(ctx context.Context, record MatchRecord) error
	MatchStats(ctx context.Context) (Stats, error)

	Close() error
}

// NewMatchRecord builds a record from a finished game result.
func NewMatchRecord(result mb.Result, winnerPolicy, loserPolicy string) MatchRecord {
	record := MatchRecord{
		GameUuid:            result.GameUuid,
		WinnerPolicy:        winnerPolicy,
		LoserPolicy:         loserPolicy,
		Turns:               result.Turns,
		WinnerShipCellsLeft: result.WinnerShipCellsLeft,
		PlayedAt:            time.Now().UTC(),
	}
	if result.Winner != nil {
		record.Winner = result.Winner.Name
	}
	if result.Loser != nil {
		record.Loser = result.Loser.Name
	}
	return record
}
