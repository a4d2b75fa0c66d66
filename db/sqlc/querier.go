package sqlc

import (
	"context"
)

type Querier interface {
	ListPlacements(ctx context.Context) ([]Placement, error)
	UpsertPlacement(ctx context.Context, arg UpsertPlacementParams) error
	DeletePlacements(ctx context.Context) error

	InsertMatchResult(ctx context.Context, arg InsertMatchResultParams) error
	CountMatches(ctx context.Context) (int64, error)
	AverageTurns(ctx context.Context) (float64, error)
	CountWinsByPlayer(ctx context.Context) ([]CountWinsByPlayerRow, error)
}

var _ Querier = (*Queries)(nil)
