package sqlc

import (
	"context"
)

type PlacementManager struct {
	queries Querier
}

func NewPlacementManager(queries Querier) *PlacementManager {
	return &PlacementManager{queries: queries}
}

func (p *PlacementManager) GetPlacements(ctx context.Context) ([]Placement, error) {
	return p.queries.ListPlacements(ctx)
}

// ReplacePlacements drops the previous layout and writes the new one. Run it
// on a transaction-bound Querier so a failure leaves the old layout intact.
func (p *PlacementManager) ReplacePlacements(ctx context.Context, placements []UpsertPlacementParams) error {
	if err := p.queries.DeletePlacements(ctx); err != nil {
		return err
	}
	for _, placement := range placements {
		if err := p.queries.UpsertPlacement(ctx, placement); err != nil {
			return err
		}
	}
	return nil
}
