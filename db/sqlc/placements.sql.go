package sqlc

import (
	"context"
)

const listPlacements = `-- name: ListPlacements :many
SELECT ship_name, orientation, anchor, updated_at FROM placements ORDER BY ship_name
`

func (q *Queries) ListPlacements(ctx context.Context) ([]Placement, error) {
	rows, err := q.db.QueryContext(ctx, listPlacements)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Placement
	for rows.Next() {
		var i Placement
		if err := rows.Scan(&i.ShipName, &i.Orientation, &i.Anchor, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertPlacement = `-- name: UpsertPlacement :exec
INSERT INTO placements (ship_name, orientation, anchor, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (ship_name) DO UPDATE
SET orientation = EXCLUDED.orientation, anchor = EXCLUDED.anchor, updated_at = NOW()
`

type UpsertPlacementParams struct {
	ShipName    string
	Orientation string
	Anchor      string
}

func (q *Queries) UpsertPlacement(ctx context.Context, arg UpsertPlacementParams) error {
	_, err := q.db.ExecContext(ctx, upsertPlacement, arg.ShipName, arg.Orientation, arg.Anchor)
	return err
}

const deletePlacements = `-- name: DeletePlacements :exec
DELETE FROM placements
`

func (q *Queries) DeletePlacements(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deletePlacements)
	return err
}
