package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const insertMatchResult = `-- name: InsertMatchResult :exec
INSERT INTO match_results (id, game_uuid, winner, loser, winner_policy, loser_policy, turns, winner_ship_cells_left)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type InsertMatchResultParams struct {
	ID                  uuid.UUID
	GameUuid            string
	Winner              string
	Loser               string
	WinnerPolicy        string
	LoserPolicy         string
	Turns               int32
	WinnerShipCellsLeft int32
}

func (q *Queries) InsertMatchResult(ctx context.Context, arg InsertMatchResultParams) error {
	_, err := q.db.ExecContext(ctx, insertMatchResult,
		arg.ID,
		arg.GameUuid,
		arg.Winner,
		arg.Loser,
		arg.WinnerPolicy,
		arg.LoserPolicy,
		arg.Turns,
		arg.WinnerShipCellsLeft,
	)
	return err
}

const countMatches = `-- name: CountMatches :one
SELECT COUNT(*) FROM match_results
`

func (q *Queries) CountMatches(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countMatches)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const averageTurns = `-- name: AverageTurns :one
SELECT COALESCE(AVG(turns), 0)::float8 FROM match_results
`

func (q *Queries) AverageTurns(ctx context.Context) (float64, error) {
	row := q.db.QueryRowContext(ctx, averageTurns)
	var avg float64
	err := row.Scan(&avg)
	return avg, err
}

const countWinsByPlayer = `-- name: CountWinsByPlayer :many
SELECT winner, COUNT(*) AS wins FROM match_results GROUP BY winner ORDER BY winner
`

type CountWinsByPlayerRow struct {
	Winner string
	Wins   int64
}

func (q *Queries) CountWinsByPlayer(ctx context.Context) ([]CountWinsByPlayerRow, error) {
	rows, err := q.db.QueryContext(ctx, countWinsByPlayer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CountWinsByPlayerRow
	for rows.Next() {
		var i CountWinsByPlayerRow
		if err := rows.Scan(&i.Winner, &i.Wins); err != nil {
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
