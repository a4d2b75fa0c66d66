package store

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"
	"github.com/saeidalz13/battleship-engine/db/sqlc"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

// Postgres runs the sqlc queries against a postgres pool.
type Postgres struct {
	db  *sql.DB
	dbm sqlc.DbManager
	log zerolog.Logger
}

var _ Backend = (*Postgres)(nil)

func NewPostgres(db *sql.DB, log zerolog.Logger) *Postgres {
	return &Postgres{
		db:  db,
		dbm: sqlc.NewDbManager(sqlc.New(db)),
		log: log,
	}
}

func (p *Postgres) Load(ctx context.Context) (map[string]mb.Placement, error) {
	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()

	rows, err := p.dbm.Placements.GetPlacements(ctx)
	if err != nil {
		return nil, err
	}

	placements := make(map[string]mb.Placement, len(rows))
	for _, row := range rows {
		orientation, err := mb.ParseOrientation(row.Orientation)
		if err != nil {
			p.log.Warn().Err(err).Str("ship", row.ShipName).Msg("skipping cached placement")
			continue
		}
		placements[row.ShipName] = mb.Placement{Orientation: orientation, Anchor: row.Anchor}
	}
	return placements, nil
}

func (p *Postgres) Save(ctx context.Context, placements map[string]mb.Placement) error {
	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()

	params := make([]sqlc.UpsertPlacementParams, 0, len(placements))
	for name, placement := range placements {
		params = append(params, sqlc.UpsertPlacementParams{
			ShipName:    name,
			Orientation: placement.Orientation.String(),
			Anchor:      placement.Anchor,
		})
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	manager := sqlc.NewPlacementManager(sqlc.New(p.db).WithTx(tx))
	if err := manager.ReplacePlacements(ctx, params); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (p *Postgres) RecordMatch(ctx context.Context, record MatchRecord) error {
	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()

	_, err := p.dbm.Analytics.RecordMatch(ctx, sqlc.InsertMatchResultParams{
		GameUuid:            record.GameUuid,
		Winner:              record.Winner,
		Loser:               record.Loser,
		WinnerPolicy:        record.WinnerPolicy,
		LoserPolicy:         record.LoserPolicy,
		Turns:               int32(record.Turns),
		WinnerShipCellsLeft: int32(record.WinnerShipCellsLeft),
	})
	return err
}

func (p *Postgres) MatchStats(ctx context.Context) (Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()

	stats := Stats{}
	var err error
	if stats.Matches, err = p.dbm.Analytics.GetMatchCount(ctx); err != nil {
		return stats, err
	}
	if stats.AverageTurns, err = p.dbm.Analytics.GetAverageTurns(ctx); err != nil {
		return stats, err
	}
	if stats.Wins, err = p.dbm.Analytics.GetWinsByPlayer(ctx); err != nil {
		return stats, err
	}
	return stats, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
