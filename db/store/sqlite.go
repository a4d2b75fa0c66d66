package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/saeidalz13/battleship-engine/db"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
	"gorm.io/gorm"
)

type placementRow struct {
	ShipName    string `gorm:"primaryKey"`
	Orientation string `gorm:"size:1;not null"`
	Anchor      string `gorm:"size:4;not null"`
	UpdatedAt   time.Time
}

func (placementRow) TableName() string {
	return "placements"
}

type matchRow struct {
	ID                  string `gorm:"primaryKey;size:36"`
	GameUuid            string `gorm:"index;not null"`
	Winner              string `gorm:"index;not null"`
	Loser               string `gorm:"not null"`
	WinnerPolicy        string
	LoserPolicy         string
	Turns               int `gorm:"not null"`
	WinnerShipCellsLeft int `gorm:"not null"`
	PlayedAt            time.Time
}

func (matchRow) TableName() string {
	return "match_results"
}

// Sqlite stores the cache and results in a local sqlite file through gorm.
type Sqlite struct {
	db  *gorm.DB
	log zerolog.Logger
}

var _ Backend = (*Sqlite)(nil)

func NewSqlite(path string, log zerolog.Logger) (*Sqlite, error) {
	gdb, err := db.OpenSqlite(path)
	if err != nil {
		return nil, err
	}
	return NewSqliteFromGorm(gdb, log)
}

func NewSqliteFromGorm(gdb *gorm.DB, log zerolog.Logger) (*Sqlite, error) {
	if err := gdb.AutoMigrate(&placementRow{}, &matchRow{}); err != nil {
		return nil, err
	}
	return &Sqlite{db: gdb, log: log}, nil
}

func (s *Sqlite) Load(ctx context.Context) (map[string]mb.Placement, error) {
	var rows []placementRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	placements := make(map[string]mb.Placement, len(rows))
	for _, row := range rows {
		orientation, err := mb.ParseOrientation(row.Orientation)
		if err != nil {
			s.log.Warn().Err(err).Str("ship", row.ShipName).Msg("skipping cached placement")
			continue
		}
		placements[row.ShipName] = mb.Placement{Orientation: orientation, Anchor: row.Anchor}
	}
	return placements, nil
}

func (s *Sqlite) Save(ctx context.Context, placements map[string]mb.Placement) error {
	now := time.Now().UTC()
	rows := make([]placementRow, 0, len(placements))
	for name, placement := range placements {
		rows = append(rows, placementRow{
			ShipName:    name,
			Orientation: placement.Orientation.String(),
			Anchor:      placement.Anchor,
			UpdatedAt:   now,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&placementRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (s *Sqlite) RecordMatch(ctx context.Context, record MatchRecord) error {
	row := matchRow{
		ID:                  uuid.NewString(),
		GameUuid:            record.GameUuid,
		Winner:              record.Winner,
		Loser:               record.Loser,
		WinnerPolicy:        record.WinnerPolicy,
		LoserPolicy:         record.LoserPolicy,
		Turns:               record.Turns,
		WinnerShipCellsLeft: record.WinnerShipCellsLeft,
		PlayedAt:            record.PlayedAt,
	}
	return s.db.WithContext(ctx).Create(&row).Error
}

func (s *Sqlite) MatchStats(ctx context.Context) (Stats, error) {
	stats := Stats{Wins: make(map[string]int64)}
	tx := s.db.WithContext(ctx)

	if err := tx.Model(&matchRow{}).Count(&stats.Matches).Error; err != nil {
		return stats, err
	}
	if err := tx.Model(&matchRow{}).Select("COALESCE(AVG(turns), 0)").Row().Scan(&stats.AverageTurns); err != nil {
		return stats, err
	}

	var wins []struct {
		Winner string
		Wins   int64
	}
	if err := tx.Model(&matchRow{}).Select("winner, COUNT(*) AS wins").Group("winner").Scan(&wins).Error; err != nil {
		return stats, err
	}
	for _, w := range wins {
		stats.Wins[w.Winner] = w.Wins
	}
	return stats, nil
}

func (s *Sqlite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
