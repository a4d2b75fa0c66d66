package sqlc

import (
	"context"

	"github.com/google/uuid"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

// RecordMatch stores one finished match under a fresh id and returns it.
func (a *AnalyticsManager) RecordMatch(ctx context.Context, arg InsertMatchResultParams) (uuid.UUID, error) {
	if arg.ID == uuid.Nil {
		arg.ID = uuid.New()
	}
	return arg.ID, a.queries.InsertMatchResult(ctx, arg)
}

func (a *AnalyticsManager) GetMatchCount(ctx context.Context) (int64, error) {
	return a.queries.CountMatches(ctx)
}

func (a *AnalyticsManager) GetAverageTurns(ctx context.Context) (float64, error) {
	return a.queries.AverageTurns(ctx)
}

func (a *AnalyticsManager) GetWinsByPlayer(ctx context.Context) (map[string]int64, error) {
	rows, err := a.queries.CountWinsByPlayer(ctx)
	if err != nil {
		return nil, err
	}

	wins := make(map[string]int64, len(rows))
	for _, row := range rows {
		wins[row.Winner] = row.Wins
	}
	return wins, nil
}
