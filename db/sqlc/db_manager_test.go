package sqlc

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockManager(t *testing.T) (DbManager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDbManager(New(db)), mock
}

func TestRecordMatch(t *testing.T) {
	dbm, mock := newMockManager(t)
	ctx, cancel := context.WithTimeout(context.Background(), QuerierCtxTimeout)
	defer cancel()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO match_results")).
		WithArgs(sqlmock.AnyArg(), "abc123", "AI-1", "AI-2", "largest", "smallest", int32(48), int32(6)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := dbm.Analytics.RecordMatch(ctx, InsertMatchResultParams{
		GameUuid:            "abc123",
		Winner:              "AI-1",
		Loser:               "AI-2",
		WinnerPolicy:        "largest",
		LoserPolicy:         "smallest",
		Turns:               48,
		WinnerShipCellsLeft: 6,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsQueries(t *testing.T) {
	dbm, mock := newMockManager(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM match_results")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(AVG(turns), 0)::float8 FROM match_results")).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(51.5))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT winner, COUNT(*) AS wins FROM match_results GROUP BY winner")).
		WillReturnRows(sqlmock.NewRows([]string{"winner", "wins"}).AddRow("AI-1", 2).AddRow("AI-2", 1))

	count, err := dbm.Analytics.GetMatchCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	avg, err := dbm.Analytics.GetAverageTurns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 51.5, avg)

	wins, err := dbm.Analytics.GetWinsByPlayer(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"AI-1": 2, "AI-2": 1}, wins)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlacements(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		params    []UpsertPlacementParams
		expectErr bool
	}{
		{
			name: "replace writes every ship",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM placements")).WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO placements")).
					WithArgs("Cruiser", "h", "B3").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO placements")).
					WithArgs("Patrol Boat", "v", "J9").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			params: []UpsertPlacementParams{
				{ShipName: "Cruiser", Orientation: "h", Anchor: "B3"},
				{ShipName: "Patrol Boat", Orientation: "v", Anchor: "J9"},
			},
		},
		{
			name: "delete failure stops the write",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM placements")).WillReturnError(errors.New("connection reset"))
			},
			params:    []UpsertPlacementParams{{ShipName: "Cruiser", Orientation: "h", Anchor: "B3"}},
			expectErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dbm, mock := newMockManager(t)
			test.setup(mock)

			err := dbm.Placements.ReplacePlacements(context.Background(), test.params)
			if test.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetPlacements(t *testing.T) {
	dbm, mock := newMockManager(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ship_name, orientation, anchor, updated_at FROM placements")).
		WillReturnRows(sqlmock.NewRows([]string{"ship_name", "orientation", "anchor", "updated_at"}).
			AddRow("Cruiser", "h", "B3", now))

	placements, err := dbm.Placements.GetPlacements(context.Background())
	require.NoError(t, err)
	require.Len(t, placements, 1)
	assert.Equal(t, Placement{ShipName: "Cruiser", Orientation: "h", Anchor: "B3", UpdatedAt: now}, placements[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}
