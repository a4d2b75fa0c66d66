package sqlc

import "time"

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	Analytics  *AnalyticsManager
	Placements *PlacementManager
}

func NewDbManager(queries Querier) DbManager {
	return DbManager{
		Analytics:  NewAnalyticsManager(queries),
		Placements: NewPlacementManager(queries),
	}
}
