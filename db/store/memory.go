package store

import (
	"context"
	"sync"

	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

// Memory keeps everything in process; nothing survives a restart.
type Memory struct {
	mu         sync.RWMutex
	placements map[string]mb.Placement
	matches    []MatchRecord
}

var _ Backend = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{placements: make(map[string]mb.Placement)}
}

func (m *Memory) Load(ctx context.Context) (map[string]mb.Placement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]mb.Placement, len(m.placements))
	for name, placement := range m.placements {
		out[name] = placement
	}
	return out, nil
}

func (m *Memory) Save(ctx context.Context, placements map[string]mb.Placement) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.placements = make(map[string]mb.Placement, len(placements))
	for name, placement := range placements {
		m.placements[name] = placement
	}
	return nil
}

func (m *Memory) RecordMatch(ctx context.Context, record MatchRecord) error {
	m.mu.Lock()
	m.matches = append(m.matches, record)
	m.mu.Unlock()
	return nil
}

func (m *Memory) MatchStats(ctx context.Context) (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := Stats{Wins: make(map[string]int64)}
	total := 0
	for _, match := range m.matches {
		stats.Matches++
		stats.Wins[match.Winner]++
		total += match.Turns
	}
	if stats.Matches > 0 {
		stats.AverageTurns = float64(total) / float64(stats.Matches)
	}
	return stats, nil
}

func (m *Memory) Close() error {
	return nil
}
