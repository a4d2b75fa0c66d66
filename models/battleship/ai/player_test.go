package ai

import (
	"context"
	"math/rand"
	"testing"

	mb "github.com/saeidalz13/battleship-engine/models/battleship"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func playSeeded(t *testing.T, first, second Policy, seedA, seedB int64) mb.Result {
	t.Helper()
	a := NewNumberedPlayer(1, mb.BoardSize, first, seeded(seedA))
	b := NewNumberedPlayer(2, mb.BoardSize, second, seeded(seedB))

	game, err := mb.NewGame(a, b)
	require.NoError(t, err)
	result, err := game.Play()
	require.NoError(t, err)
	return result
}

func TestAIPlayerPlaceShips(t *testing.T) {
	p := NewPlayer("bot", mb.BoardSize, DefaultPolicy, seeded(1))
	require.NoError(t, p.PlaceShips(mb.StandardFleet))

	assert.Len(t, p.Player().Ships, len(mb.StandardFleet))
	assert.Equal(t, 17, p.Player().Board.ShipCellsLeft())
	assert.Equal(t, mb.FleetSizes(mb.StandardFleet), p.Engine().Remaining())
}

func TestAIPlayerCachedPlacement(t *testing.T) {
	cache := &layoutCache{placements: map[string]mb.Placement{
		"Patrol Boat": {Orientation: mb.OrientationVertical, Anchor: "J9"},
	}}
	placer, err := mb.NewCachedPlacer(context.Background(), cache)
	require.NoError(t, err)

	p := NewPlayer("bot", mb.BoardSize, DefaultPolicy, seeded(1), WithPlacer(placer))
	require.NoError(t, p.PlaceShips([]mb.ShipSpec{{Name: "Patrol Boat", Size: 2}}))

	grid := p.Player().Board.PlayerGrid()
	assert.Equal(t, mb.SymbolVerticalShip, grid[8][9])
	assert.Equal(t, mb.SymbolVerticalShip, grid[9][9])
}

func TestAIGameEndToEnd(t *testing.T) {
	for _, first := range Policies() {
		for _, second := range Policies() {
			t.Run(first.Name+"_vs_"+second.Name, func(t *testing.T) {
				result := playSeeded(t, first, second, 11, 29)

				require.NotNil(t, result.Winner)
				assert.NotEqual(t, result.Winner.Name, result.Loser.Name)
				assert.GreaterOrEqual(t, result.Turns, 17)
				assert.LessOrEqual(t, result.Turns, mb.BoardSize*mb.BoardSize)
				assert.Greater(t, result.WinnerShipCellsLeft, 0)
				assert.False(t, result.Loser.HasShipsLeft())

				seen := make(map[string]bool)
				for _, coord := range result.Winner.Guesses() {
					require.False(t, seen[coord], "repeated %s", coord)
					seen[coord] = true
				}
			})
		}
	}
}

func TestAIGameIsReproducible(t *testing.T) {
	a := playSeeded(t, PolicyLargestGate, PolicySmallestGate, 3, 4)
	b := playSeeded(t, PolicyLargestGate, PolicySmallestGate, 3, 4)

	assert.Equal(t, a.Winner.Name, b.Winner.Name)
	assert.Equal(t, a.Turns, b.Turns)
	assert.Equal(t, a.Winner.Guesses(), b.Winner.Guesses())
}

type layoutCache struct {
	placements map[string]mb.Placement
}

func (lc *layoutCache) Load(ctx context.Context) (map[string]mb.Placement, error) {
	return lc.placements, nil
}

func (lc *layoutCache) Save(ctx context.Context, placements map[string]mb.Placement) error {
	lc.placements = placements
	return nil
}
