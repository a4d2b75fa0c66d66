package battleship

import (
	"errors"
	"strings"
	"testing"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPlace(t *testing.T, b *Board, name, anchor string, size int, orientation Orientation) *Ship {
	t.Helper()
	coords, err := GenShipCoords(anchor, size, orientation, b.Size())
	require.NoError(t, err)
	ship := NewShip(name, size, coords, orientation)
	require.NoError(t, b.PlaceShip(ship))
	return ship
}

func TestPlaceShip(t *testing.T) {
	b := NewBoard(BoardSize)
	cruiser := mustPlace(t, b, "Cruiser", "B3", 3, OrientationHorizontal)

	for _, coord := range []string{"B3", "C3", "D3"} {
		off, _ := ToOffset(coord)
		assert.Same(t, cruiser, b.Cell(off).Ship(), coord)
	}

	t.Run("collision leaves the board untouched", func(t *testing.T) {
		coords, err := GenShipCoords("C1", 4, OrientationVertical, BoardSize)
		require.NoError(t, err)
		err = b.PlaceShip(NewShip("Battleship", 4, coords, OrientationVertical))
		require.Error(t, err)
		assert.True(t, errors.Is(err, cerr.ErrPlacement))

		off, _ := ToOffset("C1")
		assert.Nil(t, b.Cell(off).Ship())
		assert.Len(t, b.Ships(), 1)
	})

	t.Run("off board", func(t *testing.T) {
		coords := []Offset{{Row: 9, Col: 8}, {Row: 9, Col: 9}, {Row: 9, Col: 10}}
		err := b.PlaceShip(NewShip("Submarine", 3, coords, OrientationHorizontal))
		require.Error(t, err)
		off := Offset{Row: 9, Col: 8}
		assert.Nil(t, b.Cell(off).Ship())
	})
}

func TestGuessOutcomes(t *testing.T) {
	b := NewBoard(BoardSize)
	mustPlace(t, b, "Patrol Boat", "A1", 2, OrientationVertical)

	tests := []struct {
		coord    string
		expected Outcome
		ship     string
	}{
		{coord: "J10", expected: OutcomeMiss},
		{coord: "A1", expected: OutcomeHit, ship: "Patrol Boat"},
		{coord: "a2", expected: OutcomeSunk, ship: "Patrol Boat"},
	}

	for _, test := range tests {
		t.Run(test.coord, func(t *testing.T) {
			resp, err := b.Guess(test.coord)
			require.NoError(t, err)
			assert.Equal(t, test.expected, resp.Outcome)
			assert.Equal(t, test.ship, resp.ShipName)
		})
	}

	assert.Equal(t, 0, b.ShipsLeft())

	_, err := b.Guess("K1")
	assert.True(t, errors.Is(err, cerr.ErrIllegalCoord))
}

func TestResponseString(t *testing.T) {
	assert.Equal(t, "Guess [A1]: You Missed!", Response{Coord: "A1"}.String())
	assert.Equal(t, "Guess [A1]: You Hit!!", Response{Coord: "A1", Outcome: OutcomeHit}.String())
	assert.Equal(t, "Guess [A1]: You SUNK my Cruiser", Response{Coord: "A1", Outcome: OutcomeSunk, ShipName: "Cruiser"}.String())
}

func TestViews(t *testing.T) {
	b := NewBoard(BoardSize)
	mustPlace(t, b, "Cruiser", "B3", 3, OrientationHorizontal)
	mustPlace(t, b, "Patrol Boat", "H5", 2, OrientationVertical)

	_, err := b.Guess("C3")
	require.NoError(t, err)
	_, err = b.Guess("A1")
	require.NoError(t, err)

	player := b.PlayerGrid()
	opponent := b.OpponentGrid()

	tests := []struct {
		coord    string
		player   Symbol
		opponent Symbol
	}{
		{coord: "A1", player: SymbolMiss, opponent: SymbolMiss},
		{coord: "B3", player: SymbolHorizontalShip, opponent: SymbolEmpty},
		{coord: "C3", player: SymbolHit, opponent: SymbolHit},
		{coord: "H5", player: SymbolVerticalShip, opponent: SymbolEmpty},
		{coord: "J10", player: SymbolEmpty, opponent: SymbolEmpty},
	}
	for _, test := range tests {
		t.Run(test.coord, func(t *testing.T) {
			off, _ := ToOffset(test.coord)
			assert.Equal(t, test.player, player.At(off))
			assert.Equal(t, test.opponent, opponent.At(off))
		})
	}

	t.Run("sunk overrides everything", func(t *testing.T) {
		for _, coord := range []string{"B3", "D3"} {
			_, err := b.Guess(coord)
			require.NoError(t, err)
		}
		sunk := b.OpponentGrid().Find(SymbolSunk)
		assert.Equal(t, []Offset{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}}, sunk)
		assert.Equal(t, sunk, b.PlayerGrid().Find(SymbolSunk))
	})

	assert.Equal(t, 2, b.ShipCellsLeft())
}

func TestViewRender(t *testing.T) {
	b := NewBoard(3)
	mustPlace(t, b, "Patrol Boat", "A1", 2, OrientationHorizontal)

	lines := b.PlayerView()
	require.Len(t, lines, 5)
	assert.Equal(t, "   A B C", lines[0])
	assert.Equal(t, " 1 - - O", lines[1])
	assert.Equal(t, " 2 O O O", lines[2])
	assert.Equal(t, "", lines[4])

	assert.Equal(t, " 1 O O O", b.OpponentView()[1])
	assert.True(t, strings.HasPrefix(BoardHeading(BoardSize), "   A B"))
}

func TestNewlySunk(t *testing.T) {
	prev := NewView(4)
	next := prev.Clone()
	next[1][0], next[1][1], next[1][2] = SymbolSunk, SymbolSunk, SymbolSunk

	assert.Len(t, next.NewlySunk(prev), 3)
	assert.Empty(t, next.NewlySunk(next))
	assert.Nil(t, next.NewlySunk(nil))
	assert.Equal(t, SymbolEmpty, prev[1][0], "clone must not alias")
}
