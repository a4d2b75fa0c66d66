package battleship

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOffset(t *testing.T) {
	tests := []struct {
		name     string
		coord    string
		expected Offset
		wantErr  bool
	}{
		{name: "top left", coord: "A1", expected: Offset{Row: 0, Col: 0}},
		{name: "bottom right", coord: "J10", expected: Offset{Row: 9, Col: 9}},
		{name: "letter is the column", coord: "D4", expected: Offset{Row: 3, Col: 3}},
		{name: "lower case", coord: "c7", expected: Offset{Row: 6, Col: 2}},
		{name: "too short", coord: "A", wantErr: true},
		{name: "no letter", coord: "44", wantErr: true},
		{name: "no number", coord: "AB", wantErr: true},
		{name: "empty", coord: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			off, err := ToOffset(test.coord)
			if test.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, cerr.ErrIllegalCoord))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, off)
		})
	}
}

func TestToCoordRoundTrip(t *testing.T) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			off, err := ToOffset(ToCoord(r, c))
			require.NoError(t, err)
			assert.Equal(t, Offset{Row: r, Col: c}, off)
		}
	}
	assert.Equal(t, "A10", ToCoord(9, 0))
}

func TestIsLegalCoord(t *testing.T) {
	tests := []struct {
		coord    string
		expected bool
	}{
		{"A1", true},
		{"J10", true},
		{"K1", false},
		{"A11", false},
		{"A0", false},
		{"Z99", false},
		{"hello", false},
		{"", false},
	}

	for _, test := range tests {
		t.Run(test.coord, func(t *testing.T) {
			assert.Equal(t, test.expected, IsLegalCoord(test.coord, BoardSize))
		})
	}
}

func TestNormalizeCoord(t *testing.T) {
	assert.Equal(t, "D4", NormalizeCoord("  d4 "))
}

func TestOffsetArithmetic(t *testing.T) {
	a := NewOffset(3, 4)
	b := NewOffset(1, -1)
	assert.Equal(t, Offset{Row: 4, Col: 3}, a.Add(b))
	assert.Equal(t, Offset{Row: 2, Col: 5}, a.Sub(b))
	assert.True(t, a.InBounds(5))
	assert.False(t, a.InBounds(4))
	assert.Equal(t, "E4", a.Coord())
}
