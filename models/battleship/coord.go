package battleship

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

// Offset is a zero-based (row, column) position on a board.
type Offset struct {
	Row int
	Col int
}

func NewOffset(row, col int) Offset {
	return Offset{Row: row, Col: col}
}

func (o Offset) Add(d Offset) Offset {
	return Offset{Row: o.Row + d.Row, Col: o.Col + d.Col}
}

func (o Offset) Sub(d Offset) Offset {
	return Offset{Row: o.Row - d.Row, Col: o.Col - d.Col}
}

func (o Offset) InBounds(boardSize int) bool {
	return o.Row >= 0 && o.Row < boardSize && o.Col >= 0 && o.Col < boardSize
}

func (o Offset) Coord() string {
	return ToCoord(o.Row, o.Col)
}

// ToCoord turns a row and column offset into a board coordinate like "A10".
func ToCoord(row, col int) string {
	return string(rune('A'+col)) + strconv.Itoa(row+1)
}

// ToOffset is the inverse of ToCoord. It does not check board bounds.
func ToOffset(coord string) (Offset, error) {
	if len(coord) < 2 {
		return Offset{}, cerr.ErrInvalidCoord(coord)
	}

	letter := strings.ToUpper(coord[:1])[0]
	if letter < 'A' || letter > 'Z' {
		return Offset{}, cerr.ErrInvalidCoord(coord)
	}

	row, err := strconv.Atoi(coord[1:])
	if err != nil {
		return Offset{}, cerr.ErrInvalidCoord(coord)
	}

	return Offset{Row: row - 1, Col: int(letter - 'A')}, nil
}

// IsLegalCoord reports whether coord parses and lies on a board of the given size.
// Malformed input is simply not legal.
func IsLegalCoord(coord string, boardSize int) bool {
	off, err := ToOffset(coord)
	if err != nil {
		return false
	}
	return off.InBounds(boardSize)
}

// NormalizeCoord upper-cases and trims user input ("  d4 " -> "D4").
func NormalizeCoord(coord string) string {
	return strings.ToUpper(strings.TrimSpace(coord))
}
