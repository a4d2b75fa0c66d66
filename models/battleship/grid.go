package battleship

import (
	"fmt"
	"strings"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

const BoardSize int = 10

type CellState uint8

const (
	CellStateEmpty CellState = iota
	CellStateMiss
	CellStateHit
	CellStateSunk
)

type Cell struct {
	ship  *Ship
	state CellState
}

func (c *Cell) Ship() *Ship {
	return c.ship
}

func (c *Cell) State() CellState {
	if c.ship != nil && c.ship.IsSunk() {
		return CellStateSunk
	}
	return c.state
}

func (c *Cell) playerSymbol(off Offset) Symbol {
	if c.ship != nil {
		return c.ship.playerSymbol(off)
	}
	return c.unownedSymbol()
}

func (c *Cell) opponentSymbol(off Offset) Symbol {
	if c.ship != nil {
		return c.ship.opponentSymbol(off)
	}
	return c.unownedSymbol()
}

func (c *Cell) unownedSymbol() Symbol {
	if c.state == CellStateMiss {
		return SymbolMiss
	}
	return SymbolEmpty
}

// Response is what the guessing player learns about a single guess.
type Response struct {
	Coord    string
	Outcome  Outcome
	ShipName string
}

func (r Response) String() string {
	switch r.Outcome {
	case OutcomeHit:
		return fmt.Sprintf("Guess [%s]: You Hit!!", r.Coord)
	case OutcomeSunk:
		return fmt.Sprintf("Guess [%s]: You SUNK my %s", r.Coord, r.ShipName)
	default:
		return fmt.Sprintf("Guess [%s]: You Missed!", r.Coord)
	}
}

// Board is a square grid of cells. Each cell belongs to at most one ship.
type Board struct {
	size  int
	cells [][]Cell
	ships []*Ship
}

func NewBoard(size int) *Board {
	cells := make([][]Cell, size)
	for i := 0; i < size; i++ {
		cells[i] = make([]Cell, size)
	}
	return &Board{size: size, cells: cells}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Cell(off Offset) *Cell {
	return &b.cells[off.Row][off.Col]
}

// VerifyEmpty reports whether none of coords is owned by a ship.
// Off-board coordinates are ignored; GenShipCoords rejects those earlier.
func (b *Board) VerifyEmpty(coords []Offset) bool {
	for _, off := range coords {
		if !off.InBounds(b.size) {
			continue
		}
		if b.cells[off.Row][off.Col].ship != nil {
			return false
		}
	}
	return true
}

// PlaceShip assigns every coordinate of ship to it. Nothing is written when
// any coordinate is off the board or already taken.
func (b *Board) PlaceShip(ship *Ship) error {
	coords := ship.Coords()
	for _, off := range coords {
		if !off.InBounds(b.size) {
			return cerr.ErrShipOffBoard(ship.Name)
		}
	}
	if !b.VerifyEmpty(coords) {
		return cerr.ErrShipCollision(ship.Name)
	}

	for _, off := range coords {
		b.cells[off.Row][off.Col].ship = ship
	}
	b.ships = append(b.ships, ship)
	return nil
}

func (b *Board) Ships() []*Ship {
	return append([]*Ship(nil), b.ships...)
}

// ShipsLeft counts the ships on this board that are not yet sunk.
func (b *Board) ShipsLeft() int {
	left := 0
	for _, ship := range b.ships {
		if !ship.IsSunk() {
			left++
		}
	}
	return left
}

// Guess applies a guess at coord and reports the outcome.
func (b *Board) Guess(coord string) (Response, error) {
	off, err := ToOffset(coord)
	if err != nil {
		return Response{}, err
	}
	if !off.InBounds(b.size) {
		return Response{}, cerr.ErrCoordOutOfBound(coord, b.size)
	}

	resp := Response{Coord: off.Coord(), Outcome: OutcomeMiss}
	cell := &b.cells[off.Row][off.Col]
	if cell.ship == nil {
		cell.state = CellStateMiss
		return resp, nil
	}

	outcome, _ := cell.ship.Hit(off)
	cell.state = CellStateHit
	resp.Outcome = outcome
	resp.ShipName = cell.ship.Name
	return resp, nil
}

// PlayerGrid exposes ship bodies for unhit cells.
func (b *Board) PlayerGrid() View {
	view := NewView(b.size)
	for r := range b.cells {
		for c := range b.cells[r] {
			view[r][c] = b.cells[r][c].playerSymbol(Offset{Row: r, Col: c})
		}
	}
	return view
}

// OpponentGrid never shows an unhit ship cell.
func (b *Board) OpponentGrid() View {
	view := NewView(b.size)
	for r := range b.cells {
		for c := range b.cells[r] {
			view[r][c] = b.cells[r][c].opponentSymbol(Offset{Row: r, Col: c})
		}
	}
	return view
}

func (b *Board) PlayerView() []string {
	return b.PlayerGrid().Render()
}

func (b *Board) OpponentView() []string {
	return b.OpponentGrid().Render()
}

// Render prints the view under a column heading, one numbered line per row,
// followed by an empty line.
func (v View) Render() []string {
	lines := make([]string, 0, len(v)+2)
	lines = append(lines, BoardHeading(len(v)))

	for r, row := range v {
		symbols := make([]string, len(row))
		for c, s := range row {
			symbols[c] = s.String()
		}
		lines = append(lines, fmt.Sprintf("%2d %s", r+1, strings.Join(symbols, " ")))
	}
	return append(lines, "")
}

// BoardHeading is the column header line: "   A B C ...".
func BoardHeading(size int) string {
	letters := make([]string, size)
	for i := 0; i < size; i++ {
		letters[i] = string(rune('A' + i))
	}
	return "   " + strings.Join(letters, " ")
}

// ShipCellsLeft counts unhit ship cells, the margin a loser falls behind by.
func (b *Board) ShipCellsLeft() int {
	left := 0
	for _, row := range b.PlayerGrid() {
		for _, s := range row {
			if s == SymbolVerticalShip || s == SymbolHorizontalShip {
				left++
			}
		}
	}
	return left
}
