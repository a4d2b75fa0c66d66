package battleship

import (
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

// Contender is anything that can take part in a game: a human at a console
// or one of the AI strategies.
type Contender interface {
	Player() *Player
	PlaceShips(fleet []ShipSpec) error
	NextGuess() (string, error)
	RecordResponse(coord string, outcome Outcome, opponentView View)
}

type Player struct {
	Name    string
	Board   *Board
	Ships   []*Ship
	guesses []string
	guessed map[string]struct{}
}

func NewPlayer(name string, boardSize int) *Player {
	return &Player{
		Name:    name,
		Board:   NewBoard(boardSize),
		guessed: make(map[string]struct{}),
	}
}

func (p *Player) AddShip(ship *Ship) {
	p.Ships = append(p.Ships, ship)
}

// HasShipsLeft reports whether any of the player's ships is still afloat.
func (p *Player) HasShipsLeft() bool {
	for _, ship := range p.Ships {
		if !ship.IsSunk() {
			return true
		}
	}
	return false
}

func (p *Player) Guesses() []string {
	return append([]string(nil), p.guesses...)
}

func (p *Player) HasGuessed(coord string) bool {
	off, err := ToOffset(NormalizeCoord(coord))
	if err != nil {
		return false
	}
	_, prs := p.guessed[off.Coord()]
	return prs
}

// ValidateGuess checks that coord is on the board and has not been guessed.
func (p *Player) ValidateGuess(coord string) error {
	coord = NormalizeCoord(coord)
	if !IsLegalCoord(coord, p.Board.Size()) {
		return cerr.ErrCoordOutOfBound(coord, p.Board.Size())
	}
	if p.HasGuessed(coord) {
		return cerr.ErrGuessAlreadyMade(coord)
	}
	return nil
}

// RecordGuess validates coord and appends its canonical form ("a04" -> "A4")
// to the guess history.
func (p *Player) RecordGuess(coord string) (string, error) {
	if err := p.ValidateGuess(coord); err != nil {
		return "", err
	}

	off, _ := ToOffset(NormalizeCoord(coord))
	canonical := off.Coord()
	p.guesses = append(p.guesses, canonical)
	p.guessed[canonical] = struct{}{}
	return canonical, nil
}
