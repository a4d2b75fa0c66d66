package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// ParseOrientation accepts anything starting with v or h, case-insensitive.
func ParseOrientation(value string) (Orientation, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, cerr.ErrInvalidOrientation(value)
	}

	switch strings.ToLower(value[:1]) {
	case "v":
		return OrientationVertical, nil
	case "h":
		return OrientationHorizontal, nil
	}
	return 0, cerr.ErrInvalidOrientation(value)
}

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "v"
	}
	return "h"
}

func (o Orientation) Symbol() Symbol {
	if o == OrientationVertical {
		return SymbolVerticalShip
	}
	return SymbolHorizontalShip
}

type Outcome uint8

const (
	OutcomeMiss Outcome = iota
	OutcomeHit
	OutcomeSunk
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeSunk:
		return "sunk"
	default:
		return "miss"
	}
}

type Ship struct {
	Name        string
	Size        int
	Orientation Orientation

	coords []Offset
	hits   map[Offset]struct{}
	sunk   bool
}

func NewShip(name string, size int, coords []Offset, orientation Orientation) *Ship {
	return &Ship{
		Name:        name,
		Size:        size,
		Orientation: orientation,
		coords:      append([]Offset(nil), coords...),
		hits:        make(map[Offset]struct{}, size),
	}
}

func (sh *Ship) Coords() []Offset {
	return append([]Offset(nil), sh.coords...)
}

func (sh *Ship) owns(off Offset) bool {
	for _, c := range sh.coords {
		if c == off {
			return true
		}
	}
	return false
}

// Hit records a hit at off. The second return value is false when off is
// not one of the ship's coordinates.
func (sh *Ship) Hit(off Offset) (Outcome, bool) {
	if !sh.owns(off) {
		return OutcomeMiss, false
	}

	sh.hits[off] = struct{}{}
	if len(sh.hits) == sh.Size {
		sh.sunk = true
	}

	if sh.sunk {
		return OutcomeSunk, true
	}
	return OutcomeHit, true
}

func (sh *Ship) IsSunk() bool {
	return sh.sunk
}

func (sh *Ship) Hits() int {
	return len(sh.hits)
}

func (sh *Ship) isHitAt(off Offset) bool {
	_, ok := sh.hits[off]
	return ok
}

func (sh *Ship) playerSymbol(off Offset) Symbol {
	if sh.sunk {
		return SymbolSunk
	}
	if sh.isHitAt(off) {
		return SymbolHit
	}
	return sh.Orientation.Symbol()
}

func (sh *Ship) opponentSymbol(off Offset) Symbol {
	if sh.sunk {
		return SymbolSunk
	}
	if sh.isHitAt(off) {
		return SymbolHit
	}
	return SymbolEmpty
}
