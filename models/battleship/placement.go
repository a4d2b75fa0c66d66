package battleship

import (
	"context"
	"math/rand"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

const DefaultMaxPlacementAttempts = 1000

// Placement is the anchor (top-most or left-most cell) and orientation of a ship.
type Placement struct {
	Orientation Orientation `json:"orientation"`
	Anchor      string      `json:"anchor"`
}

// PlacementCache remembers the last fleet layout by ship name.
type PlacementCache interface {
	Load(ctx context.Context) (map[string]Placement, error)
	Save(ctx context.Context, placements map[string]Placement) error
}

// Placer chooses where a ship should go. It may be asked again for the same
// ship when the previous answer was rejected.
type Placer interface {
	Place(spec ShipSpec, board *Board) (Placement, error)
}

// GenShipCoords expands an anchor into the ship's cells. Vertical ships run
// down from the anchor and horizontal ships run right.
func GenShipCoords(anchor string, size int, orientation Orientation, boardSize int) ([]Offset, error) {
	start, err := ToOffset(anchor)
	if err != nil {
		return nil, err
	}

	step := Offset{Col: 1}
	if orientation == OrientationVertical {
		step = Offset{Row: 1}
	}

	coords := make([]Offset, size)
	cur := start
	for i := 0; i < size; i++ {
		coords[i] = cur
		cur = cur.Add(step)
	}

	if size == 0 || !coords[0].InBounds(boardSize) || !coords[size-1].InBounds(boardSize) {
		return nil, cerr.ErrCoordOutOfBound(anchor, boardSize)
	}
	return coords, nil
}

// PlaceFleet places every ship of fleet on the player's board, asking placer
// again whenever a placement is off-board or collides. The chosen placements
// are returned keyed by ship name.
func PlaceFleet(p *Player, fleet []ShipSpec, placer Placer, maxAttempts int) (map[string]Placement, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxPlacementAttempts
	}

	placements := make(map[string]Placement, len(fleet))
	for _, spec := range fleet {
		placed := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			placement, err := placer.Place(spec, p.Board)
			if err != nil {
				return placements, err
			}

			coords, err := GenShipCoords(placement.Anchor, spec.Size, placement.Orientation, p.Board.Size())
			if err != nil {
				continue
			}
			if !p.Board.VerifyEmpty(coords) {
				continue
			}

			ship := NewShip(spec.Name, spec.Size, coords, placement.Orientation)
			if err := p.Board.PlaceShip(ship); err != nil {
				continue
			}
			p.AddShip(ship)
			placements[spec.Name] = placement
			placed = true
			break
		}

		if !placed {
			return placements, cerr.ErrPlacementAttemptsExceeded(spec.Name, maxAttempts)
		}
	}
	return placements, nil
}

type RandomPlacer struct {
	rng *rand.Rand
}

func NewRandomPlacer(rng *rand.Rand) *RandomPlacer {
	return &RandomPlacer{rng: rng}
}

func (rp *RandomPlacer) Place(spec ShipSpec, board *Board) (Placement, error) {
	orientation := OrientationHorizontal
	if rp.rng.Intn(2) == 1 {
		orientation = OrientationVertical
	}

	row := rp.rng.Intn(board.Size())
	col := rp.rng.Intn(board.Size())
	return Placement{Orientation: orientation, Anchor: ToCoord(row, col)}, nil
}

// CachedPlacer replays placements previously saved to a PlacementCache.
type CachedPlacer struct {
	placements map[string]Placement
	served     map[string]bool
}

func NewCachedPlacer(ctx context.Context, cache PlacementCache) (*CachedPlacer, error) {
	placements, err := cache.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &CachedPlacer{placements: placements, served: make(map[string]bool)}, nil
}

// Place returns the cached placement. A cached layout is fixed, so a second
// request for the same ship means the layout does not fit this board.
func (cp *CachedPlacer) Place(spec ShipSpec, board *Board) (Placement, error) {
	placement, prs := cp.placements[spec.Name]
	if !prs {
		return Placement{}, cerr.ErrPlacementNotCached(spec.Name)
	}
	if cp.served[spec.Name] {
		return Placement{}, cerr.ErrShipCollision(spec.Name)
	}
	cp.served[spec.Name] = true
	return placement, nil
}
