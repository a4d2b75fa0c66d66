// Package ai implements the computer opponent: a targeting engine that
// hunts with a constrained random search and then tracks hits along the
// axis they reveal.
package ai

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

type State uint8

const (
	StateSearching State = iota
	StateTracking
)

func (s State) String() string {
	if s == StateTracking {
		return "tracking"
	}
	return "searching"
}

var (
	dirLeft  = mb.Offset{Row: 0, Col: -1}
	dirUp    = mb.Offset{Row: -1, Col: 0}
	dirRight = mb.Offset{Row: 0, Col: 1}
	dirDown  = mb.Offset{Row: 1, Col: 0}
)

// defaultOrder is the insertion order for neighbours of a hit. Every
// insertion goes to the queue front, so the last direction is tried first.
var defaultOrder = []mb.Offset{dirLeft, dirUp, dirRight, dirDown}

type options struct {
	rng    *rand.Rand
	log    zerolog.Logger
	placer mb.Placer
}

type Option func(*options)

func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func WithPlacer(placer mb.Placer) Option {
	return func(o *options) {
		o.placer = placer
	}
}

func buildOptions(opts []Option) options {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// Engine holds everything one AI player knows about its opponent's board.
// It only ever sees the opponent view handed to RecordResponse.
type Engine struct {
	size   int
	policy Policy
	rng    *rand.Rand
	log    zerolog.Logger

	view      mb.View
	hitRecord []mb.Offset
	queue     []mb.Offset
	remaining []int
	guessed   map[mb.Offset]bool
	lastSunk  int
}

// NewEngine starts an engine for a boardSize board against a fleet with the
// given ship sizes.
func NewEngine(boardSize int, fleetSizes []int, policy Policy, opts ...Option) *Engine {
	o := buildOptions(opts)
	return &Engine{
		size:      boardSize,
		policy:    policy,
		rng:       o.rng,
		log:       o.log,
		view:      mb.NewView(boardSize),
		remaining: append([]int(nil), fleetSizes...),
		guessed:   make(map[mb.Offset]bool, boardSize*boardSize),
	}
}

func (e *Engine) Policy() Policy {
	return e.policy
}

func (e *Engine) State() State {
	if len(e.hitRecord) > 0 || len(e.queue) > 0 {
		return StateTracking
	}
	return StateSearching
}

// NextGuess picks the next coordinate and marks it as guessed.
func (e *Engine) NextGuess() (string, error) {
	off, ok := e.popCandidate()
	if !ok {
		off, ok = e.search()
	}
	if !ok {
		return "", cerr.ErrBoardExhausted(e.size)
	}

	e.guessed[off] = true
	return off.Coord(), nil
}

// unknown reports whether off is on the board, never guessed and still
// Empty in the last revealed view.
func (e *Engine) unknown(off mb.Offset) bool {
	return off.InBounds(e.size) && !e.guessed[off] && e.view.At(off) == mb.SymbolEmpty
}

func (e *Engine) popCandidate() (mb.Offset, bool) {
	for len(e.queue) > 0 {
		off := e.queue[0]
		e.queue = e.queue[1:]
		if e.unknown(off) {
			return off, true
		}
	}
	return mb.Offset{}, false
}

func (e *Engine) unknownCells() []mb.Offset {
	cells := make([]mb.Offset, 0, e.size*e.size)
	for r := 0; r < e.size; r++ {
		for c := 0; c < e.size; c++ {
			off := mb.Offset{Row: r, Col: c}
			if e.unknown(off) {
				cells = append(cells, off)
			}
		}
	}
	return cells
}

func (e *Engine) search() (mb.Offset, bool) {
	cells := e.unknownCells()
	if len(cells) == 0 {
		return mb.Offset{}, false
	}

	if gate := e.policy.gateSize(e.remaining); gate > 0 {
		if off, ok := e.gatedSample(cells, gate); ok {
			return off, true
		}
	}

	if e.policy.Parity {
		if off, ok := e.paritySample(cells); ok {
			return off, true
		}
	}

	return cells[e.rng.Intn(len(cells))], true
}

// roomy reports whether none of the gate cells beyond off along any cardinal
// ray has already been probed. Cells past the board edge do not count.
func (e *Engine) roomy(off mb.Offset, gate int) bool {
	for _, d := range defaultOrder {
		p := off
		for i := 1; i <= gate; i++ {
			p = p.Add(d)
			if p.InBounds(e.size) && e.view.At(p) != mb.SymbolEmpty {
				return false
			}
		}
	}
	return true
}

func (e *Engine) gatedSample(cells []mb.Offset, gate int) (mb.Offset, bool) {
	if e.policy.Probes > 0 {
		for i := 0; i < e.policy.Probes; i++ {
			off := cells[e.rng.Intn(len(cells))]
			if e.roomy(off, gate) {
				return off, true
			}
		}
		return mb.Offset{}, false
	}

	accepted := make([]mb.Offset, 0, len(cells))
	for _, off := range cells {
		if e.roomy(off, gate) {
			accepted = append(accepted, off)
		}
	}
	if len(accepted) == 0 {
		return mb.Offset{}, false
	}

	e.log.Trace().Int("gate", gate).Int("candidates", len(accepted)).Msg("gated search")
	return accepted[e.rng.Intn(len(accepted))], true
}

// paritySample picks among unknown cells of one checkerboard colour. Every
// ship of length two or more covers at least one of them.
func (e *Engine) paritySample(cells []mb.Offset) (mb.Offset, bool) {
	even := make([]mb.Offset, 0, len(cells)/2+1)
	for _, off := range cells {
		if (off.Row+off.Col)%2 == 0 {
			even = append(even, off)
		}
	}
	if len(even) == 0 {
		return mb.Offset{}, false
	}
	return even[e.rng.Intn(len(even))], true
}

// RecordResponse feeds back the outcome of the last guess together with the
// opponent view as it stands after the guess.
func (e *Engine) RecordResponse(coord string, outcome mb.Outcome, view mb.View) {
	prev := e.view
	if view != nil {
		e.view = view.Clone()
	}

	off, err := mb.ToOffset(coord)
	if err != nil || !off.InBounds(e.size) {
		e.log.Warn().Str("coord", coord).Msg("response for a coordinate off the board")
		return
	}
	e.guessed[off] = true

	switch outcome {
	case mb.OutcomeHit:
		e.hitRecord = append(e.hitRecord, off)
		e.enqueueAround(len(e.hitRecord) - 1)

	case mb.OutcomeSunk:
		e.resolveSunk(prev)
	}
}

// enqueueAround pushes the open neighbours of hitRecord[idx] to the queue
// front. When an earlier hit exists, the direction from it is tried first
// and candidates on the shared axis jump ahead of the rest of the queue.
func (e *Engine) enqueueAround(idx int) {
	cur := e.hitRecord[idx]

	order := append([]mb.Offset(nil), defaultOrder...)
	var dir mb.Offset
	hasDir := false
	if idx > 0 {
		dir = cur.Sub(e.hitRecord[idx-1])
		hasDir = true
		for i, d := range order {
			if d == dir {
				order = append(append(order[:i:i], order[i+1:]...), d)
				break
			}
		}
	}

	for _, d := range order {
		n := cur.Add(d)
		if e.unknown(n) && !e.queued(n) {
			e.queue = append([]mb.Offset{n}, e.queue...)
		}
	}

	if !hasDir {
		return
	}
	switch {
	case dir.Row == 0 && dir.Col != 0:
		e.promote(func(o mb.Offset) bool { return o.Row == cur.Row })
	case dir.Col == 0 && dir.Row != 0:
		e.promote(func(o mb.Offset) bool { return o.Col == cur.Col })
	}
}

func (e *Engine) queued(off mb.Offset) bool {
	for _, q := range e.queue {
		if q == off {
			return true
		}
	}
	return false
}

// promote moves matching candidates to the front, keeping relative order.
func (e *Engine) promote(onAxis func(mb.Offset) bool) {
	front := make([]mb.Offset, 0, len(e.queue))
	back := make([]mb.Offset, 0, len(e.queue))
	for _, q := range e.queue {
		if onAxis(q) {
			front = append(front, q)
		} else {
			back = append(back, q)
		}
	}
	e.queue = append(front, back...)
}

func (e *Engine) resolveSunk(prev mb.View) {
	diff := e.view.NewlySunk(prev)
	e.lastSunk = len(diff)
	e.removeRemaining(len(diff))

	sunk := make(map[mb.Offset]bool, len(diff))
	for _, off := range diff {
		sunk[off] = true
	}

	hits := e.hitRecord[:0]
	for _, h := range e.hitRecord {
		if !sunk[h] {
			hits = append(hits, h)
		}
	}
	e.hitRecord = hits

	queue := e.queue[:0]
	for _, q := range e.queue {
		if !touches(q, sunk) {
			queue = append(queue, q)
		}
	}
	e.queue = queue

	e.log.Debug().Int("size", len(diff)).Ints("remaining", e.remaining).Int("openHits", len(e.hitRecord)).Msg("ship sunk")

	if len(e.hitRecord) == 0 {
		e.queue = nil
		return
	}

	// Another ship was hit along the way. Reseed from every open hit so the
	// most recent one ends up at the front.
	for i := range e.hitRecord {
		e.enqueueAround(i)
	}
}

func touches(off mb.Offset, cells map[mb.Offset]bool) bool {
	if cells[off] {
		return true
	}
	for _, d := range defaultOrder {
		if cells[off.Add(d)] {
			return true
		}
	}
	return false
}

func (e *Engine) removeRemaining(size int) {
	for i, s := range e.remaining {
		if s == size {
			e.remaining = append(e.remaining[:i], e.remaining[i+1:]...)
			return
		}
	}
}

// LastSunkSize is the length of the ship sunk by the most recent Sunk response.
func (e *Engine) LastSunkSize() int {
	return e.lastSunk
}

func (e *Engine) Queue() []string {
	return coords(e.queue)
}

func (e *Engine) HitRecord() []string {
	return coords(e.hitRecord)
}

func (e *Engine) Remaining() []int {
	return append([]int(nil), e.remaining...)
}

func (e *Engine) HasGuessed(coord string) bool {
	off, err := mb.ToOffset(coord)
	if err != nil {
		return false
	}
	return e.guessed[off]
}

func coords(offs []mb.Offset) []string {
	out := make([]string, len(offs))
	for i, off := range offs {
		out[i] = off.Coord()
	}
	return out
}
