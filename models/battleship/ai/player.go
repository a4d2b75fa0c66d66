package ai

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

// Player is a computer-controlled contender driven by an Engine.
type Player struct {
	player *mb.Player
	engine *Engine
	policy Policy
	opts   []Option
	rng    *rand.Rand
	placer mb.Placer
	log    zerolog.Logger
}

var _ mb.Contender = (*Player)(nil)

func NewPlayer(name string, boardSize int, policy Policy, opts ...Option) *Player {
	o := buildOptions(opts)
	// The engine shares the player's source so a seeded game replays exactly.
	opts = append(opts, WithRand(o.rng))

	placer := o.placer
	if placer == nil {
		placer = mb.NewRandomPlacer(o.rng)
	}

	return &Player{
		player: mb.NewPlayer(name, boardSize),
		engine: NewEngine(boardSize, mb.FleetSizes(mb.StandardFleet), policy, opts...),
		policy: policy,
		opts:   opts,
		rng:    o.rng,
		placer: placer,
		log:    o.log.With().Str("player", name).Logger(),
	}
}

// NewNumberedPlayer names the player "AI-<n>".
func NewNumberedPlayer(n, boardSize int, policy Policy, opts ...Option) *Player {
	return NewPlayer(fmt.Sprintf("AI-%d", n), boardSize, policy, opts...)
}

func (p *Player) Player() *mb.Player {
	return p.player
}

func (p *Player) Engine() *Engine {
	return p.engine
}

// PlaceShips lays out the fleet and resets the engine for an opponent
// carrying the same fleet.
func (p *Player) PlaceShips(fleet []mb.ShipSpec) error {
	boardSize := p.player.Board.Size()
	p.engine = NewEngine(boardSize, mb.FleetSizes(fleet), p.policy, p.opts...)

	if _, err := mb.PlaceFleet(p.player, fleet, p.placer, mb.DefaultMaxPlacementAttempts); err != nil {
		return err
	}
	p.log.Debug().Str("policy", p.policy.Name).Msg("fleet placed")
	return nil
}

func (p *Player) NextGuess() (string, error) {
	for {
		coord, err := p.engine.NextGuess()
		if err != nil {
			return "", err
		}
		// The engine tracks its own guesses, this only guards guesses the
		// player made outside of it.
		if !p.player.HasGuessed(coord) {
			return coord, nil
		}
	}
}

func (p *Player) RecordResponse(coord string, outcome mb.Outcome, opponentView mb.View) {
	p.engine.RecordResponse(coord, outcome, opponentView)
	p.log.Trace().
		Str("coord", coord).
		Str("outcome", outcome.String()).
		Str("state", p.engine.State().String()).
		Strs("queue", p.engine.Queue()).
		Msg("response recorded")
}
