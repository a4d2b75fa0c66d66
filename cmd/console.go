package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

const (
	placementManual = "manual"
	placementRandom = "random"
	placementReplay = "replay"
)

// consolePlayer is a human reading prompts from in and answering on out.
type consolePlayer struct {
	player   *mb.Player
	in       *bufio.Reader
	out      io.Writer
	cache    mb.PlacementCache
	rng      *rand.Rand
	log      zerolog.Logger
	mode     string
	lastView mb.View
}

var _ mb.Contender = (*consolePlayer)(nil)

func newConsolePlayer(name string, boardSize int, in *bufio.Reader, out io.Writer, cache mb.PlacementCache, rng *rand.Rand, log zerolog.Logger) *consolePlayer {
	return &consolePlayer{
		player: mb.NewPlayer(name, boardSize),
		in:     in,
		out:    out,
		cache:  cache,
		rng:    rng,
		log:    log.With().Str("player", name).Logger(),
	}
}

func (cp *consolePlayer) Player() *mb.Player {
	return cp.player
}

func (cp *consolePlayer) setPlacementMode(mode string) error {
	switch mode = strings.ToLower(strings.TrimSpace(mode)); mode {
	case "m", placementManual:
		cp.mode = placementManual
	case "r", placementRandom:
		cp.mode = placementRandom
	case "l", placementReplay:
		cp.mode = placementReplay
	default:
		return fmt.Errorf("unknown placement mode: %q", mode)
	}
	return nil
}

func (cp *consolePlayer) readLine(prompt string) (string, error) {
	fmt.Fprint(cp.out, prompt)
	line, err := cp.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (cp *consolePlayer) PlaceShips(fleet []mb.ShipSpec) error {
	for cp.mode == "" {
		answer, err := cp.readLine("Place ships manually (m), randomly (r) or replay the last layout (l)? ")
		if err != nil {
			return err
		}
		if err := cp.setPlacementMode(answer); err != nil {
			fmt.Fprintln(cp.out, err)
		}
	}

	ctx := context.Background()
	var (
		placements map[string]mb.Placement
		err        error
	)
	switch cp.mode {
	case placementReplay:
		placements, err = cp.replay(ctx, fleet)
	case placementManual:
		placements, err = mb.PlaceFleet(cp.player, fleet, &promptPlacer{cp: cp}, mb.DefaultMaxPlacementAttempts)
	default:
		placements, err = cp.placeRandomly(fleet)
	}
	if err != nil {
		return err
	}

	if err := cp.cache.Save(ctx, placements); err != nil {
		cp.log.Warn().Err(err).Msg("failed to save fleet layout")
	}

	fmt.Fprintln(cp.out, "Your fleet:")
	cp.printLines(cp.player.Board.PlayerView())
	return nil
}

func (cp *consolePlayer) placeRandomly(fleet []mb.ShipSpec) (map[string]mb.Placement, error) {
	return mb.PlaceFleet(cp.player, fleet, mb.NewRandomPlacer(cp.rng), mb.DefaultMaxPlacementAttempts)
}

// replay lays out the last saved fleet, falling back to a random layout
// when nothing usable is cached.
func (cp *consolePlayer) replay(ctx context.Context, fleet []mb.ShipSpec) (map[string]mb.Placement, error) {
	placer, err := mb.NewCachedPlacer(ctx, cp.cache)
	if err == nil {
		var placements map[string]mb.Placement
		placements, err = mb.PlaceFleet(cp.player, fleet, placer, mb.DefaultMaxPlacementAttempts)
		if err == nil {
			return placements, nil
		}
	}

	cp.log.Warn().Err(err).Msg("cannot replay the last layout, placing randomly")
	fmt.Fprintln(cp.out, "The last layout cannot be replayed, placing your ships randomly.")

	cp.player = mb.NewPlayer(cp.player.Name, cp.player.Board.Size())
	return cp.placeRandomly(fleet)
}

func (cp *consolePlayer) NextGuess() (string, error) {
	view := cp.lastView
	if view == nil {
		view = mb.NewView(cp.player.Board.Size())
	}

	fmt.Fprintln(cp.out, "Your guesses:")
	cp.printLines(view.Render())
	fmt.Fprintln(cp.out, "Your fleet:")
	cp.printLines(cp.player.Board.PlayerView())

	for {
		answer, err := cp.readLine("Enter a guess: ")
		if err != nil {
			return "", err
		}

		coord := mb.NormalizeCoord(answer)
		if err := cp.player.ValidateGuess(coord); err != nil {
			fmt.Fprintln(cp.out, err)
			continue
		}
		return coord, nil
	}
}

func (cp *consolePlayer) RecordResponse(coord string, outcome mb.Outcome, opponentView mb.View) {
	cp.lastView = opponentView.Clone()
}

func (cp *consolePlayer) printLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(cp.out, line)
	}
}

// promptPlacer asks the human for each ship until the answer fits the board.
type promptPlacer struct {
	cp *consolePlayer
}

func (pp *promptPlacer) Place(spec mb.ShipSpec, board *mb.Board) (mb.Placement, error) {
	for {
		pp.cp.printLines(board.PlayerView())
		answer, err := pp.cp.readLine(fmt.Sprintf("Place your %s (size %d) as <v|h> <anchor>, e.g. \"h A1\": ", spec.Name, spec.Size))
		if err != nil {
			return mb.Placement{}, err
		}

		placement, err := parsePlacement(answer)
		if err != nil {
			fmt.Fprintln(pp.cp.out, err)
			continue
		}

		coords, err := mb.GenShipCoords(placement.Anchor, spec.Size, placement.Orientation, board.Size())
		if err != nil {
			fmt.Fprintln(pp.cp.out, cerr.ErrShipOffBoard(spec.Name))
			continue
		}
		if !board.VerifyEmpty(coords) {
			fmt.Fprintln(pp.cp.out, cerr.ErrShipCollision(spec.Name))
			continue
		}
		return placement, nil
	}
}

// parsePlacement reads "<orientation> <anchor>", e.g. "v c3".
func parsePlacement(input string) (mb.Placement, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return mb.Placement{}, fmt.Errorf("expected orientation and anchor, got %q", input)
	}

	orientation, err := mb.ParseOrientation(fields[0])
	if err != nil {
		return mb.Placement{}, err
	}

	anchor := mb.NormalizeCoord(fields[1])
	if _, err := mb.ToOffset(anchor); err != nil {
		return mb.Placement{}, err
	}
	return mb.Placement{Orientation: orientation, Anchor: anchor}, nil
}
