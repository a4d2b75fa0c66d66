package battleship

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

type Phase uint8

const (
	PhasePlacement Phase = iota
	PhasePlay
	PhaseGameOver
)

func (ph Phase) String() string {
	switch ph {
	case PhasePlay:
		return "play"
	case PhaseGameOver:
		return "game over"
	default:
		return "placement"
	}
}

const DefaultMaxGuessAttempts = 100

// Turn describes one completed guess.
type Turn struct {
	Number   int
	Attacker *Player
	Defender *Player
	Response Response
	GameOver bool
}

type Result struct {
	GameUuid string
	Winner   *Player
	Loser    *Player
	// Turns counts full rounds, so a first-player win on its 17th guess is 17.
	Turns int
	// WinnerShipCellsLeft is the margin the loser fell behind by.
	WinnerShipCellsLeft int
}

type TurnObserver func(turn Turn)

type Game struct {
	uuid   string
	phase  Phase
	fleet  []ShipSpec
	log    zerolog.Logger
	notify TurnObserver

	contenders       [2]Contender
	turn             int
	guesses          int
	maxGuessAttempts int
	winner           int
}

type GameOption func(*Game) error

func WithFleet(fleet []ShipSpec) GameOption {
	return func(g *Game) error {
		g.fleet = fleet
		return nil
	}
}

func WithLogger(log zerolog.Logger) GameOption {
	return func(g *Game) error {
		g.log = log
		return nil
	}
}

func WithTurnObserver(observer TurnObserver) GameOption {
	return func(g *Game) error {
		g.notify = observer
		return nil
	}
}

func WithMaxGuessAttempts(attempts int) GameOption {
	return func(g *Game) error {
		g.maxGuessAttempts = attempts
		return nil
	}
}

func WithGameUuid(gameUuid string) GameOption {
	return func(g *Game) error {
		g.uuid = gameUuid
		return nil
	}
}

// NewGame sets up a game where first moves first.
func NewGame(first, second Contender, opts ...GameOption) (*Game, error) {
	g := &Game{
		uuid:             uuid.NewString()[:6],
		phase:            PhasePlacement,
		fleet:            StandardFleet,
		log:              zerolog.Nop(),
		contenders:       [2]Contender{first, second},
		maxGuessAttempts: DefaultMaxGuessAttempts,
		winner:           -1,
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	g.log = g.log.With().Str("game", g.uuid).Logger()
	return g, nil
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Phase() Phase {
	return g.phase
}

// GetPlayers returns the players in turn order.
func (g *Game) GetPlayers() []*Player {
	return []*Player{g.contenders[0].Player(), g.contenders[1].Player()}
}

// Setup asks both contenders to place their fleets.
func (g *Game) Setup() error {
	if g.phase != PhasePlacement {
		return cerr.ErrInvalidPhase(PhasePlacement.String(), g.phase.String())
	}

	for _, c := range g.contenders {
		if err := c.PlaceShips(g.fleet); err != nil {
			return err
		}
		g.log.Debug().Str("player", c.Player().Name).Int("ships", len(c.Player().Ships)).Msg("fleet placed")
	}

	g.phase = PhasePlay
	return nil
}

// TakeTurn lets the acting contender guess once and hands the outcome back.
func (g *Game) TakeTurn() (Turn, error) {
	if g.phase != PhasePlay {
		return Turn{}, cerr.ErrInvalidPhase(PhasePlay.String(), g.phase.String())
	}

	attacker := g.contenders[g.turn]
	defender := g.contenders[1-g.turn]

	coord, err := g.acceptGuess(attacker)
	if err != nil {
		return Turn{}, err
	}

	resp, err := defender.Player().Board.Guess(coord)
	if err != nil {
		return Turn{}, err
	}
	attacker.RecordResponse(coord, resp.Outcome, defender.Player().Board.OpponentGrid())

	g.guesses++
	turn := Turn{
		Number:   (g.guesses + 1) / 2,
		Attacker: attacker.Player(),
		Defender: defender.Player(),
		Response: resp,
	}

	g.log.Debug().
		Str("player", attacker.Player().Name).
		Str("coord", coord).
		Str("outcome", resp.Outcome.String()).
		Msg("turn taken")

	if !defender.Player().HasShipsLeft() {
		g.phase = PhaseGameOver
		g.winner = g.turn
		turn.GameOver = true
		g.log.Info().Str("winner", attacker.Player().Name).Int("turns", turn.Number).Msg("game over")
	} else {
		g.turn = 1 - g.turn
	}

	if g.notify != nil {
		g.notify(turn)
	}
	return turn, nil
}

// acceptGuess keeps asking the contender until it names a legal, fresh coordinate.
func (g *Game) acceptGuess(c Contender) (string, error) {
	for attempt := 0; attempt < g.maxGuessAttempts; attempt++ {
		coord, err := c.NextGuess()
		if err != nil {
			return "", err
		}

		canonical, err := c.Player().RecordGuess(coord)
		if err != nil {
			g.log.Debug().Err(err).Str("player", c.Player().Name).Msg("guess rejected")
			continue
		}
		return canonical, nil
	}
	return "", cerr.ErrGuessAttemptsExceeded(c.Player().Name, g.maxGuessAttempts)
}

// Play runs the game to completion.
func (g *Game) Play() (Result, error) {
	if g.phase == PhasePlacement {
		if err := g.Setup(); err != nil {
			return Result{}, err
		}
	}

	var last Turn
	for g.phase == PhasePlay {
		turn, err := g.TakeTurn()
		if err != nil {
			return Result{}, err
		}
		last = turn
	}

	return g.result(last.Number), nil
}

func (g *Game) result(turns int) Result {
	if g.winner < 0 {
		return Result{GameUuid: g.uuid, Turns: turns}
	}

	winner := g.contenders[g.winner].Player()
	return Result{
		GameUuid:            g.uuid,
		Winner:              winner,
		Loser:               g.contenders[1-g.winner].Player(),
		Turns:               turns,
		WinnerShipCellsLeft: winner.Board.ShipCellsLeft(),
	}
}

// Winner is nil until the game is over.
func (g *Game) Winner() *Player {
	if g.winner < 0 {
		return nil
	}
	return g.contenders[g.winner].Player()
}
