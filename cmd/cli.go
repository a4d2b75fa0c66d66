package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/saeidalz13/battleship-engine/db/store"
	"github.com/saeidalz13/battleship-engine/internal/config"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
	"github.com/saeidalz13/battleship-engine/models/battleship/ai"
)

const usage = `usage: battleship <command> [flags]

commands:
  play    play against the computer
  watch   watch two computer players
  bench   play many computer games and print statistics`

type Option func(*Cli) error

func WithBoardSize(size int) Option {
	return func(c *Cli) error {
		if size < 1 || size > 26 {
			return fmt.Errorf("board size must be between 1 and 26, got %d", size)
		}
		c.boardSize = size
		return nil
	}
}

func WithAIConfig(cfg config.AIConfig) Option {
	return func(c *Cli) error {
		c.ai = cfg
		return nil
	}
}

func WithBenchGames(games int) Option {
	return func(c *Cli) error {
		c.benchGames = games
		return nil
	}
}

type Cli struct {
	backend    store.Backend
	manager    mb.GameManager
	log        zerolog.Logger
	in         *bufio.Reader
	out        io.Writer
	boardSize  int
	benchGames int
	ai         config.AIConfig
	optErr     error
}

func NewCli(backend store.Backend, log zerolog.Logger, in io.Reader, out io.Writer, opts ...Option) *Cli {
	c := &Cli{
		backend:    backend,
		manager:    mb.NewBattleshipGameManager(),
		log:        log,
		in:         bufio.NewReader(in),
		out:        out,
		boardSize:  mb.BoardSize,
		benchGames: 100,
		ai: config.AIConfig{
			Policy:         ai.PolicyLargestGate.Name,
			OpponentPolicy: ai.PolicySmallestGate.Name,
		},
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			c.optErr = err
			break
		}
	}
	return c
}

func (c *Cli) Run(args []string) error {
	if c.optErr != nil {
		return c.optErr
	}

	command := "play"
	if len(args) > 0 {
		command, args = strings.ToLower(args[0]), args[1:]
	}

	switch command {
	case "play":
		return c.play(args)
	case "watch":
		return c.watch(args)
	case "bench":
		return c.bench(args)
	case "help", "-h", "--help":
		fmt.Fprintln(c.out, usage)
		return nil
	default:
		fmt.Fprintln(c.out, usage)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (c *Cli) seededRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (c *Cli) policy(name string) (ai.Policy, error) {
	policy, err := ai.PolicyByName(name)
	if err != nil {
		return ai.Policy{}, err
	}
	if c.ai.Probes > 0 && policy.Gate != ai.SizeGateNone {
		policy.Probes = c.ai.Probes
	}
	return policy, nil
}

func (c *Cli) newAI(n int, policyName string, rng *rand.Rand) (*ai.Player, error) {
	policy, err := c.policy(policyName)
	if err != nil {
		return nil, err
	}
	return ai.NewNumberedPlayer(n, c.boardSize, policy, ai.WithRand(rng), ai.WithLogger(c.log)), nil
}

func (c *Cli) play(args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.SetOutput(c.out)
	name := fs.String("name", "Player", "your name")
	placement := fs.String("placement", "", "fleet placement: manual, random or replay (asked when empty)")
	policyName := fs.String("policy", c.ai.Policy, "computer targeting policy")
	seed := fs.Int64("seed", c.ai.Seed, "random seed, 0 for time based")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rng := c.seededRand(*seed)
	human := newConsolePlayer(*name, c.boardSize, c.in, c.out, c.backend, rng, c.log)
	if *placement != "" {
		if err := human.setPlacementMode(*placement); err != nil {
			return err
		}
	}

	computer, err := c.newAI(1, *policyName, rng)
	if err != nil {
		return err
	}

	game, err := c.manager.CreateGame(human, computer, mb.WithLogger(c.log), mb.WithTurnObserver(func(turn mb.Turn) {
		fmt.Fprintf(c.out, "%s: %s\n", turn.Attacker.Name, turn.Response)
	}))
	if err != nil {
		return err
	}
	defer c.manager.TerminateGame(game.Uuid())

	fmt.Fprintln(c.out, mb.Legend())
	result, err := game.Play()
	if err != nil {
		return err
	}

	c.printBoards(human.Player(), computer.Player())
	fmt.Fprintf(c.out, "%s won after %d turns with %d ship cells left\n", result.Winner.Name, result.Turns, result.WinnerShipCellsLeft)

	policies := map[string]string{human.Player().Name: "human", computer.Player().Name: computer.Engine().Policy().Name}
	c.record(result, policies)
	return nil
}

func (c *Cli) watch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(c.out)
	policyName := fs.String("policy", c.ai.Policy, "first player's targeting policy")
	opponentName := fs.String("opponent", c.ai.OpponentPolicy, "second player's targeting policy")
	seed := fs.Int64("seed", c.ai.Seed, "random seed, 0 for time based")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rng := c.seededRand(*seed)
	first, err := c.newAI(1, *policyName, rng)
	if err != nil {
		return err
	}
	second, err := c.newAI(2, *opponentName, rng)
	if err != nil {
		return err
	}

	game, err := c.manager.CreateGame(first, second, mb.WithLogger(c.log), mb.WithTurnObserver(func(turn mb.Turn) {
		fmt.Fprintf(c.out, "Turn %d, %s: %s\n", turn.Number, turn.Attacker.Name, turn.Response)
		for _, line := range turn.Defender.Board.OpponentView() {
			fmt.Fprintln(c.out, line)
		}
	}))
	if err != nil {
		return err
	}
	defer c.manager.TerminateGame(game.Uuid())

	fmt.Fprintln(c.out, mb.Legend())
	result, err := game.Play()
	if err != nil {
		return err
	}

	c.printBoards(first.Player(), second.Player())
	fmt.Fprintf(c.out, "%s won after %d turns with %d ship cells left\n", result.Winner.Name, result.Turns, result.WinnerShipCellsLeft)

	c.record(result, map[string]string{
		first.Player().Name:  first.Engine().Policy().Name,
		second.Player().Name: second.Engine().Policy().Name,
	})
	return nil
}

func (c *Cli) bench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(c.out)
	games := fs.Int("n", c.benchGames, "number of games")
	policyName := fs.String("policy", c.ai.Policy, "first policy")
	opponentName := fs.String("opponent", c.ai.OpponentPolicy, "second policy")
	seed := fs.Int64("seed", c.ai.Seed, "random seed, 0 for time based")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *games < 1 {
		return fmt.Errorf("number of games must be positive, got %d", *games)
	}

	rng := c.seededRand(*seed)
	summary := newBenchSummary()

	for i := 0; i < *games; i++ {
		first, err := c.newAI(1, *policyName, rng)
		if err != nil {
			return err
		}
		second, err := c.newAI(2, *opponentName, rng)
		if err != nil {
			return err
		}

		// Alternate who moves first so neither policy keeps the tempo.
		contenders := [2]*ai.Player{first, second}
		if i%2 == 1 {
			contenders = [2]*ai.Player{second, first}
		}

		game, err := c.manager.CreateGame(contenders[0], contenders[1], mb.WithLogger(c.log))
		if err != nil {
			return err
		}
		result, err := game.Play()
		c.manager.TerminateGame(game.Uuid())
		if err != nil {
			return err
		}

		policies := map[string]string{
			first.Player().Name:  first.Engine().Policy().Name,
			second.Player().Name: second.Engine().Policy().Name,
		}
		summary.add(result, policies)
		c.record(result, policies)
	}

	summary.print(c.out)

	stats, err := c.backend.MatchStats(context.Background())
	if err != nil {
		c.log.Warn().Err(err).Msg("failed to read match statistics")
		return nil
	}
	fmt.Fprintf(c.out, "all recorded matches: %d, average turns %.2f\n", stats.Matches, stats.AverageTurns)
	return nil
}

// record stores the match. Failures are logged and never end the session.
func (c *Cli) record(result mb.Result, policies map[string]string) {
	if result.Winner == nil {
		return
	}

	record := store.NewMatchRecord(result, policies[result.Winner.Name], policies[result.Loser.Name])
	if err := c.backend.RecordMatch(context.Background(), record); err != nil {
		c.log.Warn().Err(err).Str("game", result.GameUuid).Msg("failed to record match")
	}
}

func (c *Cli) printBoards(players ...*mb.Player) {
	for _, p := range players {
		fmt.Fprintf(c.out, "%s's board:\n", p.Name)
		for _, line := range p.Board.PlayerView() {
			fmt.Fprintln(c.out, line)
		}
	}
}

type benchSummary struct {
	games      int
	totalTurns int
	wins       map[string]int
}

func newBenchSummary() *benchSummary {
	return &benchSummary{wins: make(map[string]int)}
}

func (bs *benchSummary) add(result mb.Result, policies map[string]string) {
	bs.games++
	bs.totalTurns += result.Turns
	if result.Winner != nil {
		bs.wins[fmt.Sprintf("%s (%s)", result.Winner.Name, policies[result.Winner.Name])]++
	}
}

func (bs *benchSummary) averageTurns() float64 {
	if bs.games == 0 {
		return 0
	}
	return float64(bs.totalTurns) / float64(bs.games)
}

func (bs *benchSummary) print(out io.Writer) {
	fmt.Fprintf(out, "games: %d, average turns: %.2f\n", bs.games, bs.averageTurns())

	names := make([]string, 0, len(bs.wins))
	for name := range bs.wins {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %s won %d (%.1f%%)\n", name, bs.wins[name], 100*float64(bs.wins[name])/float64(bs.games))
	}
}
