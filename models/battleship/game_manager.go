package battleship

import (
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

type GameManager interface {
	CreateGame(first, second Contender, opts ...GameOption) (*Game, error)
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	ActiveGames() int
}

type BattleshipGameManager struct {
	games map[string]*Game
	mu    sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		games: make(map[string]*Game, 10),
	}
}

func (bgm *BattleshipGameManager) CreateGame(first, second Contender, opts ...GameOption) (*Game, error) {
	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	gameUuid := bgm.newGameUuid()
	game, err := NewGame(first, second, append(opts, WithGameUuid(gameUuid))...)
	if err != nil {
		return nil, err
	}

	bgm.games[gameUuid] = game
	return game, nil
}

// newGameUuid picks a short uuid that is not already in use. The caller
// holds the lock.
func (bgm *BattleshipGameManager) newGameUuid() string {
	for {
		gameUuid := uuid.NewString()[:6]
		if _, prs := bgm.games[gameUuid]; !prs {
			return gameUuid
		}
	}
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) ActiveGames() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}
