package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrGuessFailed = "guess operation failed"
)

// Sentinels wrapped by the constructors below so callers can use errors.Is.
var (
	ErrDuplicateGuess = errors.New("coordinate already guessed")
	ErrIllegalCoord   = errors.New("illegal coordinate")
	ErrPlacement      = errors.New("invalid ship placement")
	ErrPlacementMiss  = errors.New("placement not cached")
)

func ErrInvalidCoord(coord string) error {
	return fmt.Errorf("%w: malformed coordinate %q", ErrIllegalCoord, coord)
}

func ErrCoordOutOfBound(coord string, boardSize int) error {
	return fmt.Errorf("%w: %q is outside the %dx%d board", ErrIllegalCoord, coord, boardSize, boardSize)
}

func ErrGuessAlreadyMade(coord string) error {
	return fmt.Errorf("%w: %s", ErrDuplicateGuess, coord)
}

func ErrShipCollision(shipName string) error {
	return fmt.Errorf("%w: %s collides with another ship", ErrPlacement, shipName)
}

func ErrShipOffBoard(shipName string) error {
	return fmt.Errorf("%w: not all coordinates of %s are on the board", ErrPlacement, shipName)
}

func ErrInvalidOrientation(value string) error {
	return fmt.Errorf("%w: orientation must be 'v' or 'h', got %q", ErrPlacement, value)
}

func ErrPlacementAttemptsExceeded(shipName string, attempts int) error {
	return fmt.Errorf("%w: could not place %s after %d attempts", ErrPlacement, shipName, attempts)
}

func ErrPlacementNotCached(shipName string) error {
	return fmt.Errorf("%w: %s", ErrPlacementMiss, shipName)
}

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrInvalidPhase(want, got string) error {
	return fmt.Errorf("game is in %s phase, expected %s", got, want)
}

func ErrGuessAttemptsExceeded(playerName string, attempts int) error {
	return fmt.Errorf("%s: %s did not produce a legal guess in %d attempts", ConstErrGuessFailed, playerName, attempts)
}

func ErrUnknownStorageType(storageType string) error {
	return fmt.Errorf("unknown storage type: %s", storageType)
}

func ErrUnknownPolicy(name string) error {
	return fmt.Errorf("unknown targeting policy: %s", name)
}

func ErrBoardExhausted(boardSize int) error {
	return fmt.Errorf("no unguessed cells left on the %dx%d board", boardSize, boardSize)
}
