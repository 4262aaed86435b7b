package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Board errors
	ErrWordsNotConnected = errors.New("not all words are connected")
	ErrInvalidWord       = errors.New("invalid word")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrCellEmpty         = errors.New("cell is empty")
	ErrInvalidLetter     = errors.New("invalid letter")
	ErrOutOfBounds       = errors.New("position is outside the board")

	// Tile errors
	ErrNoMoreTiles         = errors.New("the pile is out of tiles, or there isn't enough to pull")
	ErrHandHasTiles        = errors.New("you still have tiles in your hand")
	ErrLetterNotInHand     = errors.New("letter is not in your hand")
	ErrUnknownDistribution = errors.New("unknown tile distribution")

	// Session errors
	ErrGameOver = errors.New("game is already over")

	// Dictionary errors
	ErrDictionaryNotFound  = errors.New("dictionary not found")
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")

	// Score table errors
	ErrScoreTableNotFound = errors.New("score table not found")
)

// InvalidWordError reports a scanned word missing from the vocabulary
type InvalidWordError struct {
	Word string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("invalid word %q", e.Word)
}

// Is lets errors.Is match any InvalidWordError against ErrInvalidWord
func (e *InvalidWordError) Is(target error) bool {
	return target == ErrInvalidWord
}

// Message renders an error the way it is shown to a player
func Message(err error) string {
	var invalid *InvalidWordError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &invalid):
		return fmt.Sprintf("Invalid word %q!", invalid.Word)
	case errors.Is(err, ErrWordsNotConnected):
		return "Not all words are connected!"
	case errors.Is(err, ErrNoMoreTiles):
		return "The pile's all out of tiles, or there isn't enough to pull!"
	case errors.Is(err, ErrHandHasTiles):
		return "You still have tiles in your hand!"
	case errors.Is(err, ErrGameOver):
		return "The game is over!"
	default:
		return err.Error()
	}
}
