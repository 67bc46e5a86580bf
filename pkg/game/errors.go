package game

import (
	"errors"
	"fmt"

	"github.com/NChechulin/poker-sequence-search/pkg/zfinder"
)

// ErrEmptyHand is returned when the player holds no cards
var ErrEmptyHand = errors.New("player must hold at least one card")

// ErrComputerHasJoker is returned when the computer's hand contains a joker
var ErrComputerHasJoker = fmt.Errorf("computer cannot hold a joker: %w", zfinder.ErrTextContainsWildcard)

// HandSizeError is returned when the player's hand is not strictly shorter than the computer's
type HandSizeError struct {
	Computer int
	Player   int
}

func (h HandSizeError) Error() string {
	return fmt.Sprintf("player must hold fewer cards than the computer, got %d for the player and %d for the computer", h.Player, h.Computer)
}

// ErrPatternLongerThanText is matched (via errors.Is) by every HandSizeError
var ErrPatternLongerThanText = errors.New("player hand is not shorter than the computer hand")

// Is allows errors.Is(err, ErrPatternLongerThanText)
func (h HandSizeError) Is(target error) bool {
	return target == ErrPatternLongerThanText
}
