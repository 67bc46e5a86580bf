// Package game plays one round of the joker sequence game: the player wins if their
// hand appears as a contiguous run in the computer's hand, where each JOKER the player
// holds stands in for any single card.
package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/NChechulin/poker-sequence-search/pkg/deck"
	"github.com/NChechulin/poker-sequence-search/pkg/zfinder"
)

// Round holds the two hands of a round
type Round struct {
	Computer deck.Hand `json:"computer"`
	Player   deck.Hand `json:"player"`
}

// NewRound parses the computer's and the player's lines
func NewRound(computerLine, playerLine string) (*Round, error) {
	computer, err := deck.HandFromString(computerLine)
	if err != nil {
		return nil, fmt.Errorf("computer: %w", err)
	}

	player, err := deck.HandFromString(playerLine)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}

	return &Round{
		Computer: computer,
		Player:   player,
	}, nil
}

// Validate checks the round can be played
func (r *Round) Validate() error {
	if len(r.Player) == 0 {
		return ErrEmptyHand
	}

	if r.Computer.HasJoker() {
		return ErrComputerHasJoker
	}

	if len(r.Player) >= len(r.Computer) {
		return HandSizeError{
			Computer: len(r.Computer),
			Player:   len(r.Player),
		}
	}

	return nil
}

// Play finds every position in the computer's hand where the player's hand occurs
func (r *Round) Play() (*Result, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	offsets, err := zfinder.FindAll(r.Computer.Bytes(), r.Player.Bytes())
	if err != nil {
		if errors.Is(err, zfinder.ErrNoMatch) {
			return &Result{Offsets: []int{}}, nil
		}

		return nil, err
	}

	return &Result{
		Win:     true,
		Offsets: offsets,
	}, nil
}

// Result is the outcome of a round
type Result struct {
	Win     bool  `json:"win"`
	Offsets []int `json:"offsets"`
}

// String returns "Win: 3 6 " or "Loss"
func (r *Result) String() string {
	if !r.Win {
		return "Loss"
	}

	var sb strings.Builder
	sb.WriteString("Win: ")
	for _, offset := range r.Offsets {
		sb.WriteString(strconv.Itoa(offset))
		sb.WriteByte(' ')
	}

	return sb.String()
}

// Matches returns the run of computer cards covered by each occurrence
func (r *Result) Matches(round *Round) []deck.Hand {
	matches := make([]deck.Hand, len(r.Offsets))
	for i, offset := range r.Offsets {
		matches[i] = round.Computer[offset : offset+len(round.Player)].Clone()
	}

	return matches
}
