package game

import (
	"fmt"

	"github.com/NChechulin/poker-sequence-search/internal/rng"
	"github.com/NChechulin/poker-sequence-search/pkg/deck"
)

// DealOptions controls a random deal
type DealOptions struct {
	ComputerCards int
	PlayerCards   int
	Jokers        int
}

// Validate checks the options can produce a playable round
func (o DealOptions) Validate() error {
	if o.PlayerCards < 1 {
		return ErrEmptyHand
	}

	if o.PlayerCards >= o.ComputerCards {
		return HandSizeError{Computer: o.ComputerCards, Player: o.PlayerCards}
	}

	if o.ComputerCards > 52 {
		return fmt.Errorf("computer cannot hold more than 52 cards, got %d", o.ComputerCards)
	}

	if o.Jokers < 0 || o.Jokers > o.PlayerCards {
		return fmt.Errorf("jokers must be between 0 and %d, got %d", o.PlayerCards, o.Jokers)
	}

	return nil
}

// Deal returns a random round.
// The player's hand is cut from the computer's hand, with up to Jokers positions
// replaced by a JOKER. Half of the time one position is swapped for a card left in
// the deck, so rounds can be lost.
func Deal(gen rng.Generator, opts DealOptions) (*Round, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	d := deck.New(0)
	d.Shuffle(gen)

	computer, err := d.DrawHand(opts.ComputerCards)
	if err != nil {
		return nil, err
	}

	start := gen.Intn(opts.ComputerCards - opts.PlayerCards + 1)
	player := computer[start : start+opts.PlayerCards].Clone()

	if d.CanDraw(1) && gen.Intn(2) == 0 {
		card, _ := d.Draw()
		player[gen.Intn(len(player))] = card
	}

	for i := 0; i < opts.Jokers; i++ {
		player[gen.Intn(len(player))] = deck.Joker
	}

	return &Round{
		Computer: computer,
		Player:   player,
	}, nil
}
