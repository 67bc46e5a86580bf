package deck

import (
	"fmt"
	"strings"
)

// Hand represents a sequence of cards
type Hand []Card

// HandFromString parses a whitespace-separated list of cards, i.e., "CLUBS#ACE JOKER SPADES#9"
func HandFromString(s string) (Hand, error) {
	tokens := strings.Fields(s)
	hand := make(Hand, len(tokens))
	for i, token := range tokens {
		card, err := CardFromString(token)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}

		hand[i] = card
	}

	return hand, nil
}

// MustHandFromString is like HandFromString, but panics on error
func MustHandFromString(s string) Hand {
	hand, err := HandFromString(s)
	if err != nil {
		panic(err)
	}

	return hand
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// Bytes returns the byte encoding of every card
func (h Hand) Bytes() []byte {
	b := make([]byte, len(h))
	for i, card := range h {
		b[i] = card.Byte()
	}

	return b
}

// HandFromBytes decodes a byte encoded hand
func HandFromBytes(b []byte) (Hand, error) {
	hand := make(Hand, len(b))
	for i, c := range b {
		card, err := CardFromByte(c)
		if err != nil {
			return nil, err
		}

		hand[i] = card
	}

	return hand, nil
}

// JokerCount returns the number of jokers in the hand
func (h Hand) JokerCount() int {
	count := 0
	for _, card := range h {
		if card.IsJoker {
			count++
		}
	}

	return count
}

// HasJoker returns true if the hand holds at least one joker
func (h Hand) HasJoker() bool {
	return h.JokerCount() > 0
}

func (h Hand) String() string {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = card.String()
	}

	return strings.Join(c, " ")
}

// Pretty returns the hand using suit symbols
func (h Hand) Pretty() string {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = card.Pretty()
	}

	return strings.Join(c, " ")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
