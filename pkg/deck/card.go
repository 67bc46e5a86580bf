package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// JokerByte is the encoding of the JOKER card
const JokerByte byte = 0x40

// SentinelByte is never produced by any card and is reserved as a separator
const SentinelByte byte = 0xFF

// jokerToken is the textual form of the JOKER card
const jokerToken = "JOKER"

// ErrMalformedCard is matched (via errors.Is) by every parse failure
var ErrMalformedCard = errors.New("malformed card")

// ErrInvalidByte is returned when a byte does not decode to a card
var ErrInvalidByte = errors.New("byte is not a card encoding")

// MalformedCardError describes why a card could not be parsed
type MalformedCardError struct {
	Input  string
	Reason string
}

func (m *MalformedCardError) Error() string {
	return fmt.Sprintf("malformed card %q: %s", m.Input, m.Reason)
}

// Is allows errors.Is(err, ErrMalformedCard)
func (m *MalformedCardError) Is(target error) bool {
	return target == ErrMalformedCard
}

// Suit represents a card suit
type Suit uint8

// suit constants
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in encoding order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "CLUBS"
	case Diamonds:
		return "DIAMONDS"
	case Hearts:
		return "HEARTS"
	case Spades:
		return "SPADES"
	}

	return fmt.Sprintf("Suit(%d)", uint8(s))
}

// Symbol returns the unicode symbol for the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	}

	panic("unknown suit")
}

// Rank represents the rank of a card. Aces are low.
type Rank uint8

// face cards
const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

func (r Rank) String() string {
	switch r {
	case Ace:
		return "ACE"
	case Jack:
		return "JACK"
	case Queen:
		return "QUEEN"
	case King:
		return "KING"
	}

	return strconv.Itoa(int(r))
}

func (r Rank) short() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}

	return strconv.Itoa(int(r))
}

func (r Rank) valid() bool {
	return r >= Ace && r <= King
}

// Card is an individual playing card, either a suit/rank pair or the JOKER
type Card struct {
	Suit    Suit
	Rank    Rank
	IsJoker bool
}

// Joker is the wildcard card
var Joker = Card{IsJoker: true}

// NewCard returns a casual (non-joker) card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the canonical form, i.e., HEARTS#JACK or JOKER
func (c Card) String() string {
	if c.IsJoker {
		return jokerToken
	}

	return c.Suit.String() + "#" + c.Rank.String()
}

// Pretty returns a short human form, i.e., J♡
func (c Card) Pretty() string {
	if c.IsJoker {
		return "🃏"
	}

	return c.Rank.short() + c.Suit.Symbol()
}

// Equal returns true if the cards are equal
func (c Card) Equal(card Card) bool {
	if c.IsJoker || card.IsJoker {
		return c.IsJoker == card.IsJoker
	}

	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Byte encodes the card as 0b00SSRRRR, or JokerByte for the joker
func (c Card) Byte() byte {
	if c.IsJoker {
		return JokerByte
	}

	return byte(c.Suit)<<4 | byte(c.Rank)
}

// CardFromByte decodes a byte produced by Card.Byte
func CardFromByte(b byte) (Card, error) {
	if b == JokerByte {
		return Joker, nil
	}

	if b&0xC0 != 0 {
		return Card{}, fmt.Errorf("%w: 0x%02x", ErrInvalidByte, b)
	}

	rank := Rank(b & 0x0F)
	if !rank.valid() {
		return Card{}, fmt.Errorf("%w: 0x%02x", ErrInvalidByte, b)
	}

	return NewCard(Suit(b>>4), rank), nil
}

var suitsByName = map[string]Suit{
	"CLUBS":    Clubs,
	"DIAMONDS": Diamonds,
	"HEARTS":   Hearts,
	"SPADES":   Spades,
}

var ranksByName = map[string]Rank{
	"ACE":   Ace,
	"2":     2,
	"3":     3,
	"4":     4,
	"5":     5,
	"6":     6,
	"7":     7,
	"8":     8,
	"9":     9,
	"10":    10,
	"JACK":  Jack,
	"QUEEN": Queen,
	"KING":  King,
}

// CardFromString parses a card.
// The string must be JOKER or in the format of SUIT#RANK, where SUIT is one of CLUBS, DIAMONDS, HEARTS, SPADES
// and RANK is one of ACE, 2-10, JACK, QUEEN, KING
func CardFromString(s string) (Card, error) {
	if s == jokerToken {
		return Joker, nil
	}

	parts := strings.Split(s, "#")
	if len(parts) != 2 {
		return Card{}, &MalformedCardError{Input: s, Reason: "expected exactly one '#' in SUIT#RANK"}
	}

	suit, ok := suitsByName[parts[0]]
	if !ok {
		return Card{}, &MalformedCardError{Input: s, Reason: fmt.Sprintf("unknown suit %q", parts[0])}
	}

	rank, ok := ranksByName[parts[1]]
	if !ok {
		return Card{}, &MalformedCardError{Input: s, Reason: fmt.Sprintf("unknown rank %q", parts[1])}
	}

	return NewCard(suit, rank), nil
}

// MustCardFromString is like CardFromString, but panics if the card cannot be parsed
func MustCardFromString(s string) Card {
	card, err := CardFromString(s)
	if err != nil {
		panic(err)
	}

	return card
}

// MarshalJSON encodes the card as its canonical string
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a canonical card string
func (c *Card) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	card, err := CardFromString(s)
	if err != nil {
		return err
	}

	*c = card
	return nil
}
