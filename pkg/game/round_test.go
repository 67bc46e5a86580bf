package game

import (
	"errors"
	"testing"

	"github.com/NChechulin/poker-sequence-search/pkg/deck"
	"github.com/NChechulin/poker-sequence-search/pkg/snapshot"
	"github.com/NChechulin/poker-sequence-search/pkg/zfinder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const computerLine = "CLUBS#ACE CLUBS#ACE CLUBS#ACE HEARTS#JACK SPADES#9 SPADES#9 HEARTS#JACK SPADES#9"

type roundSnapshot struct {
	Output string  `json:"output"`
	Result *Result `json:"result"`
}

func play(t *testing.T, computer, player string) *Result {
	t.Helper()

	round, err := NewRound(computer, player)
	require.NoError(t, err)

	result, err := round.Play()
	require.NoError(t, err)

	return result
}

func TestRound_Play_scenarios(t *testing.T) {
	for _, scenario := range []struct {
		computer string
		player   string
	}{
		{computerLine, "HEARTS#JACK SPADES#9"},
		{computerLine, "HEARTS#ACE SPADES#ACE"},
		{computerLine, "JOKER HEARTS#JACK SPADES#9"},
		{"CLUBS#2 CLUBS#2 CLUBS#2", "CLUBS#2 CLUBS#2"},
		{"DIAMONDS#4 SPADES#KING HEARTS#10 CLUBS#QUEEN SPADES#ACE", "JOKER"},
	} {
		result := play(t, scenario.computer, scenario.player)
		snapshot.ValidateSnapshot(t, roundSnapshot{
			Output: result.String(),
			Result: result,
		}, "%s / %s", scenario.computer, scenario.player)
	}
}

func TestRound_Play(t *testing.T) {
	a := assert.New(t)

	result := play(t, computerLine, "HEARTS#JACK SPADES#9")
	a.True(result.Win)
	a.Equal([]int{3, 6}, result.Offsets)
	a.Equal("Win: 3 6 ", result.String())

	result = play(t, computerLine, "HEARTS#ACE SPADES#ACE")
	a.False(result.Win)
	a.Empty(result.Offsets)
	a.Equal("Loss", result.String())

	result = play(t, computerLine, "JOKER HEARTS#JACK SPADES#9")
	a.Equal([]int{2, 5}, result.Offsets)

	result = play(t, "CLUBS#2 CLUBS#2 CLUBS#2", "CLUBS#2 CLUBS#2")
	a.Equal([]int{0, 1}, result.Offsets)

	result = play(t, computerLine, "JOKER")
	a.Equal([]int{0, 1, 2, 3, 4, 5, 6, 7}, result.Offsets)

	result = play(t, computerLine, "JOKER JOKER JOKER JOKER JOKER JOKER JOKER")
	a.Equal([]int{0, 1}, result.Offsets)
}

func TestRound_Play_patternLongerThanText(t *testing.T) {
	round, err := NewRound("CLUBS#ACE", "CLUBS#ACE CLUBS#ACE")
	require.NoError(t, err)

	_, err = round.Play()
	assert.ErrorIs(t, err, ErrPatternLongerThanText)
	assert.EqualError(t, err, "player must hold fewer cards than the computer, got 2 for the player and 1 for the computer")

	var hse HandSizeError
	if assert.True(t, errors.As(err, &hse)) {
		assert.Equal(t, HandSizeError{Computer: 1, Player: 2}, hse)
	}

	// equal sizes are refused as well
	round, err = NewRound("CLUBS#ACE CLUBS#2", "CLUBS#ACE CLUBS#2")
	require.NoError(t, err)
	_, err = round.Play()
	assert.ErrorIs(t, err, ErrPatternLongerThanText)

	// the core alone reports no match
	_, err = zfinder.FindAll(round.Computer[:1].Bytes(), round.Player.Bytes())
	assert.Equal(t, zfinder.ErrNoMatch, err)
}

func TestRound_Validate(t *testing.T) {
	round, err := NewRound(computerLine, "")
	require.NoError(t, err)
	assert.Equal(t, ErrEmptyHand, round.Validate())

	round, err = NewRound("CLUBS#2 JOKER CLUBS#3", "CLUBS#2")
	require.NoError(t, err)
	err = round.Validate()
	assert.ErrorIs(t, err, ErrComputerHasJoker)
	assert.ErrorIs(t, err, zfinder.ErrTextContainsWildcard)

	_, err = round.Play()
	assert.ErrorIs(t, err, ErrComputerHasJoker)

	round, err = NewRound(computerLine, "CLUBS#2")
	require.NoError(t, err)
	assert.NoError(t, round.Validate())
}

func TestNewRound_malformed(t *testing.T) {
	_, err := NewRound("CLUBS#2 CLUUBS#3", "CLUBS#2")
	assert.ErrorIs(t, err, deck.ErrMalformedCard)
	assert.EqualError(t, err, `computer: card 2: malformed card "CLUUBS#3": unknown suit "CLUUBS"`)

	_, err = NewRound("CLUBS#2 CLUBS#3", "CLUBS#QUUEEN")
	assert.ErrorIs(t, err, deck.ErrMalformedCard)
	assert.EqualError(t, err, `player: card 1: malformed card "CLUBS#QUUEEN": unknown rank "QUUEEN"`)
}

func TestResult_Matches(t *testing.T) {
	round, err := NewRound(computerLine, "JOKER SPADES#9")
	require.NoError(t, err)

	result, err := round.Play()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 6}, result.Offsets)

	matches := result.Matches(round)
	if assert.Len(t, matches, 3) {
		assert.Equal(t, "HEARTS#JACK SPADES#9", matches[0].String())
		assert.Equal(t, "SPADES#9 SPADES#9", matches[1].String())
		assert.Equal(t, "HEARTS#JACK SPADES#9", matches[2].String())
	}
}
