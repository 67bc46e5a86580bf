package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const computerLine = "CLUBS#ACE CLUBS#ACE CLUBS#ACE HEARTS#JACK SPADES#9 SPADES#9 HEARTS#JACK SPADES#9"

type matchResult struct {
	Round   string `json:"round"`
	Win     bool   `json:"win"`
	Offsets []int  `json:"offsets"`
}

func TestMux_postMatch(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	a := assert.New(t)

	var res matchResult
	assertPost(t, ts, "/match", matchPayload{
		Computer: computerLine,
		Player:   "JOKER HEARTS#JACK SPADES#9",
	}, &res, 200)
	a.True(res.Win)
	a.Equal([]int{2, 5}, res.Offsets)
	_, err := uuid.Parse(res.Round)
	a.NoError(err)

	res = matchResult{}
	assertPost(t, ts, "/match", matchPayload{
		Computer: computerLine,
		Player:   "HEARTS#ACE SPADES#ACE",
	}, &res, 200)
	a.False(res.Win)
	a.Equal([]int{}, res.Offsets)
}

func TestMux_postMatch_errors(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	a := assert.New(t)

	var errObj errorResponse
	assertPost(t, ts, "/match", matchPayload{
		Computer: "CLUBS#ACE",
		Player:   "CLUBS#ACE CLUBS#ACE",
	}, &errObj, 400)
	a.Equal(400, errObj.StatusCode)
	a.Equal("player must hold fewer cards than the computer, got 2 for the player and 1 for the computer", errObj.Message)

	assertPost(t, ts, "/match", matchPayload{
		Computer: "CLUBS#ACE CLUBS",
		Player:   "CLUBS#ACE",
	}, &errObj, 400)
	a.Equal(`computer: card 2: malformed card "CLUBS": expected exactly one '#' in SUIT#RANK`, errObj.Message)

	assertPost(t, ts, "/match", matchPayload{
		Computer: "CLUBS#ACE JOKER",
		Player:   "CLUBS#ACE",
	}, &errObj, 400)
	a.Equal("computer cannot hold a joker: text cannot contain a joker or the sentinel", errObj.Message)

	assertPost(t, ts, "/match", matchPayload{
		Computer: "CLUBS#ACE",
	}, &errObj, 400)
	a.Equal("player must hold at least one card", errObj.Message)

	assertPost(t, ts, "/match", "{", &errObj, 400)

	assertPostContentType(t, ts, "/match", "text/plain", "{}", &errObj, 415)
	a.Equal("Unsupported Media Type", errObj.Message)
}
