package mux

import (
	"errors"
	"net/http"

	"github.com/NChechulin/poker-sequence-search/pkg/deck"
	"github.com/NChechulin/poker-sequence-search/pkg/game"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type matchPayload struct {
	Computer string `json:"computer"`
	Player   string `json:"player"`
}

type matchResponse struct {
	Round string `json:"round"`
	*game.Result
}

// isUserError returns true if the round was refused because of its input
func isUserError(err error) bool {
	return errors.Is(err, deck.ErrMalformedCard) ||
		errors.Is(err, game.ErrEmptyHand) ||
		errors.Is(err, game.ErrComputerHasJoker) ||
		errors.Is(err, game.ErrPatternLongerThanText)
}

func (m *Mux) postMatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var mp matchPayload
		if !decodeRequest(w, r, &mp) {
			return
		}

		id := uuid.New().String()
		log := logrus.WithField("round", id)

		round, err := game.NewRound(mp.Computer, mp.Player)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		result, err := round.Play()
		if err != nil {
			if isUserError(err) {
				writeJSONError(w, http.StatusBadRequest, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		log.WithFields(logrus.Fields{
			"computer": round.Computer.Pretty(),
			"player":   round.Player.Pretty(),
			"win":      result.Win,
		}).Debug("round played")

		writeJSON(w, http.StatusOK, matchResponse{
			Round:  id,
			Result: result,
		})
	}
}
