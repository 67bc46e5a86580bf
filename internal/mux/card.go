package mux

import (
	"net/http"

	"github.com/NChechulin/poker-sequence-search/pkg/deck"
	gmux "github.com/gorilla/mux"
)

type cardResponse struct {
	Card   deck.Card `json:"card"`
	Byte   byte      `json:"byte"`
	Pretty string    `json:"pretty"`
}

func (m *Mux) getCard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		card, err := deck.CardFromString(gmux.Vars(r)["card"])
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, cardResponse{
			Card:   card,
			Byte:   card.Byte(),
			Pretty: card.Pretty(),
		})
	}
}
