package api

import (
	"net/http"

	"github.com/planebound/planebound-api/internal/errors"
)

func (s *Server) searchCards(w http.ResponseWriter, r *http.Request) {
	if s.cards == nil {
		writeError(w, errors.Unavailable("card API is not configured"))
		return
	}

	cards, err := s.cards.SearchCards(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, cards)
}

func (s *Server) randomCard(w http.ResponseWriter, r *http.Request) {
	if s.cards == nil {
		writeError(w, errors.Unavailable("card API is not configured"))
		return
	}

	card, err := s.cards.GetRandomCard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, card)
}

func (s *Server) namedCard(w http.ResponseWriter, r *http.Request) {
	if s.cards == nil {
		writeError(w, errors.Unavailable("card API is not configured"))
		return
	}

	card, err := s.cards.GetNamedCard(r.Context(), r.URL.Query().Get("exact"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, card)
}
