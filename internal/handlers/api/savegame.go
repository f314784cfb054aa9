package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/planebound/planebound-api/internal/repositories/saves"
)

func (s *Server) listSaves(w http.ResponseWriter, r *http.Request) {
	out, err := s.saves.List(r.Context(), saves.ListInput{})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, out.Slots)
}

func (s *Server) saveGame(w http.ResponseWriter, r *http.Request) {
	slot := chi.URLParam(r, "slot")
	save := s.store.SaveGame()

	out, err := s.saves.Put(r.Context(), saves.PutInput{Slot: slot, Save: save})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, map[string]interface{}{
		"slot":      out.Slot,
		"version":   save.Version,
		"timestamp": save.Timestamp,
	})
}

func (s *Server) loadGame(w http.ResponseWriter, r *http.Request) {
	slot := chi.URLParam(r, "slot")

	out, err := s.saves.Get(r.Context(), saves.GetInput{Slot: slot})
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.LoadGame(out.Save); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, s.store.State())
}

func (s *Server) deleteSave(w http.ResponseWriter, r *http.Request) {
	if _, err := s.saves.Delete(r.Context(), saves.DeleteInput{Slot: chi.URLParam(r, "slot")}); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]string{"slot": chi.URLParam(r, "slot")})
}
