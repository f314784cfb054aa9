package api

import (
	"net/http"

	"github.com/planebound/planebound-api/internal/errors"
)

func (s *Server) listPools(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, s.generator.Names())
}

func (s *Server) expand(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, errors.InvalidArgument("generator name cannot be empty"))
		return
	}

	result, err := s.generator.Expand(req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]string{"name": req.Name, "result": result})
}

func (s *Server) generatorHistory(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, s.generator.History())
}

func (s *Server) getPersonality(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, s.narrator.Personality())
}

func (s *Server) setPersonality(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	s.narrator.SetPersonality(req.Name)
	writeData(w, http.StatusOK, s.narrator.Personality())
}

func (s *Server) generateEncounter(w http.ResponseWriter, _ *http.Request) {
	enc, err := s.narrator.GenerateEncounter()
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, enc)
}

func (s *Server) generateQuest(w http.ResponseWriter, _ *http.Request) {
	quest, err := s.narrator.GenerateQuest()
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, quest)
}

func (s *Server) storyLog(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, s.narrator.StoryLog())
}
