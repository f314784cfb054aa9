// Package api exposes the game core over a small JSON HTTP surface
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/planebound/planebound-api/internal/clients/cardapi"
	"github.com/planebound/planebound-api/internal/errors"
	"github.com/planebound/planebound-api/internal/generator"
	"github.com/planebound/planebound-api/internal/narrator"
	"github.com/planebound/planebound-api/internal/repositories/saves"
	"github.com/planebound/planebound-api/internal/session"
)

// Config contains the collaborators for the API server
type Config struct {
	Store     *session.Store
	Generator *generator.Generator
	Narrator  *narrator.Narrator
	Saves     saves.Repository
	Cards     cardapi.Client
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Store == nil {
		vb.RequiredField("store")
	}
	if cfg.Generator == nil {
		vb.RequiredField("generator")
	}
	if cfg.Narrator == nil {
		vb.RequiredField("narrator")
	}
	if cfg.Saves == nil {
		vb.RequiredField("saves")
	}
	return vb.Build()
}

// Server handles HTTP requests against the game core
type Server struct {
	router    chi.Router
	store     *session.Store
	generator *generator.Generator
	narrator  *narrator.Narrator
	saves     saves.Repository
	cards     cardapi.Client
}

// NewServer creates a new API server. The card client is optional;
// without it the card endpoints report unavailable.
func NewServer(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		router:    chi.NewRouter(),
		store:     cfg.Store,
		generator: cfg.Generator,
		narrator:  cfg.Narrator,
		saves:     cfg.Saves,
		cards:     cfg.Cards,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.SetHeader("Content-Type", "application/json"))

	s.router.Get("/healthz", s.health)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/game/new", s.newGame)
		r.Post("/game/reset", s.resetGame)
		r.Get("/game/state", s.gameState)
		r.Get("/game/stats", s.gameStats)
		r.Post("/game/location", s.changeLocation)
		r.Patch("/game/settings", s.updateSettings)

		r.Get("/bosses", s.listBosses)
		r.Post("/bosses/{id}/encounter", s.startBossEncounter)
		r.Post("/bosses/generated/encounter", s.startGeneratedBossEncounter)
		r.Post("/bosses/damage", s.damageBoss)
		r.Get("/bosses/current/behavior", s.bossBehavior)

		r.Post("/encounters", s.startEncounter)
		r.Get("/encounters/suggestions", s.suggestActions)

		r.Post("/players/{id}/hand", s.addCardToHand)
		r.Post("/players/{id}/play", s.playCard)
		r.Get("/players/{id}", s.getPlayer)

		r.Post("/quests", s.addQuest)
		r.Post("/quests/{id}/progress", s.updateQuestProgress)
		r.Post("/inventory", s.addToInventory)

		r.Get("/generator/pools", s.listPools)
		r.Post("/generator/expand", s.expand)
		r.Get("/generator/history", s.generatorHistory)

		r.Get("/narrator/personality", s.getPersonality)
		r.Put("/narrator/personality", s.setPersonality)
		r.Post("/narrator/encounter", s.generateEncounter)
		r.Post("/narrator/quest", s.generateQuest)
		r.Get("/narrator/story", s.storyLog)

		r.Get("/cards/search", s.searchCards)
		r.Get("/cards/random", s.randomCard)
		r.Get("/cards/named", s.namedCard)

		r.Get("/saves", s.listSaves)
		r.Post("/saves/{slot}", s.saveGame)
		r.Post("/saves/{slot}/load", s.loadGame)
		r.Delete("/saves/{slot}", s.deleteSave)
	})
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// response wraps API responses
type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, response{Success: true, Data: data})
}

// writeError maps the error code taxonomy onto HTTP statuses
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	message := errors.GetMessage(err)
	if code == errors.CodeInternal {
		message = "internal server error"
	}
	writeJSON(w, code.HTTPStatus(), response{Success: false, Error: message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeError(w, errors.InvalidArgument("invalid request body"))
		return false
	}
	return true
}
