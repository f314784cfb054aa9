package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/planebound/planebound-api/internal/entities"
	"github.com/planebound/planebound-api/internal/errors"
)

func (s *Server) newGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerCount int      `json:"player_count"`
		Names       []string `json:"names"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.store.StartNewGame(req.PlayerCount, req.Names); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, s.store.State())
}

func (s *Server) resetGame(w http.ResponseWriter, _ *http.Request) {
	s.store.ResetGame()
	writeData(w, http.StatusOK, s.store.State())
}

func (s *Server) gameState(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, s.store.State())
}

func (s *Server) gameStats(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, s.store.GetStats())
}

func (s *Server) changeLocation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Location string `json:"location"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Location == "" {
		writeError(w, errors.InvalidArgument("location cannot be empty"))
		return
	}

	s.store.ChangeLocation(req.Location)
	writeData(w, http.StatusOK, map[string]string{"location": req.Location})
}

func (s *Server) updateSettings(w http.ResponseWriter, r *http.Request) {
	var patch entities.SettingsPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	s.store.UpdateSettings(patch)
	writeData(w, http.StatusOK, s.store.State().Settings)
}

func (s *Server) listBosses(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("undefeated") == "true" {
		writeData(w, http.StatusOK, s.store.GetUndefeatedBosses())
		return
	}
	writeData(w, http.StatusOK, s.store.GetBosses())
}

func (s *Server) startBossEncounter(w http.ResponseWriter, r *http.Request) {
	if err := s.store.StartBossEncounter(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, s.store.State().CurrentBoss)
}

func (s *Server) startGeneratedBossEncounter(w http.ResponseWriter, _ *http.Request) {
	boss, err := s.generator.BuildBoss()
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.StartGeneratedBossEncounter(boss); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, boss)
}

func (s *Server) damageBoss(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount int `json:"amount"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.store.DamageBoss(req.Amount); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, s.store.State())
}

func (s *Server) bossBehavior(w http.ResponseWriter, _ *http.Request) {
	state := s.store.State()
	if state.CurrentBoss == nil {
		writeError(w, errors.FailedPrecondition("no active boss"))
		return
	}

	behavior, err := s.narrator.GenerateBossBehavior(state.CurrentBoss, state)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, behavior)
}

func (s *Server) startEncounter(w http.ResponseWriter, _ *http.Request) {
	enc, err := s.narrator.GenerateEncounter()
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.StartEncounter(enc); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, enc)
}

func (s *Server) suggestActions(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, s.narrator.SuggestPlayerAction(s.store.State()))
}

func (s *Server) getPlayer(w http.ResponseWriter, r *http.Request) {
	player := s.store.GetPlayer(chi.URLParam(r, "id"))
	if player == nil {
		writeError(w, errors.NotFoundf("player %q not found", chi.URLParam(r, "id")))
		return
	}
	writeData(w, http.StatusOK, player)
}

func (s *Server) addCardToHand(w http.ResponseWriter, r *http.Request) {
	var card entities.Card
	if !decodeBody(w, r, &card) {
		return
	}
	if card.ID == "" {
		writeError(w, errors.InvalidArgument("card id cannot be empty"))
		return
	}

	s.store.AddCardToHand(chi.URLParam(r, "id"), card)
	writeData(w, http.StatusOK, s.store.GetPlayer(chi.URLParam(r, "id")))
}

func (s *Server) playCard(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CardID string        `json:"card_id"`
		Zone   entities.Zone `json:"zone"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.CardID == "" {
		writeError(w, errors.InvalidArgument("card id cannot be empty"))
		return
	}

	s.store.PlayCard(chi.URLParam(r, "id"), req.CardID, req.Zone)
	writeData(w, http.StatusOK, s.store.GetPlayer(chi.URLParam(r, "id")))
}

func (s *Server) addQuest(w http.ResponseWriter, r *http.Request) {
	var quest entities.Quest
	if !decodeBody(w, r, &quest) {
		return
	}
	if quest.Title == "" {
		writeError(w, errors.InvalidArgument("quest title cannot be empty"))
		return
	}

	writeData(w, http.StatusCreated, s.store.AddQuest(quest))
}

func (s *Server) updateQuestProgress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Progress int `json:"progress"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.store.UpdateQuestProgress(chi.URLParam(r, "id"), req.Progress); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, s.store.State().Quests)
}

func (s *Server) addToInventory(w http.ResponseWriter, r *http.Request) {
	var item entities.Item
	if !decodeBody(w, r, &item) {
		return
	}
	if item.Name == "" {
		writeError(w, errors.InvalidArgument("item name cannot be empty"))
		return
	}

	writeData(w, http.StatusCreated, s.store.AddToInventory(item))
}
