package session

import (
	"fmt"
	"log/slog"

	"github.com/planebound/planebound-api/internal/entities"
	"github.com/planebound/planebound-api/internal/errors"
)

// StartNewGame resets the session into the playing phase with fresh
// players. Player ids are player-1 through player-N. Missing names
// default to "Player N". Catalog bosses are restored to full health.
func (s *Store) StartNewGame(playerCount int, names []string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("playerCount", playerCount, 1, 4, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	s.mu.Lock()
	players := make([]*entities.Player, 0, playerCount)
	for i := 0; i < playerCount; i++ {
		name := fmt.Sprintf("Player %d", i+1)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}

		mana := make(map[string]int, len(manaColors))
		for _, color := range manaColors {
			mana[color] = 0
		}

		players = append(players, &entities.Player{
			ID:          fmt.Sprintf("player-%d", i+1),
			Name:        name,
			Health:      defaultPlayerHealth,
			MaxHealth:   defaultPlayerHealth,
			ManaPool:    mana,
			Hand:        []entities.Card{},
			Battlefield: []entities.Card{},
			Graveyard:   []entities.Card{},
			Library:     []entities.Card{},
			Level:       1,
		})
	}

	s.state.Phase = entities.PhasePlaying
	s.state.CurrentTurn = 1
	s.state.Players = players
	s.state.CurrentBoss = nil
	s.state.CurrentEncounter = nil
	s.state.Location = s.startingLocation
	s.state.Inventory = []entities.Item{}
	s.state.Quests = []entities.Quest{}
	s.state.DefeatedBossIDs = map[string]bool{}
	s.restoreCatalogLocked()
	stats := s.statsLocked()
	s.mu.Unlock()

	s.notify(entities.ChangeEvent{Type: entities.ChangeGameStarted, Payload: stats})
	return nil
}

// StartBossEncounter looks the boss up in the static catalog and
// snapshots it as the current boss. Returns a NotFound error for an
// unknown id.
func (s *Store) StartBossEncounter(bossID string) error {
	s.mu.Lock()
	boss := s.catalogBossLocked(bossID)
	if boss == nil {
		s.mu.Unlock()
		return errors.NotFoundf("boss %q is not in the catalog", bossID)
	}
	snapshot := boss.Clone()
	s.state.Phase = entities.PhaseBoss
	s.state.CurrentBoss = snapshot
	s.state.CurrentEncounter = nil
	s.mu.Unlock()

	s.notify(entities.ChangeEvent{Type: entities.ChangeBossEncounterStarted, Payload: snapshot.Clone()})
	return nil
}

// StartGeneratedBossEncounter snapshots a non-catalog boss, typically
// one produced by the content generator, as the current boss
func (s *Store) StartGeneratedBossEncounter(boss *entities.Boss) error {
	if boss == nil {
		return errors.InvalidArgument("boss is required")
	}

	s.mu.Lock()
	snapshot := boss.Clone()
	s.state.Phase = entities.PhaseBoss
	s.state.CurrentBoss = snapshot
	s.state.CurrentEncounter = nil
	s.mu.Unlock()

	s.notify(entities.ChangeEvent{Type: entities.ChangeBossEncounterStarted, Payload: snapshot.Clone()})
	return nil
}

// StartEncounter stores the encounter and moves to the encounter phase
func (s *Store) StartEncounter(enc *entities.Encounter) error {
	if enc == nil {
		return errors.InvalidArgument("encounter is required")
	}

	s.mu.Lock()
	snapshot := enc.Clone()
	s.state.Phase = entities.PhaseEncounter
	s.state.CurrentEncounter = snapshot
	s.state.CurrentBoss = nil
	s.mu.Unlock()

	s.notify(entities.ChangeEvent{Type: entities.ChangeEncounterStarted, Payload: snapshot.Clone()})
	return nil
}

// DamageBoss applies damage to the current boss, clamping health at 0.
// Reaching 0 runs the defeat transition instead of emitting a damage
// event. Negative amounts are rejected so boss health can never climb.
// Fails with a precondition error when no boss is active.
func (s *Store) DamageBoss(amount int) error {
	if amount < 0 {
		return errors.InvalidArgumentf("damage amount cannot be negative, got %d", amount)
	}

	s.mu.Lock()
	boss := s.state.CurrentBoss
	if boss == nil {
		s.mu.Unlock()
		return errors.FailedPrecondition("no active boss to damage")
	}

	boss.Health -= amount
	if boss.Health <= 0 {
		boss.Health = 0
		event := s.defeatCurrentBossLocked()
		s.mu.Unlock()
		s.notify(event)
		return nil
	}

	payload := entities.BossDamagedPayload{
		BossID:    boss.ID,
		Amount:    amount,
		Remaining: boss.Health,
	}
	s.mu.Unlock()

	s.notify(entities.ChangeEvent{Type: entities.ChangeBossDamaged, Payload: payload})
	return nil
}

// DefeatCurrentBoss runs the defeat transition directly, regardless of
// remaining health
func (s *Store) DefeatCurrentBoss() error {
	s.mu.Lock()
	if s.state.CurrentBoss == nil {
		s.mu.Unlock()
		return errors.FailedPrecondition("no active boss to defeat")
	}
	event := s.defeatCurrentBossLocked()
	s.mu.Unlock()

	s.notify(event)
	return nil
}

// defeatCurrentBossLocked marks the current boss defeated, updates the
// catalog and defeated set, and computes victory. Victory means every
// catalog boss is down; otherwise the session returns to the playing
// phase. Callers hold s.mu and dispatch the returned event after
// unlocking.
func (s *Store) defeatCurrentBossLocked() entities.ChangeEvent {
	boss := s.state.CurrentBoss
	boss.Health = 0
	boss.Defeated = true

	if entry := s.catalogBossLocked(boss.ID); entry != nil {
		entry.Health = 0
		entry.Defeated = true
	}
	s.state.DefeatedBossIDs[boss.ID] = true
	s.state.CurrentBoss = nil

	victory := true
	for _, b := range s.catalog {
		if !b.Defeated {
			victory = false
			break
		}
	}

	if victory {
		s.state.Phase = entities.PhaseVictory
	} else {
		s.state.Phase = entities.PhasePlaying
	}

	return entities.ChangeEvent{
		Type: entities.ChangeBossDefeated,
		Payload: entities.BossDefeatedPayload{
			BossID:  boss.ID,
			Victory: victory,
		},
	}
}

// AddCardToHand appends a card to the player's hand. An unknown player
// id is a silent no-op, logged for diagnosis.
func (s *Store) AddCardToHand(playerID string, card entities.Card) {
	s.mu.Lock()
	player := s.playerLocked(playerID)
	if player == nil {
		s.mu.Unlock()
		slog.Warn("add card ignored for unknown player", "player_id", playerID, "card_id", card.ID)
		return
	}
	player.AddToHand(card)
	s.mu.Unlock()

	s.notify(entities.ChangeEvent{
		Type: entities.ChangeCardAddedToHand,
		Payload: entities.CardMovedPayload{
			PlayerID: playerID,
			CardID:   card.ID,
			Zone:     entities.ZoneHand,
		},
	})
}

// PlayCard moves a card from the player's hand to the target zone,
// battlefield by default. The move is remove-then-append so the card
// id never appears in two zones. Unknown player ids and cards not in
// hand are silent no-ops, logged for diagnosis.
func (s *Store) PlayCard(playerID, cardID string, targetZone entities.Zone) {
	if targetZone == "" {
		targetZone = entities.ZoneBattlefield
	}
	if !targetZone.IsValid() {
		slog.Warn("play card ignored for unknown zone", "player_id", playerID, "zone", targetZone)
		return
	}

	s.mu.Lock()
	player := s.playerLocked(playerID)
	if player == nil {
		s.mu.Unlock()
		slog.Warn("play card ignored for unknown player", "player_id", playerID, "card_id", cardID)
		return
	}
	if !player.MoveCard(cardID, entities.ZoneHand, targetZone) {
		s.mu.Unlock()
		slog.Warn("play card ignored, card not in hand", "player_id", playerID, "card_id", cardID)
		return
	}
	s.mu.Unlock()

	s.notify(entities.ChangeEvent{
		Type: entities.ChangeCardPlayed,
		Payload: entities.CardMovedPayload{
			PlayerID: playerID,
			CardID:   cardID,
			Zone:     targetZone,
		},
	})
}

// AddToInventory assigns the item a generated id and appends it.
// Returns the stored item.
func (s *Store) AddToInventory(item entities.Item) entities.Item {
	s.mu.Lock()
	item.ID = s.idGen.Generate()
	s.state.Inventory = append(s.state.Inventory, item)
	s.mu.Unlock()

	s.notify(entities.ChangeEvent{Type: entities.ChangeItemAddedToInventory, Payload: item})
	return item
}

// AddQuest stores the quest as active with zero progress. The store
// owns quest identity: a caller-supplied id is discarded and a
// generated one assigned, so ids never collide across sources.
// Returns the stored quest.
func (s *Store) AddQuest(quest entities.Quest) entities.Quest {
	s.mu.Lock()
	quest.ID = s.idGen.Generate()
	quest.Status = entities.QuestStatusActive
	quest.Progress = 0
	s.state.Quests = append(s.state.Quests, quest)
	s.mu.Unlock()

	s.notify(entities.ChangeEvent{Type: entities.ChangeQuestAdded, Payload: quest})
	return quest
}

// UpdateQuestProgress sets a quest's progress, clamped to [0, 100],
// and recomputes its status: completed at 100, active below
func (s *Store) UpdateQuestProgress(questID string, progress int) error {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	s.mu.Lock()
	var updated *entities.Quest
	for i := range s.state.Quests {
		if s.state.Quests[i].ID == questID {
			s.state.Quests[i].Progress = progress
			if progress >= 100 {
				s.state.Quests[i].Status = entities.QuestStatusCompleted
			} else {
				s.state.Quests[i].Status = entities.QuestStatusActive
			}
			updated = &s.state.Quests[i]
			break
		}
	}
	if updated == nil {
		s.mu.Unlock()
		return errors.NotFoundf("quest %q not found", questID)
	}
	payload := *updated
	s.mu.Unlock()

	s.notify(entities.ChangeEvent{Type: entities.ChangeQuestProgressUpdated, Payload: payload})
	return nil
}

// ChangeLocation updates the session location
func (s *Store) ChangeLocation(location string) {
	s.mu.Lock()
	s.state.Location = location
	s.mu.Unlock()

	s.notify(entities.ChangeEvent{Type: entities.ChangeLocationChanged, Payload: location})
}

// UpdateSettings merges the non-nil fields of the patch into the
// session settings
func (s *Store) UpdateSettings(patch entities.SettingsPatch) {
	s.mu.Lock()
	if patch.Difficulty != nil {
		s.state.Settings.Difficulty = *patch.Difficulty
	}
	if patch.SoundEnabled != nil {
		s.state.Settings.SoundEnabled = *patch.SoundEnabled
	}
	if patch.AutoSaveEnabled != nil {
		s.state.Settings.AutoSaveEnabled = *patch.AutoSaveEnabled
	}
	settings := s.state.Settings
	s.mu.Unlock()

	s.notify(entities.ChangeEvent{Type: entities.ChangeSettingsUpdated, Payload: settings})
}

// playerLocked finds a player by id. Callers hold s.mu.
func (s *Store) playerLocked(playerID string) *entities.Player {
	for _, p := range s.state.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// catalogBossLocked finds a catalog boss by id. Callers hold s.mu.
func (s *Store) catalogBossLocked(bossID string) *entities.Boss {
	for _, b := range s.catalog {
		if b.ID == bossID {
			return b
		}
	}
	return nil
}

// restoreCatalogLocked returns every catalog boss to full health and
// undefeated. Callers hold s.mu.
func (s *Store) restoreCatalogLocked() {
	for _, b := range s.catalog {
		b.Health = b.MaxHealth
		b.Defeated = false
	}
}
