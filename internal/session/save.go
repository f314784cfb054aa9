package session

import (
	"github.com/planebound/planebound-api/internal/entities"
	"github.com/planebound/planebound-api/internal/errors"
)

// SaveGame serializes the entire session: the state tree plus the boss
// catalog. The returned structure shares nothing with store internals.
func (s *Store) SaveGame() *entities.SaveData {
	s.mu.Lock()
	defer s.mu.Unlock()

	bosses := make([]*entities.Boss, len(s.catalog))
	for i, b := range s.catalog {
		bosses[i] = b.Clone()
	}

	return &entities.SaveData{
		Version:   saveVersion,
		Timestamp: s.clock.Now().Unix(),
		State:     s.state.Clone(),
		GameData:  entities.GameData{Bosses: bosses},
	}
}

// LoadGame restores the session from a save. A blob without a
// recognizable state shape is rejected with an invalid argument error
// and the current state is left untouched.
func (s *Store) LoadGame(data *entities.SaveData) error {
	if err := validateSaveData(data); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = data.State.Clone()
	if s.state.DefeatedBossIDs == nil {
		s.state.DefeatedBossIDs = map[string]bool{}
	}
	if len(data.GameData.Bosses) > 0 {
		catalog := make([]*entities.Boss, len(data.GameData.Bosses))
		for i, b := range data.GameData.Bosses {
			catalog[i] = b.Clone()
		}
		s.catalog = catalog
	}
	s.mu.Unlock()

	s.notify(entities.ChangeEvent{Type: entities.ChangeGameLoaded})
	return nil
}

func validateSaveData(data *entities.SaveData) error {
	if data == nil {
		return errors.InvalidArgument("save data is required")
	}
	if data.State == nil {
		return errors.InvalidArgument("save data has no state")
	}
	if !data.State.Phase.IsValid() {
		return errors.InvalidArgumentf("save data has unknown phase %q", data.State.Phase)
	}
	return nil
}

// ResetGame returns the session to the menu phase, clearing all
// session fields while preserving settings, and restores every catalog
// boss to full health and undefeated
func (s *Store) ResetGame() {
	s.mu.Lock()
	settings := s.state.Settings
	s.state = entities.NewGameState()
	s.state.Settings = settings
	s.restoreCatalogLocked()
	s.mu.Unlock()

	s.notify(entities.ChangeEvent{Type: entities.ChangeGameReset})
}
