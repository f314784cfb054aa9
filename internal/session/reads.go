package session

import (
	"github.com/planebound/planebound-api/internal/entities"
)

// Read accessors. All of them are pure and return copies; nothing
// handed out aliases store internals.

// State returns a deep-copy snapshot of the session state
func (s *Store) State() *entities.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// GetPlayer returns a copy of the player with the given id, or nil if
// no player matches
func (s *Store) GetPlayer(playerID string) *entities.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playerLocked(playerID).Clone()
}

// GetBosses returns copies of every catalog boss
func (s *Store) GetBosses() []*entities.Boss {
	s.mu.Lock()
	defer s.mu.Unlock()

	bosses := make([]*entities.Boss, len(s.catalog))
	for i, b := range s.catalog {
		bosses[i] = b.Clone()
	}
	return bosses
}

// GetUndefeatedBosses returns copies of the catalog bosses still standing
func (s *Store) GetUndefeatedBosses() []*entities.Boss {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bosses []*entities.Boss
	for _, b := range s.catalog {
		if !b.Defeated {
			bosses = append(bosses, b.Clone())
		}
	}
	return bosses
}

// GetStats summarizes the session
func (s *Store) GetStats() entities.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statsLocked()
}

// statsLocked builds the stats summary. Callers hold s.mu.
func (s *Store) statsLocked() entities.Stats {
	defeated := 0
	for _, b := range s.catalog {
		if b.Defeated {
			defeated++
		}
	}

	active, completed := 0, 0
	for _, q := range s.state.Quests {
		if q.Status == entities.QuestStatusCompleted {
			completed++
		} else {
			active++
		}
	}

	return entities.Stats{
		Turn:            s.state.CurrentTurn,
		DefeatedBosses:  defeated,
		TotalBosses:     len(s.catalog),
		ActiveQuests:    active,
		CompletedQuests: completed,
		InventorySize:   len(s.state.Inventory),
		PlayerCount:     len(s.state.Players),
		Phase:           s.state.Phase,
		Location:        s.state.Location,
	}
}
