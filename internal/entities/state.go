package entities

// Phase is the top-level session state
type Phase string

// Session phases. The defeat phase is declared for save compatibility
// but no current operation drives the session into it: boss encounters
// cannot yet be lost.
const (
	PhaseMenu      Phase = "menu"
	PhasePlaying   Phase = "playing"
	PhaseEncounter Phase = "encounter"
	PhaseBoss      Phase = "boss"
	PhaseVictory   Phase = "victory"
	PhaseDefeat    Phase = "defeat"
)

// IsValid reports whether the phase is one of the known phases
func (p Phase) IsValid() bool {
	switch p {
	case PhaseMenu, PhasePlaying, PhaseEncounter, PhaseBoss, PhaseVictory, PhaseDefeat:
		return true
	}
	return false
}

// Settings holds player-adjustable session settings. They survive
// ResetGame.
type Settings struct {
	Difficulty      string `json:"difficulty"`
	SoundEnabled    bool   `json:"sound_enabled"`
	AutoSaveEnabled bool   `json:"auto_save_enabled"`
}

// SettingsPatch is a partial settings update; nil fields are left
// unchanged on merge
type SettingsPatch struct {
	Difficulty      *string `json:"difficulty,omitempty"`
	SoundEnabled    *bool   `json:"sound_enabled,omitempty"`
	AutoSaveEnabled *bool   `json:"auto_save_enabled,omitempty"`
}

// GameState is the single aggregate root for a session. It is owned
// exclusively by the session store; external code only sees copies.
type GameState struct {
	Phase            Phase           `json:"phase"`
	CurrentTurn      int             `json:"current_turn"`
	Players          []*Player       `json:"players"`
	CurrentBoss      *Boss           `json:"current_boss,omitempty"`
	CurrentEncounter *Encounter      `json:"current_encounter,omitempty"`
	Location         string          `json:"location,omitempty"`
	Inventory        []Item          `json:"inventory"`
	Quests           []Quest         `json:"quests"`
	DefeatedBossIDs  map[string]bool `json:"defeated_boss_ids"`
	Settings         Settings        `json:"settings"`
}

// NewGameState returns a fresh menu-phase state
func NewGameState() *GameState {
	return &GameState{
		Phase:           PhaseMenu,
		Players:         []*Player{},
		Inventory:       []Item{},
		Quests:          []Quest{},
		DefeatedBossIDs: map[string]bool{},
		Settings: Settings{
			Difficulty:      "normal",
			SoundEnabled:    true,
			AutoSaveEnabled: true,
		},
	}
}

// Clone returns a deep copy of the state
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}
	out := *s
	out.Players = make([]*Player, len(s.Players))
	for i, p := range s.Players {
		out.Players[i] = p.Clone()
	}
	out.CurrentBoss = s.CurrentBoss.Clone()
	out.CurrentEncounter = s.CurrentEncounter.Clone()
	out.Inventory = append([]Item(nil), s.Inventory...)
	out.Quests = make([]Quest, len(s.Quests))
	for i, q := range s.Quests {
		out.Quests[i] = q
		out.Quests[i].Rewards = append([]string(nil), q.Rewards...)
	}
	out.DefeatedBossIDs = make(map[string]bool, len(s.DefeatedBossIDs))
	for id, defeated := range s.DefeatedBossIDs {
		out.DefeatedBossIDs[id] = defeated
	}
	return &out
}

// GameData carries the static catalog portion of a save
type GameData struct {
	Bosses []*Boss `json:"bosses"`
}

// SaveData is the persisted session layout. Loading it back must
// reproduce an equivalent GameState.
type SaveData struct {
	Version   string     `json:"version"`
	Timestamp int64      `json:"timestamp"`
	State     *GameState `json:"state"`
	GameData  GameData   `json:"game_data"`
}

// Stats is a read-only summary of the session
type Stats struct {
	Turn            int    `json:"turn"`
	DefeatedBosses  int    `json:"defeated_bosses"`
	TotalBosses     int    `json:"total_bosses"`
	ActiveQuests    int    `json:"active_quests"`
	CompletedQuests int    `json:"completed_quests"`
	InventorySize   int    `json:"inventory_size"`
	PlayerCount     int    `json:"player_count"`
	Phase           Phase  `json:"phase"`
	Location        string `json:"location"`
}
