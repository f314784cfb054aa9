package entities

// ChangeType names the mutation that produced a ChangeEvent
type ChangeType string

// Change event types, one per session store mutation
const (
	ChangeGameStarted          ChangeType = "game_started"
	ChangeBossEncounterStarted ChangeType = "boss_encounter_started"
	ChangeEncounterStarted     ChangeType = "encounter_started"
	ChangeBossDamaged          ChangeType = "boss_damaged"
	ChangeBossDefeated         ChangeType = "boss_defeated"
	ChangeCardAddedToHand      ChangeType = "card_added_to_hand"
	ChangeCardPlayed           ChangeType = "card_played"
	ChangeItemAddedToInventory ChangeType = "item_added_to_inventory"
	ChangeQuestAdded           ChangeType = "quest_added"
	ChangeQuestProgressUpdated ChangeType = "quest_progress_updated"
	ChangeLocationChanged      ChangeType = "location_changed"
	ChangeSettingsUpdated      ChangeType = "settings_updated"
	ChangeGameReset            ChangeType = "game_reset"
	ChangeGameLoaded           ChangeType = "game_loaded"
)

// ChangeEvent is delivered synchronously to every store observer after
// a mutation commits
type ChangeEvent struct {
	Type    ChangeType  `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// BossDefeatedPayload accompanies ChangeBossDefeated
type BossDefeatedPayload struct {
	BossID  string `json:"boss_id"`
	Victory bool   `json:"victory"`
}

// BossDamagedPayload accompanies ChangeBossDamaged
type BossDamagedPayload struct {
	BossID    string `json:"boss_id"`
	Amount    int    `json:"amount"`
	Remaining int    `json:"remaining"`
}

// CardMovedPayload accompanies ChangeCardAddedToHand and ChangeCardPlayed
type CardMovedPayload struct {
	PlayerID string `json:"player_id"`
	CardID   string `json:"card_id"`
	Zone     Zone   `json:"zone"`
}
