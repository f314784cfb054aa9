package entities

// EntityTypeQuest identifies quests for core.Entity consumers
const EntityTypeQuest = "quest"

// QuestStatus is the lifecycle state of a quest
type QuestStatus string

// Quest statuses. Status is derived from progress: completed once
// progress reaches 100, active otherwise.
const (
	QuestStatusActive    QuestStatus = "active"
	QuestStatusCompleted QuestStatus = "completed"
)

// Quest is one tracked objective
type Quest struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Objective string      `json:"objective"`
	Status    QuestStatus `json:"status"`
	Progress  int         `json:"progress"`
	Rewards   []string    `json:"rewards"`
}

// GetID implements core.Entity
func (q *Quest) GetID() string {
	return q.ID
}

// GetType implements core.Entity
func (q *Quest) GetType() string {
	return EntityTypeQuest
}
