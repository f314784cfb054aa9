package narrator

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// maxStoryEvents bounds the story log; the oldest entry is dropped
// once the log is full.
const maxStoryEvents = 50

// StoryEvent is one narrative continuity record. SubjectID and
// SubjectType identify the entity the event is about.
type StoryEvent struct {
	Timestamp   time.Time   `json:"timestamp"`
	SubjectID   string      `json:"subject_id"`
	SubjectType string      `json:"subject_type"`
	Summary     string      `json:"summary"`
	Personality Personality `json:"personality"`
}

// record appends a story event about the given subject, dropping the
// oldest entry past the cap
func (n *Narrator) record(subject core.Entity, summary string, p Personality) {
	n.mu.Lock()
	defer n.mu.Unlock()

	event := StoryEvent{
		Timestamp:   n.clock.Now(),
		Summary:     summary,
		Personality: p,
	}
	if subject != nil {
		event.SubjectID = subject.GetID()
		event.SubjectType = subject.GetType()
	}

	n.log = append(n.log, event)
	if len(n.log) > maxStoryEvents {
		n.log = n.log[len(n.log)-maxStoryEvents:]
	}
}

// StoryLog returns a copy of the story log, oldest first
func (n *Narrator) StoryLog() []StoryEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]StoryEvent(nil), n.log...)
}
