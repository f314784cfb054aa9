package entities

// EntityTypeEncounter identifies encounters for core.Entity consumers
const EntityTypeEncounter = "encounter"

// Encounter is a generated combat or exploration scene. Narrative,
// SpecialMechanics, and EnvironmentEffect are filled in by the narrator
// layer on top of the generator's base output.
type Encounter struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Difficulty        int      `json:"difficulty"`
	EnemyType         string   `json:"enemy_type"`
	Environment       string   `json:"environment"`
	Reward            string   `json:"reward"`
	Narrative         string   `json:"narrative,omitempty"`
	SpecialMechanics  []string `json:"special_mechanics,omitempty"`
	EnvironmentEffect string   `json:"environment_effect,omitempty"`
}

// GetID implements core.Entity
func (e *Encounter) GetID() string {
	return e.ID
}

// GetType implements core.Entity
func (e *Encounter) GetType() string {
	return EntityTypeEncounter
}

// Clone returns a deep copy of the encounter
func (e *Encounter) Clone() *Encounter {
	if e == nil {
		return nil
	}
	out := *e
	out.SpecialMechanics = append([]string(nil), e.SpecialMechanics...)
	return &out
}
