package entities

// EntityTypeBoss identifies bosses for core.Entity consumers
const EntityTypeBoss = "boss"

// Boss is a catalog or generated boss. Health stays within
// [0, MaxHealth]; Defeated tracks whether damage has brought it to 0.
type Boss struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Health      int      `json:"health"`
	MaxHealth   int      `json:"max_health"`
	Abilities   []string `json:"abilities"`
	Weaknesses  []string `json:"weaknesses"`
	Resistances []string `json:"resistances"`
	Difficulty  int      `json:"difficulty"`
	Defeated    bool     `json:"defeated"`
	Location    string   `json:"location"`
}

// GetID implements core.Entity
func (b *Boss) GetID() string {
	return b.ID
}

// GetType implements core.Entity
func (b *Boss) GetType() string {
	return EntityTypeBoss
}

// HealthFraction returns current health as a fraction of max, 0 when
// max health is unset
func (b *Boss) HealthFraction() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}

// Clone returns a deep copy of the boss
func (b *Boss) Clone() *Boss {
	if b == nil {
		return nil
	}
	out := *b
	out.Abilities = append([]string(nil), b.Abilities...)
	out.Weaknesses = append([]string(nil), b.Weaknesses...)
	out.Resistances = append([]string(nil), b.Resistances...)
	return &out
}
