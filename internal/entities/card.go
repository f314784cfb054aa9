// Package entities defines the domain types for the planebound game core:
// cards, players, bosses, quests, items, encounters, and the session
// game state aggregate. Types here are plain data; all mutation rules
// live in the session store.
package entities

// EntityTypeCard identifies cards for core.Entity consumers
const EntityTypeCard = "card"

// Card is a single game card. Fields mirror the external card source
// shape; optional fields stay empty when the source omits them.
type Card struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ManaCost   string `json:"mana_cost,omitempty"`
	TypeLine   string `json:"type_line,omitempty"`
	OracleText string `json:"oracle_text,omitempty"`
	Power      string `json:"power,omitempty"`
	Toughness  string `json:"toughness,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
}

// GetID implements core.Entity
func (c *Card) GetID() string {
	return c.ID
}

// GetType implements core.Entity
func (c *Card) GetType() string {
	return EntityTypeCard
}

// IsCreature reports whether the card's type line marks it as a creature
func (c *Card) IsCreature() bool {
	return containsFold(c.TypeLine, "creature")
}

// IsSpell reports whether the card is an instant or sorcery
func (c *Card) IsSpell() bool {
	return containsFold(c.TypeLine, "instant") || containsFold(c.TypeLine, "sorcery")
}
