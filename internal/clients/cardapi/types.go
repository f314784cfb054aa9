package cardapi

import (
	"github.com/planebound/planebound-api/internal/entities"
)

// CardData is the card shape returned by the external card API
type CardData struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	ManaCost   string            `json:"mana_cost"`
	TypeLine   string            `json:"type_line"`
	OracleText string            `json:"oracle_text"`
	Power      string            `json:"power"`
	Toughness  string            `json:"toughness"`
	ImageURIs  map[string]string `json:"image_uris"`
}

// SearchResult is the paged search response from the card API
type SearchResult struct {
	TotalCards int         `json:"total_cards"`
	HasMore    bool        `json:"has_more"`
	Data       []*CardData `json:"data"`
}

// ToCard converts API card data to the internal card entity
func (c *CardData) ToCard() entities.Card {
	image := ""
	if uri, ok := c.ImageURIs["normal"]; ok {
		image = uri
	}

	return entities.Card{
		ID:         c.ID,
		Name:       c.Name,
		ManaCost:   c.ManaCost,
		TypeLine:   c.TypeLine,
		OracleText: c.OracleText,
		Power:      c.Power,
		Toughness:  c.Toughness,
		ImageURL:   image,
	}
}
