package entities

import "strings"

// EntityTypePlayer identifies players for core.Entity consumers
const EntityTypePlayer = "player"

// Zone names a card zone owned by a player
type Zone string

// Player card zones
const (
	ZoneHand        Zone = "hand"
	ZoneBattlefield Zone = "battlefield"
	ZoneGraveyard   Zone = "graveyard"
	ZoneLibrary     Zone = "library"
)

// IsValid reports whether the zone is one of the known player zones
func (z Zone) IsValid() bool {
	switch z {
	case ZoneHand, ZoneBattlefield, ZoneGraveyard, ZoneLibrary:
		return true
	}
	return false
}

// Player is one participant in the session. A card id appears in at
// most one of hand/battlefield/graveyard at a time; MoveCard enforces
// remove-then-append so zone moves never duplicate.
type Player struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Health      int            `json:"health"`
	MaxHealth   int            `json:"max_health"`
	ManaPool    map[string]int `json:"mana_pool"`
	Hand        []Card         `json:"hand"`
	Battlefield []Card         `json:"battlefield"`
	Graveyard   []Card         `json:"graveyard"`
	Library     []Card         `json:"library"`
	Abilities   []string       `json:"abilities"`
	Experience  int            `json:"experience"`
	Level       int            `json:"level"`
}

// GetID implements core.Entity
func (p *Player) GetID() string {
	return p.ID
}

// GetType implements core.Entity
func (p *Player) GetType() string {
	return EntityTypePlayer
}

// CardsInZone returns the card slice backing the given zone, or nil for
// an unknown zone
func (p *Player) CardsInZone(zone Zone) []Card {
	switch zone {
	case ZoneHand:
		return p.Hand
	case ZoneBattlefield:
		return p.Battlefield
	case ZoneGraveyard:
		return p.Graveyard
	case ZoneLibrary:
		return p.Library
	}
	return nil
}

func (p *Player) setZone(zone Zone, cards []Card) {
	switch zone {
	case ZoneHand:
		p.Hand = cards
	case ZoneBattlefield:
		p.Battlefield = cards
	case ZoneGraveyard:
		p.Graveyard = cards
	case ZoneLibrary:
		p.Library = cards
	}
}

// MoveCard moves the card with the given id from one zone to another.
// The card is removed from the source before being appended to the
// destination. Returns false if the card is not in the source zone.
func (p *Player) MoveCard(cardID string, from, to Zone) bool {
	source := p.CardsInZone(from)
	idx := -1
	for i, c := range source {
		if c.ID == cardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	card := source[idx]
	p.setZone(from, append(source[:idx:idx], source[idx+1:]...))
	p.setZone(to, append(p.CardsInZone(to), card))
	return true
}

// AddToHand appends a card to the player's hand
func (p *Player) AddToHand(card Card) {
	p.Hand = append(p.Hand, card)
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	out := *p
	out.ManaPool = make(map[string]int, len(p.ManaPool))
	for color, amount := range p.ManaPool {
		out.ManaPool[color] = amount
	}
	out.Hand = append([]Card(nil), p.Hand...)
	out.Battlefield = append([]Card(nil), p.Battlefield...)
	out.Graveyard = append([]Card(nil), p.Graveyard...)
	out.Library = append([]Card(nil), p.Library...)
	out.Abilities = append([]string(nil), p.Abilities...)
	return &out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
