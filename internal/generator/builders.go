package generator

import (
	"fmt"

	"github.com/planebound/planebound-api/internal/entities"
)

// Composite builders. Each one is a plain assembly of pool expansions
// plus dice rolls; they define the schema and value ranges for
// generated content. Pool lookups fall through Expand, so a missing
// pool surfaces as a NotFound error to the caller.

// BuildEncounter assembles a random encounter with difficulty in [1, 5]
func (g *Generator) BuildEncounter() (*entities.Encounter, error) {
	name, err := g.Expand("encounter_name")
	if err != nil {
		return nil, err
	}
	description, err := g.Expand("encounter_description")
	if err != nil {
		return nil, err
	}
	enemy, err := g.Expand("enemy")
	if err != nil {
		return nil, err
	}
	environment, err := g.Expand("location")
	if err != nil {
		return nil, err
	}
	reward, err := g.Expand("reward")
	if err != nil {
		return nil, err
	}

	return &entities.Encounter{
		ID:          g.idGen.Generate(),
		Name:        name,
		Description: description,
		Difficulty:  g.rollRange(1, 5),
		EnemyType:   enemy,
		Environment: environment,
		Reward:      reward,
	}, nil
}

// BuildBoss assembles a random boss with health in [100, 150] and
// difficulty in [1, 5]
func (g *Generator) BuildBoss() (*entities.Boss, error) {
	name, err := g.Expand("boss_name")
	if err != nil {
		return nil, err
	}
	location, err := g.Expand("location")
	if err != nil {
		return nil, err
	}

	abilities := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		ability, err := g.Expand("boss_ability")
		if err != nil {
			return nil, err
		}
		abilities = append(abilities, ability)
	}
	weakness, err := g.Expand("boss_weakness")
	if err != nil {
		return nil, err
	}
	resistance, err := g.Expand("boss_resistance")
	if err != nil {
		return nil, err
	}

	health := g.rollRange(100, 150)
	return &entities.Boss{
		ID:          g.idGen.Generate(),
		Name:        name,
		Health:      health,
		MaxHealth:   health,
		Abilities:   abilities,
		Weaknesses:  []string{weakness},
		Resistances: []string{resistance},
		Difficulty:  g.rollRange(1, 5),
		Location:    location,
	}, nil
}

// BuildQuest assembles a random quest in its initial active state
func (g *Generator) BuildQuest() (*entities.Quest, error) {
	title, err := g.Expand("quest_title")
	if err != nil {
		return nil, err
	}
	objective, err := g.Expand("quest_objective")
	if err != nil {
		return nil, err
	}
	reward, err := g.Expand("reward")
	if err != nil {
		return nil, err
	}

	return &entities.Quest{
		ID:        g.idGen.Generate(),
		Title:     title,
		Objective: objective,
		Status:    entities.QuestStatusActive,
		Rewards:   []string{reward},
	}, nil
}

// BuildCard assembles a random card. Creatures get power and toughness
// in [1, 5]; every card gets a generic mana cost in [1, 6].
func (g *Generator) BuildCard() (*entities.Card, error) {
	name, err := g.Expand("card_name")
	if err != nil {
		return nil, err
	}
	typeLine, err := g.Expand("card_type")
	if err != nil {
		return nil, err
	}
	text, err := g.Expand("card_text")
	if err != nil {
		return nil, err
	}

	card := &entities.Card{
		ID:         g.idGen.Generate(),
		Name:       name,
		ManaCost:   fmt.Sprintf("{%d}", g.rollRange(1, 6)),
		TypeLine:   typeLine,
		OracleText: text,
	}
	if card.IsCreature() {
		card.Power = fmt.Sprintf("%d", g.rollRange(1, 5))
		card.Toughness = fmt.Sprintf("%d", g.rollRange(1, 5))
	}
	return card, nil
}
