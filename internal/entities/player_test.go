package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planebound/planebound-api/internal/entities"
)

func newPlayer() *entities.Player {
	return &entities.Player{
		ID:        "player-1",
		Name:      "Mira",
		Health:    20,
		MaxHealth: 20,
		Hand: []entities.Card{
			{ID: "card-1", Name: "Ember Drake", TypeLine: "Creature - Drake"},
			{ID: "card-2", Name: "Counterglyph", TypeLine: "Instant"},
		},
	}
}

func TestMoveCardRemovesBeforeAppending(t *testing.T) {
	p := newPlayer()

	moved := p.MoveCard("card-1", entities.ZoneHand, entities.ZoneBattlefield)
	require.True(t, moved)

	assert.Len(t, p.Hand, 1)
	assert.Equal(t, "card-2", p.Hand[0].ID)
	require.Len(t, p.Battlefield, 1)
	assert.Equal(t, "card-1", p.Battlefield[0].ID)

	total := len(p.Hand) + len(p.Battlefield) + len(p.Graveyard) + len(p.Library)
	assert.Equal(t, 2, total)
}

func TestMoveCardMissingCard(t *testing.T) {
	p := newPlayer()

	assert.False(t, p.MoveCard("card-404", entities.ZoneHand, entities.ZoneBattlefield))
	assert.Len(t, p.Hand, 2)
	assert.Empty(t, p.Battlefield)
}

func TestMoveCardFromWrongZone(t *testing.T) {
	p := newPlayer()

	assert.False(t, p.MoveCard("card-1", entities.ZoneGraveyard, entities.ZoneBattlefield))
	assert.Len(t, p.Hand, 2)
}

func TestZoneValidity(t *testing.T) {
	assert.True(t, entities.ZoneHand.IsValid())
	assert.True(t, entities.ZoneBattlefield.IsValid())
	assert.True(t, entities.ZoneGraveyard.IsValid())
	assert.True(t, entities.ZoneLibrary.IsValid())
	assert.False(t, entities.Zone("exile").IsValid())
}

func TestCloneIsDeep(t *testing.T) {
	p := newPlayer()
	p.ManaPool = map[string]int{"red": 2}

	clone := p.Clone()
	clone.Hand[0].Name = "mutated"
	clone.ManaPool["red"] = 9

	assert.Equal(t, "Ember Drake", p.Hand[0].Name)
	assert.Equal(t, 2, p.ManaPool["red"])
}

func TestCardTypePredicates(t *testing.T) {
	creature := entities.Card{TypeLine: "Legendary Creature - Dragon"}
	instant := entities.Card{TypeLine: "Instant"}
	sorcery := entities.Card{TypeLine: "Sorcery"}
	land := entities.Card{TypeLine: "Basic Land - Island"}

	assert.True(t, creature.IsCreature())
	assert.False(t, creature.IsSpell())
	assert.True(t, instant.IsSpell())
	assert.True(t, sorcery.IsSpell())
	assert.False(t, land.IsCreature())
	assert.False(t, land.IsSpell())
}

func TestGameStateCloneIsDeep(t *testing.T) {
	state := entities.NewGameState()
	state.Players = []*entities.Player{newPlayer()}
	state.CurrentBoss = &entities.Boss{ID: "boss-1", Health: 100, MaxHealth: 100}
	state.DefeatedBossIDs["boss-2"] = true

	clone := state.Clone()
	clone.Players[0].Name = "mutated"
	clone.CurrentBoss.Health = 1
	clone.DefeatedBossIDs["boss-3"] = true

	assert.Equal(t, "Mira", state.Players[0].Name)
	assert.Equal(t, 100, state.CurrentBoss.Health)
	assert.False(t, state.DefeatedBossIDs["boss-3"])
}

func TestBossHealthFraction(t *testing.T) {
	boss := &entities.Boss{Health: 30, MaxHealth: 120}
	assert.InDelta(t, 0.25, boss.HealthFraction(), 0.001)

	zero := &entities.Boss{Health: 10, MaxHealth: 0}
	assert.Equal(t, 0.0, zero.HealthFraction())
}
