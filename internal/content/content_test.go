package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planebound/planebound-api/internal/content"
)

func TestLoadPools(t *testing.T) {
	pools, err := content.LoadPools()
	require.NoError(t, err)

	// Every pool the composite builders expand must exist and be non-empty
	for _, name := range []string{
		"adjective", "creature", "enemy", "location", "reward",
		"encounter_name", "encounter_description",
		"quest_title", "quest_objective",
		"boss_name", "boss_ability", "boss_weakness", "boss_resistance",
		"card_name", "card_type", "card_text",
	} {
		pool, ok := pools[name]
		require.True(t, ok, "pool %s missing", name)
		assert.NotEmpty(t, pool.Items, "pool %s empty", name)
	}
}

func TestLoadBossCatalog(t *testing.T) {
	bosses, err := content.LoadBossCatalog()
	require.NoError(t, err)
	require.NotEmpty(t, bosses)

	seen := map[string]bool{}
	for _, boss := range bosses {
		assert.NotEmpty(t, boss.ID)
		assert.NotEmpty(t, boss.Name)
		assert.Greater(t, boss.MaxHealth, 0)
		assert.Equal(t, boss.MaxHealth, boss.Health)
		assert.False(t, boss.Defeated)
		assert.False(t, seen[boss.ID], "duplicate boss id %s", boss.ID)
		seen[boss.ID] = true
	}
}

func TestLoadNPCs(t *testing.T) {
	npcs, err := content.LoadNPCs()
	require.NoError(t, err)
	require.NotEmpty(t, npcs)

	for _, npc := range npcs {
		assert.NotEmpty(t, npc.Name)
		assert.GreaterOrEqual(t, npc.Trustworthiness, 0.0)
		assert.LessOrEqual(t, npc.Trustworthiness, 1.0)
	}
}

func TestLoadDilemmas(t *testing.T) {
	dilemmas, err := content.LoadDilemmas()
	require.NoError(t, err)
	require.NotEmpty(t, dilemmas)

	for _, d := range dilemmas {
		assert.NotEmpty(t, d.Prompt)
		assert.GreaterOrEqual(t, len(d.Options), 2)
		for _, opt := range d.Options {
			assert.NotEmpty(t, opt.Label)
			assert.NotEmpty(t, opt.Alignment)
		}
	}
}
