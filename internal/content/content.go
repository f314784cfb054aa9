// Package content ships the default game data as embedded YAML:
// generator template pools, the static boss catalog, quest giver NPCs,
// and moral dilemmas.
package content

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/planebound/planebound-api/internal/entities"
	"github.com/planebound/planebound-api/internal/errors"
)

//go:embed tables.yaml
var tablesYAML []byte

//go:embed bosses.yaml
var bossesYAML []byte

//go:embed npcs.yaml
var npcsYAML []byte

//go:embed dilemmas.yaml
var dilemmasYAML []byte

// Pool is one named template pool
type Pool struct {
	Weight int      `yaml:"weight"`
	Items  []string `yaml:"items"`
}

// NPC is a quest giver entry
type NPC struct {
	Name            string  `yaml:"name"`
	Role            string  `yaml:"role"`
	Trustworthiness float64 `yaml:"trustworthiness"`
}

// DilemmaOption is one labeled choice within a dilemma
type DilemmaOption struct {
	Label     string `yaml:"label"`
	Alignment string `yaml:"alignment"`
}

// Dilemma is a moral choice attached to high-creativity quests
type Dilemma struct {
	Prompt  string          `yaml:"prompt"`
	Options []DilemmaOption `yaml:"options"`
}

type bossEntry struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	MaxHealth   int      `yaml:"max_health"`
	Difficulty  int      `yaml:"difficulty"`
	Location    string   `yaml:"location"`
	Abilities   []string `yaml:"abilities"`
	Weaknesses  []string `yaml:"weaknesses"`
	Resistances []string `yaml:"resistances"`
}

// LoadPools parses the embedded generator pools
func LoadPools() (map[string]Pool, error) {
	pools := map[string]Pool{}
	if err := yaml.Unmarshal(tablesYAML, &pools); err != nil {
		return nil, errors.Wrap(err, "failed to parse embedded generator pools")
	}
	return pools, nil
}

// LoadBossCatalog parses the embedded boss catalog. Every boss starts
// at full health and undefeated.
func LoadBossCatalog() ([]*entities.Boss, error) {
	var raw []bossEntry
	if err := yaml.Unmarshal(bossesYAML, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse embedded boss catalog")
	}

	bosses := make([]*entities.Boss, 0, len(raw))
	for _, b := range raw {
		bosses = append(bosses, &entities.Boss{
			ID:          b.ID,
			Name:        b.Name,
			Health:      b.MaxHealth,
			MaxHealth:   b.MaxHealth,
			Difficulty:  b.Difficulty,
			Location:    b.Location,
			Abilities:   b.Abilities,
			Weaknesses:  b.Weaknesses,
			Resistances: b.Resistances,
		})
	}
	return bosses, nil
}

// LoadNPCs parses the embedded quest giver catalog
func LoadNPCs() ([]NPC, error) {
	var npcs []NPC
	if err := yaml.Unmarshal(npcsYAML, &npcs); err != nil {
		return nil, errors.Wrap(err, "failed to parse embedded NPC catalog")
	}
	return npcs, nil
}

// LoadDilemmas parses the embedded moral dilemma catalog
func LoadDilemmas() ([]Dilemma, error) {
	var dilemmas []Dilemma
	if err := yaml.Unmarshal(dilemmasYAML, &dilemmas); err != nil {
		return nil, errors.Wrap(err, "failed to parse embedded dilemma catalog")
	}
	return dilemmas, nil
}
