// Package narrator derives personality-flavored game content from the
// template generator: encounters, quests, boss behavior, and advisory
// player hints. It reads the active personality and its inputs, returns
// richer records, and never mutates the generator or the session store.
package narrator

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/planebound/planebound-api/internal/content"
	"github.com/planebound/planebound-api/internal/entities"
	"github.com/planebound/planebound-api/internal/errors"
	"github.com/planebound/planebound-api/internal/generator"
	"github.com/planebound/planebound-api/internal/pkg/clock"
)

// Trait thresholds used across derivations
const (
	highCreativity     = 0.7
	mediumCreativity   = 0.4
	questCreativity    = 0.6
	highDanger         = 0.7
	lowDanger          = 0.4
	extremeDanger      = 0.8
	tacticalDanger     = 0.6
	trustworthyMinimum = 0.5
)

var (
	specialMechanics = []string{
		"shifting terrain reshuffles the battlefield each turn",
		"mana surges double the next spell's effect",
		"echo magic repeats the last spell played",
	}

	environmentEffects = []string{
		"a low mist halves visibility",
		"arcane static taxes every spell by one mana",
		"unstable ground staggers creatures that attack",
	}

	bossDialogue = map[string][]string{
		"encounter_start": {
			"You should not have come this far.",
			"Another challenger for my collection.",
			"The planes themselves sent you to me.",
		},
		"half_health": {
			"Enough games. Witness my true form!",
			"You fight well. It changes nothing.",
			"Pain is simply a doorway.",
		},
		"defeated": {
			"Impossible... the prophecy...",
			"Well fought. The way is open.",
			"This plane... was never mine to keep...",
		},
	}
)

// QuestContent is a generated quest plus the narrative trimmings the
// active personality adds on top
type QuestContent struct {
	Quest           *entities.Quest  `json:"quest"`
	Narrative       string           `json:"narrative"`
	BonusObjectives []string         `json:"bonus_objectives,omitempty"`
	MoralChoice     *content.Dilemma `json:"moral_choice,omitempty"`
	QuestGiver      *content.NPC     `json:"quest_giver,omitempty"`
}

// AdaptiveStrategy flags boss adjustments derived from the session state
type AdaptiveStrategy struct {
	TargetCreatures bool `json:"target_creatures"`
	CounterSpells   bool `json:"counter_spells"`
	Aggressive      bool `json:"aggressive"`
	Unpredictable   bool `json:"unpredictable"`
}

// PhaseTransition is one step of a boss's escalation schedule
type PhaseTransition struct {
	HealthFraction float64 `json:"health_fraction"`
	Effect         string  `json:"effect"`
}

// BossBehavior is the derived behavior profile for an active boss
type BossBehavior struct {
	Tactics          []string          `json:"tactics,omitempty"`
	Dialogue         map[string]string `json:"dialogue"`
	AdaptiveStrategy AdaptiveStrategy  `json:"adaptive_strategy"`
	PhaseTransitions []PhaseTransition `json:"phase_transitions"`
}

// Config holds the dependencies for the narrator
type Config struct {
	// Generator supplies the composite builders; required
	Generator *generator.Generator
	// Roller supplies randomness; defaults to dice.DefaultRoller
	Roller dice.Roller
	// Clock stamps story events; defaults to the real clock
	Clock clock.Clock
	// NPCs is the quest giver catalog; defaults to the embedded one
	NPCs []content.NPC
	// Dilemmas is the moral choice catalog; defaults to the embedded one
	Dilemmas []content.Dilemma
}

// Narrator wraps the generator with a personality and a bounded story log
type Narrator struct {
	gen      *generator.Generator
	roller   dice.Roller
	clock    clock.Clock
	npcs     []content.NPC
	dilemmas []content.Dilemma

	mu      sync.Mutex
	current Personality
	log     []StoryEvent
}

// New creates a narrator with the default personality active
func New(cfg *Config) (*Narrator, error) {
	if cfg == nil || cfg.Generator == nil {
		return nil, errors.InvalidArgument("generator is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	npcs := cfg.NPCs
	if npcs == nil {
		loaded, err := content.LoadNPCs()
		if err != nil {
			return nil, err
		}
		npcs = loaded
	}
	dilemmas := cfg.Dilemmas
	if dilemmas == nil {
		loaded, err := content.LoadDilemmas()
		if err != nil {
			return nil, err
		}
		dilemmas = loaded
	}

	return &Narrator{
		gen:      cfg.Generator,
		roller:   roller,
		clock:    c,
		npcs:     npcs,
		dilemmas: dilemmas,
		current:  personalityCatalog[PersonalityDefault],
	}, nil
}

// SetPersonality switches the active personality. An unknown key keeps
// the current personality and logs a warning; the call is never fatal.
func (n *Narrator) SetPersonality(key string) {
	p, ok := personalityCatalog[key]
	if !ok {
		slog.Warn("unknown personality, keeping current",
			"requested", key,
			"current", n.Personality().Name,
		)
		return
	}

	n.mu.Lock()
	n.current = p
	n.mu.Unlock()
}

// Personality returns the active personality's trait vector
func (n *Narrator) Personality() Personality {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// GenerateEncounter builds an encounter and flavors it by the active
// personality: narrative verbosity follows creativity, difficulty
// shifts with danger, and mechanics and environment effects appear at
// the high end of the traits. The result is recorded in the story log.
func (n *Narrator) GenerateEncounter() (*entities.Encounter, error) {
	enc, err := n.gen.BuildEncounter()
	if err != nil {
		return nil, err
	}

	p := n.Personality()

	enc.Narrative = n.encounterNarrative(p, enc)
	enc.Difficulty = adjustDifficulty(enc.Difficulty, p.Danger)

	if p.Creativity > highCreativity {
		enc.SpecialMechanics = append(enc.SpecialMechanics, n.pick(specialMechanics))
	}
	if p.Danger > extremeDanger {
		enc.SpecialMechanics = append(enc.SpecialMechanics, "the enemy strikes first every combat")
	}
	if n.chance(p.Creativity) {
		enc.EnvironmentEffect = n.pick(environmentEffects)
	}

	n.record(enc, fmt.Sprintf("Encounter: %s. %s", enc.Name, enc.Narrative), p)
	return enc, nil
}

func (n *Narrator) encounterNarrative(p Personality, enc *entities.Encounter) string {
	switch {
	case p.Creativity > highCreativity:
		return fmt.Sprintf(
			"The air thickens as you approach %s. %s Old magic clings to the stones here, and the %s knows you have come.",
			enc.Environment, enc.Description, enc.EnemyType,
		)
	case p.Creativity > mediumCreativity:
		return fmt.Sprintf("%s A %s stands between you and %s.", enc.Description, enc.EnemyType, enc.Reward)
	default:
		return fmt.Sprintf("A %s attacks.", enc.EnemyType)
	}
}

// GenerateQuest builds a quest and attaches narrative, conditional
// bonus objectives, an optional moral choice, and a quest giver chosen
// by trustworthiness unless the personality is dangerous.
func (n *Narrator) GenerateQuest() (*QuestContent, error) {
	quest, err := n.gen.BuildQuest()
	if err != nil {
		return nil, err
	}

	p := n.Personality()

	qc := &QuestContent{
		Quest:     quest,
		Narrative: fmt.Sprintf("Word spreads of a task worth taking: %s.", quest.Objective),
	}

	if p.Creativity > questCreativity {
		qc.BonusObjectives = append(qc.BonusObjectives, "Bonus: complete the quest without losing a creature")
	}
	if p.Danger > highDanger {
		qc.BonusObjectives = append(qc.BonusObjectives,
			fmt.Sprintf("Bonus: complete the quest within %d turns", 5+n.rollRange(1, 5)))
	}

	if p.Creativity > questCreativity && len(n.dilemmas) > 0 {
		dilemma := n.dilemmas[n.rollRange(1, len(n.dilemmas))-1]
		qc.MoralChoice = &dilemma
	}

	if giver := n.pickQuestGiver(p); giver != nil {
		qc.QuestGiver = giver
	}

	n.record(quest, fmt.Sprintf("Quest: %s. %s", quest.Title, quest.Objective), p)
	return qc, nil
}

// pickQuestGiver filters the NPC catalog by trustworthiness unless the
// active personality is dangerous enough not to care
func (n *Narrator) pickQuestGiver(p Personality) *content.NPC {
	candidates := n.npcs
	if p.Danger <= highDanger {
		trusted := make([]content.NPC, 0, len(n.npcs))
		for _, npc := range n.npcs {
			if npc.Trustworthiness >= trustworthyMinimum {
				trusted = append(trusted, npc)
			}
		}
		if len(trusted) > 0 {
			candidates = trusted
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	giver := candidates[n.rollRange(1, len(candidates))-1]
	return &giver
}

// GenerateBossBehavior derives a behavior profile for the given boss
// from the active personality and the current session state. It reads
// the state; it never mutates it.
func (n *Narrator) GenerateBossBehavior(boss *entities.Boss, state *entities.GameState) (*BossBehavior, error) {
	if boss == nil {
		return nil, errors.InvalidArgument("boss is required")
	}

	p := n.Personality()

	behavior := &BossBehavior{
		Dialogue: map[string]string{
			"encounter_start": n.pick(bossDialogue["encounter_start"]),
			"half_health":     n.pick(bossDialogue["half_health"]),
			"defeated":        n.pick(bossDialogue["defeated"]),
		},
		PhaseTransitions: []PhaseTransition{
			{HealthFraction: 0.75, Effect: fmt.Sprintf("%s grows cautious and raises a warding shield", boss.Name)},
			{HealthFraction: 0.5, Effect: fmt.Sprintf("%s unleashes %s with doubled fury", boss.Name, firstOr(boss.Abilities, "a desperate assault"))},
			{HealthFraction: 0.25, Effect: fmt.Sprintf("%s abandons all defense and attacks with everything left", boss.Name)},
		},
	}

	if p.Danger > tacticalDanger {
		behavior.Tactics = append(behavior.Tactics, "focus attacks on the weakest player")
	}
	if p.Creativity > highCreativity {
		behavior.Tactics = append(behavior.Tactics, "rotate resistances to counter the last spell type played")
	}

	if state != nil {
		creatures, spells := countBoardPresence(state)
		behavior.AdaptiveStrategy = AdaptiveStrategy{
			TargetCreatures: creatures > 3,
			CounterSpells:   spells > 5,
			Aggressive:      p.Danger > tacticalDanger,
			Unpredictable:   p.Creativity > highCreativity,
		}
	}

	return behavior, nil
}

// SuggestPlayerAction returns advisory hints from simple threshold
// checks on the session state. Purely informational; nothing here is
// enforced and nothing is mutated.
func (n *Narrator) SuggestPlayerAction(state *entities.GameState) []string {
	if state == nil {
		return nil
	}

	var suggestions []string

	if boss := state.CurrentBoss; boss != nil {
		if boss.HealthFraction() <= 0.25 {
			suggestions = append(suggestions, "The boss is nearly down. Commit everything to damage.")
		} else if len(boss.Weaknesses) > 0 {
			suggestions = append(suggestions, fmt.Sprintf("Exploit the boss's weakness to %s.", boss.Weaknesses[0]))
		}
	}

	for _, player := range state.Players {
		if player.MaxHealth > 0 && float64(player.Health)/float64(player.MaxHealth) < 0.3 {
			suggestions = append(suggestions, fmt.Sprintf("%s is in danger. Heal or stabilize before attacking.", player.Name))
		}
		if len(player.Hand) == 0 {
			suggestions = append(suggestions, fmt.Sprintf("%s has no cards in hand. Draw before committing to combat.", player.Name))
		} else if len(player.Hand) > 5 {
			suggestions = append(suggestions, fmt.Sprintf("%s is holding too many cards. Develop the battlefield.", player.Name))
		}
	}

	return suggestions
}

func countBoardPresence(state *entities.GameState) (creatures, spells int) {
	for _, player := range state.Players {
		for _, card := range player.Battlefield {
			if card.IsCreature() {
				creatures++
			}
		}
		for _, card := range player.Hand {
			if card.IsSpell() {
				spells++
			}
		}
	}
	return creatures, spells
}

func adjustDifficulty(base int, danger float64) int {
	switch {
	case danger > highDanger:
		base++
	case danger < lowDanger:
		base--
	}
	if base < 1 {
		return 1
	}
	if base > 5 {
		return 5
	}
	return base
}

func firstOr(items []string, fallback string) string {
	if len(items) > 0 {
		return items[0]
	}
	return fallback
}

// pick selects one entry from a fixed catalog uniformly
func (n *Narrator) pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[n.rollRange(1, len(options))-1]
}

// chance runs a Bernoulli trial with probability p
func (n *Narrator) chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return n.rollRange(1, 100) <= int(p*100)
}

// rollRange returns a uniform value in [low, high]
func (n *Narrator) rollRange(low, high int) int {
	if high <= low {
		return low
	}
	roll, err := n.roller.Roll(high - low + 1)
	if err != nil {
		slog.Warn("roller failed, falling back to low bound", "error", err)
		return low
	}
	return low + roll - 1
}
