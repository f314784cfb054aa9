// Package generator implements the template content generator: named
// weighted pools of template strings, recursive [placeholder] expansion
// with a bounded round cap, and composite builders that assemble
// encounters, bosses, quests, and cards from pool expansions.
package generator

import (
	"log/slog"
	"regexp"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/planebound/planebound-api/internal/content"
	"github.com/planebound/planebound-api/internal/errors"
	"github.com/planebound/planebound-api/internal/pkg/clock"
	"github.com/planebound/planebound-api/internal/pkg/idgen"
)

const (
	// EmptyResult is returned when a registered pool has no items.
	// Soft failure: presentation code never needs to special-case an
	// empty pool.
	EmptyResult = "Empty generator"

	// maxRounds caps placeholder substitution. A pool that references
	// itself, directly or transitively, terminates here with the
	// remaining placeholders left as literal text.
	maxRounds = 10
)

var placeholderPattern = regexp.MustCompile(`\[(\w+)\]`)

// Record is one history entry for a top-level Expand call
type Record struct {
	GeneratorName string    `json:"generator_name"`
	Result        string    `json:"result"`
	Timestamp     time.Time `json:"timestamp"`
}

type pool struct {
	weight int
	items  []string
}

// Config holds the dependencies for the generator
type Config struct {
	// Roller supplies all randomness; defaults to dice.DefaultRoller
	Roller dice.Roller
	// Clock stamps history records; defaults to the real clock
	Clock clock.Clock
	// IDGenerator assigns ids to built content; defaults to a UUID generator
	IDGenerator idgen.Generator
	// Pools seeds the initial pool table, typically content.LoadPools()
	Pools map[string]content.Pool
}

// Generator owns the pool table and expansion history
type Generator struct {
	roller dice.Roller
	clock  clock.Clock
	idGen  idgen.Generator

	mu      sync.RWMutex
	pools   map[string]pool
	history []Record
}

// New creates a generator seeded with the configured pools
func New(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("content")
	}

	g := &Generator{
		roller: roller,
		clock:  c,
		idGen:  idGen,
		pools:  make(map[string]pool, len(cfg.Pools)),
	}
	for name, p := range cfg.Pools {
		g.pools[name] = pool{weight: p.Weight, items: append([]string(nil), p.Items...)}
	}
	return g, nil
}

// Register inserts or overwrites a pool. Item content is not validated
// and the last write wins on a name collision. The weight is pool
// metadata only; selection within a pool is uniform.
func (g *Generator) Register(name string, items []string, weight int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pools[name] = pool{weight: weight, items: append([]string(nil), items...)}
}

// Names returns the registered pool names
func (g *Generator) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	names := make([]string, 0, len(g.pools))
	for name := range g.pools {
		names = append(names, name)
	}
	return names
}

// Expand picks one item from the named pool uniformly at random,
// resolves its placeholders, and records the result in the history.
// Returns a NotFound error for an unregistered name. An empty pool
// yields the EmptyResult sentinel instead of an error.
func (g *Generator) Expand(name string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.pools[name]
	if !ok {
		return "", errors.NotFoundf("generator %q is not registered", name)
	}

	result := g.resolve(g.pickLocked(p))
	g.history = append(g.history, Record{
		GeneratorName: name,
		Result:        result,
		Timestamp:     g.clock.Now(),
	})
	return result, nil
}

// History returns a copy of the top-level expansion log. Nested
// expansions triggered by placeholder substitution are not logged.
func (g *Generator) History() []Record {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]Record(nil), g.history...)
}

// pickLocked selects one item uniformly. Callers hold g.mu.
func (g *Generator) pickLocked(p pool) string {
	if len(p.items) == 0 {
		return EmptyResult
	}
	if len(p.items) == 1 {
		return p.items[0]
	}

	roll, err := g.roller.Roll(len(p.items))
	if err != nil {
		slog.Warn("roller failed, falling back to first item", "error", err)
		return p.items[0]
	}
	return p.items[roll-1]
}

// resolve substitutes registered [name] placeholders round by round.
// Unregistered names stay as literal text. Substituted items may
// themselves contain placeholders, picked up on the next round, until
// maxRounds is reached. Callers hold g.mu.
func (g *Generator) resolve(s string) string {
	for round := 0; round < maxRounds; round++ {
		replaced := false
		s = placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
			name := match[1 : len(match)-1]
			p, ok := g.pools[name]
			if !ok {
				return match
			}
			replaced = true
			return g.pickLocked(p)
		})
		if !replaced {
			return s
		}
	}
	slog.Debug("placeholder expansion hit round cap", "remaining", s)
	return s
}

// rollRange returns a uniform value in [low, high]
func (g *Generator) rollRange(low, high int) int {
	if high <= low {
		return low
	}
	roll, err := g.roller.Roll(high - low + 1)
	if err != nil {
		slog.Warn("roller failed, falling back to low bound", "error", err)
		return low
	}
	return low + roll - 1
}
