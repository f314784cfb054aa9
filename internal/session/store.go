// Package session implements the game state store: the single source
// of truth for a play session. Every transition is a named operation
// that mutates the owned state tree and then notifies subscribed
// observers with one typed change event. Dispatch is synchronous and
// ordered, and fully drains before the operation returns.
package session

import (
	"log/slog"
	"sync"

	"github.com/planebound/planebound-api/internal/content"
	"github.com/planebound/planebound-api/internal/entities"
	"github.com/planebound/planebound-api/internal/errors"
	"github.com/planebound/planebound-api/internal/pkg/clock"
	"github.com/planebound/planebound-api/internal/pkg/idgen"
)

const (
	saveVersion             = "1.0.0"
	defaultStartingLocation = "the Crossroads"
	defaultPlayerHealth     = 20
)

var manaColors = []string{"white", "blue", "black", "red", "green", "colorless"}

// Subscription is an observer registration handle
type Subscription uint64

// Observer receives change events after each store mutation
type Observer func(entities.ChangeEvent)

type observerEntry struct {
	id Subscription
	fn Observer
}

// Config holds the dependencies for the session store
type Config struct {
	// IDGenerator assigns inventory item and quest ids; defaults to a
	// UUID generator
	IDGenerator idgen.Generator
	// Clock stamps save data; defaults to the real clock
	Clock clock.Clock
	// BossCatalog is the static boss set; defaults to the embedded catalog
	BossCatalog []*entities.Boss
	// StartingLocation is where new games begin
	StartingLocation string
}

// Store owns the GameState aggregate and the static boss catalog for
// one session. All external mutation goes through its named operations.
type Store struct {
	idGen            idgen.Generator
	clock            clock.Clock
	startingLocation string

	mu        sync.Mutex
	state     *entities.GameState
	catalog   []*entities.Boss
	observers []observerEntry
	nextSub   Subscription
}

// New creates a session store in the menu phase
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("item")
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	catalog := cfg.BossCatalog
	if catalog == nil {
		loaded, err := content.LoadBossCatalog()
		if err != nil {
			return nil, errors.Wrap(err, "failed to load boss catalog")
		}
		catalog = loaded
	}
	owned := make([]*entities.Boss, len(catalog))
	for i, b := range catalog {
		owned[i] = b.Clone()
	}

	location := cfg.StartingLocation
	if location == "" {
		location = defaultStartingLocation
	}

	return &Store{
		idGen:            idGen,
		clock:            c,
		startingLocation: location,
		state:            entities.NewGameState(),
		catalog:          owned,
	}, nil
}

// Subscribe registers an observer. Observers are notified in
// registration order.
func (s *Store) Subscribe(fn Observer) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	s.observers = append(s.observers, observerEntry{id: s.nextSub, fn: fn})
	return s.nextSub
}

// Unsubscribe removes a previously registered observer. Unknown
// handles are ignored.
func (s *Store) Unsubscribe(sub Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.observers {
		if o.id == sub {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// notify delivers one event to every observer. A panicking observer is
// recovered and logged; the remaining observers still run. Called
// without the store lock held so observers may read back into the
// store.
func (s *Store) notify(event entities.ChangeEvent) {
	s.mu.Lock()
	observers := append([]observerEntry(nil), s.observers...)
	s.mu.Unlock()

	for _, o := range observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("observer panicked during notification",
						"event", event.Type,
						"panic", r,
					)
				}
			}()
			o.fn(event)
		}()
	}
}
