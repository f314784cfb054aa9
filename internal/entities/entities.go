package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Compile-time checks that game objects satisfy core.Entity, so they
// can flow through toolkit code that works on entity identity.
var (
	_ core.Entity = (*Card)(nil)
	_ core.Entity = (*Player)(nil)
	_ core.Entity = (*Boss)(nil)
	_ core.Entity = (*Quest)(nil)
	_ core.Entity = (*Item)(nil)
	_ core.Entity = (*Encounter)(nil)
)
