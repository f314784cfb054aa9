package narrator

// Personality is a fixed trait vector that parameterizes content
// derivation. All traits are in [0, 1].
type Personality struct {
	Name       string  `json:"name"`
	Creativity float64 `json:"creativity"`
	Danger     float64 `json:"danger"`
	Humor      float64 `json:"humor"`
}

// The four catalog personalities. The catalog is fixed; SetPersonality
// rejects anything else.
const (
	PersonalityDefault      = "default"
	PersonalityCautious     = "cautious"
	PersonalityExperimental = "experimental"
	PersonalityReckless     = "reckless"
)

var personalityCatalog = map[string]Personality{
	PersonalityDefault:      {Name: PersonalityDefault, Creativity: 0.5, Danger: 0.5, Humor: 0.5},
	PersonalityCautious:     {Name: PersonalityCautious, Creativity: 0.3, Danger: 0.2, Humor: 0.4},
	PersonalityExperimental: {Name: PersonalityExperimental, Creativity: 0.9, Danger: 0.5, Humor: 0.7},
	PersonalityReckless:     {Name: PersonalityReckless, Creativity: 0.6, Danger: 0.9, Humor: 0.8},
}

// PersonalityNames returns the catalog keys in a stable order
func PersonalityNames() []string {
	return []string{PersonalityDefault, PersonalityCautious, PersonalityExperimental, PersonalityReckless}
}
