package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// Mobile defines a type of mobile entity loaded from asset files.
// Multiple instances can be spawned from one definition; gameplay
// never mutates the definition itself.
type Mobile struct {
	// Aliases are keywords players can use to target this mobile (e.g., ["guard", "town"])
	Aliases []string `json:"aliases"`

	// ShortDesc is used in action messages (e.g., "The town guard hits you.")
	ShortDesc string `json:"short_desc"`

	// LongDesc is shown when the mobile is in its default position in a room
	LongDesc string `json:"long_desc"`

	// DetailedDesc is shown when a player looks at the mobile
	DetailedDesc string `json:"detailed_desc"`

	Level int `json:"level,omitempty"`
	MaxHP int `json:"max_hp,omitempty"`
}

// MatchName returns true if name matches any of this mobile's aliases (case-insensitive).
func (m *Mobile) MatchName(name string) bool {
	for _, alias := range m.Aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}

// Validate satisfies storage.ValidatingSpec
func (m *Mobile) Validate() error {
	el := errors.NewErrorList()
	if len(m.Aliases) < 1 {
		el.Add(fmt.Errorf("mobile alias is required"))
	}
	if m.ShortDesc == "" {
		el.Add(fmt.Errorf("mobile short description is required"))
	}
	if m.MaxHP < 0 {
		el.Add(fmt.Errorf("mobile max_hp cannot be negative"))
	}
	return el.Err()
}
