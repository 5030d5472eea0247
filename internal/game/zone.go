package game

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

const (
	ZoneResetNever    = "never"    // Zone never resets
	ZoneResetLifespan = "lifespan" // Zone resets when lifespan is reached
	ZoneResetEmpty    = "empty"    // Zone resets when lifespan is reached and is empty
)

// Zone represents a region in the game world that contains rooms and
// carries the zone's repopulation script. Definitions are immutable
// after load; only the sequential position of directives matters.
type Zone struct {
	Name      string `json:"name"`
	Lifespan  string `json:"lifespan"` // duration string (e.g., "1m", "30s", "2h")
	ResetMode string `json:"reset_mode"`

	// TopRoom is the highest room vnum belonging to this zone.
	TopRoom int `json:"top_room,omitempty"`

	// Directives is the ordered repopulation script. Later directives
	// may depend on earlier ones in the same pass.
	Directives []RawDirective `json:"directives,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (z *Zone) Validate() error {
	el := errors.NewErrorList()

	// Validate reset mode is specified and valid
	switch z.ResetMode {
	case ZoneResetNever, ZoneResetLifespan, ZoneResetEmpty:
		// valid
	case "":
		el.Add(fmt.Errorf("reset_mode is required (must be %s, %s, or %s)",
			ZoneResetNever, ZoneResetLifespan, ZoneResetEmpty))
	default:
		el.Add(fmt.Errorf("invalid reset_mode: %s (must be %s, %s, or %s)",
			z.ResetMode, ZoneResetNever, ZoneResetLifespan, ZoneResetEmpty))
	}

	// Parse and validate lifespan for time-based reset modes
	if z.ResetMode == ZoneResetLifespan || z.ResetMode == ZoneResetEmpty {
		if z.Lifespan == "" {
			el.Add(fmt.Errorf("lifespan is required for reset_mode %s", z.ResetMode))
		} else {
			d, err := time.ParseDuration(z.Lifespan)
			if err != nil {
				el.Add(fmt.Errorf("invalid lifespan %q: %w", z.Lifespan, err))
			} else if d <= 0 {
				el.Add(fmt.Errorf("lifespan must be positive for reset_mode %s", z.ResetMode))
			}
		}
	}

	for i, d := range z.Directives {
		if _, err := d.Compile(); err != nil {
			el.Add(fmt.Errorf("directive %d: %w", i, err))
		}
	}

	return el.Err()
}

// ResetInterval returns the parsed lifespan, or zero if unset.
func (z *Zone) ResetInterval() time.Duration {
	if z.Lifespan == "" {
		return 0
	}
	d, err := time.ParseDuration(z.Lifespan)
	if err != nil {
		return 0
	}
	return d
}

// CompileDirectives compiles the raw script into typed directives,
// preserving order. Zones that passed Validate never fail here.
func (z *Zone) CompileDirectives() ([]Directive, error) {
	compiled := make([]Directive, 0, len(z.Directives))
	for i, d := range z.Directives {
		c, err := d.Compile()
		if err != nil {
			return nil, fmt.Errorf("directive %d: %w", i, err)
		}
		compiled = append(compiled, c)
	}
	return compiled, nil
}
