package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// ObjectType defines the category of an object.
type ObjectType int

const (
	ObjectTypeUnknown ObjectType = iota
	ObjectTypeOther
	ObjectTypeContainer
)

// Object defines a type of object/item loaded from asset files.
// Multiple instances can be spawned from one definition.
type Object struct {
	// Aliases are keywords players can use to target this object (e.g., ["sword", "blade"])
	Aliases []string `json:"aliases"`

	// ShortDesc is used in action messages (e.g., "You pick up a rusty sword.")
	ShortDesc string `json:"short_desc"`

	// LongDesc is shown when the object is on the ground in a room
	LongDesc string `json:"long_desc"`

	// DetailedDesc is shown when a player looks at the object
	DetailedDesc string `json:"detailed_desc,omitempty"`

	// TypeStr is the object type from JSON
	TypeStr string `json:"type"`

	// Condition is the starting condition of spawned instances (0-100).
	Condition int `json:"condition,omitempty"`
}

// Type returns the parsed ObjectType from TypeStr.
func (o *Object) Type() ObjectType {
	switch strings.ToLower(o.TypeStr) {
	case "other":
		return ObjectTypeOther
	case "container":
		return ObjectTypeContainer
	default:
		return ObjectTypeUnknown
	}
}

// MatchName returns true if name matches any of this object's aliases (case-insensitive).
func (o *Object) MatchName(name string) bool {
	for _, alias := range o.Aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}

// Validate satisfies storage.ValidatingSpec
func (o *Object) Validate() error {
	el := errors.NewErrorList()
	if len(o.Aliases) < 1 {
		el.Add(fmt.Errorf("object alias is required"))
	}
	if o.ShortDesc == "" {
		el.Add(fmt.Errorf("object short description is required"))
	}
	if o.TypeStr == "" {
		el.Add(fmt.Errorf("object type is required"))
	} else if o.Type() == ObjectTypeUnknown {
		el.Add(fmt.Errorf("object type %q is invalid", o.TypeStr))
	}
	if o.Condition < 0 || o.Condition > 100 {
		el.Add(fmt.Errorf("object condition must be within [0,100]"))
	}
	return el.Err()
}
