package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Door defines an openable barrier on an exit and its authored
// starting state. A locked door must also start closed.
type Door struct {
	Closed bool `json:"closed,omitempty"`
	Locked bool `json:"locked,omitempty"`
}

// Validate checks that the starting state is consistent.
func (d *Door) Validate() error {
	if d.Locked && !d.Closed {
		return fmt.Errorf("locked door must also be closed")
	}
	return nil
}

// Exit defines a destination for movement from a room.
type Exit struct {
	RoomVnum int   `json:"room_vnum"`
	Door     *Door `json:"door,omitempty"`
}

// Room represents a location within a zone.
type Room struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ZoneVnum    int              `json:"zone_vnum"`
	Exits       map[string]*Exit `json:"exits,omitempty"` // direction -> destination
}

// Validate satisfies storage.ValidatingSpec.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	if r.ZoneVnum <= 0 {
		el.Add(fmt.Errorf("zone_vnum is required"))
	}

	for dir, exit := range r.Exits {
		if !knownDirection(dir) {
			el.Add(fmt.Errorf("exit %s: unknown direction", dir))
		}
		if exit.RoomVnum <= 0 {
			el.Add(fmt.Errorf("exit %s: room_vnum is required", dir))
		}
		if exit.Door != nil {
			if err := exit.Door.Validate(); err != nil {
				el.Add(fmt.Errorf("exit %s: %w", dir, err))
			}
		}
	}

	return el.Err()
}

func knownDirection(dir string) bool {
	for _, d := range directions {
		if d == dir {
			return true
		}
	}
	return false
}
