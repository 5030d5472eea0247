package world

import (
	"fmt"
	"sync"

	"github.com/hollowmere/mud/internal/game"
)

// DoorFlags is the live state of a door on one room exit.
type DoorFlags uint8

const (
	DoorExists DoorFlags = 1 << iota
	DoorClosed
	DoorLocked
)

// RoomState holds the mutable runtime state of a room: the live door
// flags per exit. Room descriptions and exits themselves stay on the
// immutable definition.
type RoomState struct {
	Vnum     int
	ZoneVnum int

	mu    sync.Mutex
	doors map[string]DoorFlags
}

// NewRoomState instantiates runtime state from a room definition,
// seeding door flags from the authored starting state.
func NewRoomState(vnum int, def *game.Room) *RoomState {
	rs := &RoomState{
		Vnum:     vnum,
		ZoneVnum: def.ZoneVnum,
		doors:    make(map[string]DoorFlags),
	}
	for dir, exit := range def.Exits {
		var flags DoorFlags
		if exit.Door != nil {
			flags = DoorExists
			if exit.Door.Closed {
				flags |= DoorClosed
			}
			if exit.Door.Locked {
				flags |= DoorLocked
			}
		}
		rs.doors[dir] = flags
	}
	return rs
}

// Door returns the live door flags for a direction.
func (rs *RoomState) Door(direction string) (DoorFlags, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	flags, ok := rs.doors[direction]
	return flags, ok
}

// SetDoor applies a door state to an exit. Setting any state implies
// the door exists; open clears closed and locked, closed clears locked,
// locked sets both.
func (rs *RoomState) SetDoor(direction string, state game.DoorState) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if _, ok := rs.doors[direction]; !ok {
		return fmt.Errorf("room %d has no %s exit", rs.Vnum, direction)
	}

	flags := DoorExists
	switch state {
	case game.DoorStateOpen:
		// exists only
	case game.DoorStateClosed:
		flags |= DoorClosed
	case game.DoorStateLocked:
		flags |= DoorClosed | DoorLocked
	default:
		return fmt.Errorf("unknown door state %d", state)
	}

	rs.doors[direction] = flags
	return nil
}
