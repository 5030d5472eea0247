package world

import (
	"time"
)

// LocationKind says what kind of owner an object instance currently has.
type LocationKind int

const (
	LocationNowhere LocationKind = iota
	LocationInRoom
	LocationEquipped
	LocationInInventory
	LocationInContainer
)

// Location describes where an object instance is. The location fields
// are the single source of truth for ownership; the owner's collection
// is an index kept in step with them.
type Location struct {
	Kind LocationKind

	// RoomVnum is set when Kind is LocationInRoom.
	RoomVnum int

	// OwnerId is the owning mobile instance id (equipped/inventory) or
	// container object instance id (in-container).
	OwnerId string
}

// MobileInstance represents a single live occurrence spawned from a
// Mobile definition. Each instance is independently killable and
// carries its own mutable state.
type MobileInstance struct {
	Id         string
	MobileVnum int

	ZoneVnum int
	RoomVnum int

	CurrentHP int
	MaxHP     int

	Active    bool
	CreatedAt time.Time

	Inventory *Inventory
	Equipment *Equipment
}

// ObjectInstance represents a single live occurrence spawned from an
// Object definition. Each instance is independently lootable.
type ObjectInstance struct {
	Id         string
	ObjectVnum int

	// ZoneVnum is the zone the instance was spawned into; population
	// ceilings are counted against it even after the object moves.
	ZoneVnum int

	Location Location

	Condition int
	Active    bool
	CreatedAt time.Time

	// Contents holds nested object instances when this object is used
	// as a container.
	Contents *Inventory
}
