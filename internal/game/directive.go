package game

import (
	"fmt"
)

// directions maps the legacy numeric direction encoding to exit keys.
var directions = []string{"north", "east", "south", "west", "up", "down"}

// DirectionName returns the exit key for a legacy direction number.
func DirectionName(n int) (string, bool) {
	if n < 0 || n >= len(directions) {
		return "", false
	}
	return directions[n], true
}

// WearSlotCount is the number of equipment positions on a mobile.
// Slots are addressed by number in reset directives.
const WearSlotCount = 18

// DoorState is the target state of a SetDoor directive.
type DoorState int

const (
	DoorStateOpen   DoorState = iota // closed and locked cleared
	DoorStateClosed                  // closed set, locked cleared
	DoorStateLocked                  // closed and locked set
)

// RawDirective is one row of a zone's repopulation script as authored:
// a one-letter command and four integers whose meaning depends on the
// command. The layout matches the legacy zone file format exactly.
//
//	M force mobVnum maxInZone roomVnum
//	O force objVnum maxInZone roomVnum
//	E force objVnum maxInZone wearSlot
//	G force objVnum maxInZone -
//	D force roomVnum direction doorState
//	P force objVnum maxInZone containerVnum
//	R force roomVnum objVnum -
type RawDirective struct {
	Command string `json:"command"`
	Args    [4]int `json:"args"`
}

// Directive is one compiled step of a zone's repopulation script.
// The concrete type carries strongly-typed fields; validation happens
// once, at zone load.
type Directive interface {
	directive()
}

// SpawnMobile places a new mobile instance in a room ("M").
type SpawnMobile struct {
	Force      bool
	MobileVnum int
	MaxInZone  int
	RoomVnum   int
}

// SpawnObject places a new object instance in a room ("O").
type SpawnObject struct {
	Force      bool
	ObjectVnum int
	MaxInZone  int
	RoomVnum   int
}

// EquipObject equips a new object on the pass's most recently spawned
// mobile ("E").
type EquipObject struct {
	Force      bool
	ObjectVnum int
	MaxInZone  int
	Slot       int
}

// GiveObject adds a new object to the inventory of the pass's most
// recently spawned mobile ("G").
type GiveObject struct {
	Force      bool
	ObjectVnum int
	MaxInZone  int
}

// SetDoor sets the state of a door on a room exit ("D").
type SetDoor struct {
	RoomVnum  int
	Direction string
	State     DoorState
}

// PutObject nests a new object inside the pass's most recently spawned
// object, which must have been spawned from ContainerVnum ("P").
type PutObject struct {
	Force         bool
	ObjectVnum    int
	MaxInZone     int
	ContainerVnum int
}

// RemoveObject removes one live instance of a prototype from a room ("R").
type RemoveObject struct {
	RoomVnum   int
	ObjectVnum int
}

func (SpawnMobile) directive()  {}
func (SpawnObject) directive()  {}
func (EquipObject) directive()  {}
func (GiveObject) directive()   {}
func (SetDoor) directive()      {}
func (PutObject) directive()    {}
func (RemoveObject) directive() {}

// Compile turns a raw directive row into its typed form, rejecting
// unknown commands and out-of-range argument values.
func (r RawDirective) Compile() (Directive, error) {
	force := r.Args[0] != 0

	switch r.Command {
	case "M":
		if err := requirePositive("mobile vnum", r.Args[1]); err != nil {
			return nil, err
		}
		if err := requirePositive("room vnum", r.Args[3]); err != nil {
			return nil, err
		}
		return SpawnMobile{
			Force:      force,
			MobileVnum: r.Args[1],
			MaxInZone:  r.Args[2],
			RoomVnum:   r.Args[3],
		}, nil

	case "O":
		if err := requirePositive("object vnum", r.Args[1]); err != nil {
			return nil, err
		}
		if err := requirePositive("room vnum", r.Args[3]); err != nil {
			return nil, err
		}
		return SpawnObject{
			Force:      force,
			ObjectVnum: r.Args[1],
			MaxInZone:  r.Args[2],
			RoomVnum:   r.Args[3],
		}, nil

	case "E":
		if err := requirePositive("object vnum", r.Args[1]); err != nil {
			return nil, err
		}
		if r.Args[3] < 0 || r.Args[3] >= WearSlotCount {
			return nil, fmt.Errorf("wear slot %d out of range [0,%d)", r.Args[3], WearSlotCount)
		}
		return EquipObject{
			Force:      force,
			ObjectVnum: r.Args[1],
			MaxInZone:  r.Args[2],
			Slot:       r.Args[3],
		}, nil

	case "G":
		if err := requirePositive("object vnum", r.Args[1]); err != nil {
			return nil, err
		}
		return GiveObject{
			Force:      force,
			ObjectVnum: r.Args[1],
			MaxInZone:  r.Args[2],
		}, nil

	case "D":
		if err := requirePositive("room vnum", r.Args[1]); err != nil {
			return nil, err
		}
		dir, ok := DirectionName(r.Args[2])
		if !ok {
			return nil, fmt.Errorf("direction %d out of range [0,%d)", r.Args[2], len(directions))
		}
		if r.Args[3] < int(DoorStateOpen) || r.Args[3] > int(DoorStateLocked) {
			return nil, fmt.Errorf("door state %d out of range [0,2]", r.Args[3])
		}
		return SetDoor{
			RoomVnum:  r.Args[1],
			Direction: dir,
			State:     DoorState(r.Args[3]),
		}, nil

	case "P":
		if err := requirePositive("object vnum", r.Args[1]); err != nil {
			return nil, err
		}
		if err := requirePositive("container vnum", r.Args[3]); err != nil {
			return nil, err
		}
		return PutObject{
			Force:         force,
			ObjectVnum:    r.Args[1],
			MaxInZone:     r.Args[2],
			ContainerVnum: r.Args[3],
		}, nil

	case "R":
		if err := requirePositive("room vnum", r.Args[1]); err != nil {
			return nil, err
		}
		if err := requirePositive("object vnum", r.Args[2]); err != nil {
			return nil, err
		}
		return RemoveObject{
			RoomVnum:   r.Args[1],
			ObjectVnum: r.Args[2],
		}, nil

	default:
		return nil, fmt.Errorf("unknown directive command %q", r.Command)
	}
}

func requirePositive(name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, v)
	}
	return nil
}
