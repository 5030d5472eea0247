package world

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hollowmere/mud/internal/game"
)

// Spawner turns definitions into fresh live instances and performs
// placement. Wear eligibility is the caller's responsibility; the
// spawner does not veto placement.
type Spawner struct {
	mobiles *MobileRegistry
	objects *ObjectRegistry
}

// NewSpawner creates a spawner recording instances into the given
// registries.
func NewSpawner(mobiles *MobileRegistry, objects *ObjectRegistry) *Spawner {
	return &Spawner{
		mobiles: mobiles,
		objects: objects,
	}
}

// CreateMobile creates a new mobile instance from a definition. The
// instance gets its own id, stats copied from the definition, and is
// not yet placed or tracked.
func (s *Spawner) CreateMobile(vnum int, def *game.Mobile) (*MobileInstance, error) {
	if def == nil {
		return nil, fmt.Errorf("mobile definition is nil")
	}

	return &MobileInstance{
		Id:         uuid.NewString(),
		MobileVnum: vnum,
		CurrentHP:  def.MaxHP,
		MaxHP:      def.MaxHP,
		Active:     true,
		CreatedAt:  time.Now(),
		Inventory:  NewInventory(),
		Equipment:  NewEquipment(),
	}, nil
}

// CreateObject creates a new object instance from a definition. The
// instance gets its own id and is not yet placed or tracked.
func (s *Spawner) CreateObject(vnum int, def *game.Object) (*ObjectInstance, error) {
	if def == nil {
		return nil, fmt.Errorf("object definition is nil")
	}

	oi := &ObjectInstance{
		Id:         uuid.NewString(),
		ObjectVnum: vnum,
		Condition:  def.Condition,
		Active:     true,
		CreatedAt:  time.Now(),
	}
	if def.Type() == game.ObjectTypeContainer {
		oi.Contents = NewInventory()
	}
	return oi, nil
}

// SpawnMobileInRoom creates a mobile instance, places it in a room, and
// tracks it.
func (s *Spawner) SpawnMobileInRoom(vnum int, def *game.Mobile, zoneVnum, roomVnum int) (*MobileInstance, error) {
	mi, err := s.CreateMobile(vnum, def)
	if err != nil {
		return nil, err
	}

	mi.ZoneVnum = zoneVnum
	mi.RoomVnum = roomVnum
	s.mobiles.Track(mi)
	return mi, nil
}

// SpawnObjectInRoom creates an object instance, drops it in a room, and
// tracks it.
func (s *Spawner) SpawnObjectInRoom(vnum int, def *game.Object, zoneVnum, roomVnum int) (*ObjectInstance, error) {
	oi, err := s.CreateObject(vnum, def)
	if err != nil {
		return nil, err
	}

	oi.ZoneVnum = zoneVnum
	oi.Location = Location{Kind: LocationInRoom, RoomVnum: roomVnum}
	s.objects.Track(oi)
	return oi, nil
}

// Equip places an object in a wear slot on a mobile. A previous
// occupant of the slot is displaced into the mobile's inventory, never
// discarded.
func (s *Spawner) Equip(oi *ObjectInstance, mi *MobileInstance, slot int) error {
	if oi == nil {
		return fmt.Errorf("object instance is nil")
	}
	if mi == nil {
		return fmt.Errorf("mobile instance is nil")
	}

	prev := mi.Equipment.Set(slot, oi)
	if prev != nil {
		mi.Inventory.Add(prev)
		s.objects.Place(prev, Location{Kind: LocationInInventory, OwnerId: mi.Id})
	}
	s.objects.Place(oi, Location{Kind: LocationEquipped, OwnerId: mi.Id})
	return nil
}

// Give adds an object to a mobile's carried inventory.
func (s *Spawner) Give(oi *ObjectInstance, mi *MobileInstance) error {
	if oi == nil {
		return fmt.Errorf("object instance is nil")
	}
	if mi == nil {
		return fmt.Errorf("mobile instance is nil")
	}

	mi.Inventory.Add(oi)
	s.objects.Place(oi, Location{Kind: LocationInInventory, OwnerId: mi.Id})
	return nil
}

// PutInContainer nests an object inside a container instance.
func (s *Spawner) PutInContainer(oi *ObjectInstance, container *ObjectInstance) error {
	if oi == nil {
		return fmt.Errorf("object instance is nil")
	}
	if container == nil {
		return fmt.Errorf("container instance is nil")
	}

	if container.Contents == nil {
		container.Contents = NewInventory()
	}
	container.Contents.Add(oi)
	s.objects.Place(oi, Location{Kind: LocationInContainer, OwnerId: container.Id})
	return nil
}
