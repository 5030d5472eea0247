package world

import (
	"sync"

	"github.com/hollowmere/mud/internal/game"
)

// State is the single source of truth for all mutable game state: live
// instances, door flags, zone clocks, and player locations. Definition
// catalogs are reachable through it but never mutated by gameplay.
type State struct {
	dict *game.Dictionary

	mobiles *MobileRegistry
	objects *ObjectRegistry
	spawner *Spawner

	mu      sync.RWMutex
	rooms   map[int]*RoomState
	zones   map[int]*ZoneState
	players map[string]*PlayerState
}

// PlayerState holds the location of an active player. The session
// layer owns everything else about a player; repopulation only needs
// to know where they are.
type PlayerState struct {
	Id       string
	ZoneVnum int
	RoomVnum int
}

// NewState builds runtime state from the definition catalogs: one
// RoomState per room and one ZoneState per zone.
func NewState(dict *game.Dictionary) *State {
	mobiles := NewMobileRegistry()
	objects := NewObjectRegistry()

	s := &State{
		dict:    dict,
		mobiles: mobiles,
		objects: objects,
		spawner: NewSpawner(mobiles, objects),
		rooms:   make(map[int]*RoomState),
		zones:   make(map[int]*ZoneState),
		players: make(map[string]*PlayerState),
	}

	for vnum, room := range dict.Rooms.GetAll() {
		s.rooms[vnum] = NewRoomState(vnum, room)
	}
	for vnum := range dict.Zones.GetAll() {
		s.zones[vnum] = NewZoneState(vnum)
	}

	return s
}

// Dictionary returns the definition catalogs.
func (s *State) Dictionary() *game.Dictionary {
	return s.dict
}

// Mobiles returns the live mobile registry.
func (s *State) Mobiles() *MobileRegistry {
	return s.mobiles
}

// Objects returns the live object registry.
func (s *State) Objects() *ObjectRegistry {
	return s.objects
}

// Spawner returns the instance spawner.
func (s *State) Spawner() *Spawner {
	return s.spawner
}

// Room returns the runtime state for a room, or nil if the room does
// not exist.
func (s *State) Room(vnum int) *RoomState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rooms[vnum]
}

// Zone returns the runtime state for a zone, or nil if the zone does
// not exist.
func (s *State) Zone(vnum int) *ZoneState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.zones[vnum]
}

// AddPlayer registers a player's location.
func (s *State) AddPlayer(id string, zoneVnum, roomVnum int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.players[id]; exists {
		return ErrPlayerExists
	}

	s.players[id] = &PlayerState{
		Id:       id,
		ZoneVnum: zoneVnum,
		RoomVnum: roomVnum,
	}
	return nil
}

// RemovePlayer forgets a player's location.
func (s *State) RemovePlayer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.players[id]; !exists {
		return ErrPlayerNotFound
	}
	delete(s.players, id)
	return nil
}

// MovePlayer updates a player's location.
func (s *State) MovePlayer(id string, zoneVnum, roomVnum int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ps, exists := s.players[id]
	if !exists {
		return ErrPlayerNotFound
	}
	ps.ZoneVnum = zoneVnum
	ps.RoomVnum = roomVnum
	return nil
}

// CountPlayersInZone returns how many players are in the zone's rooms.
// When-empty reset eligibility is decided against this count.
func (s *State) CountPlayersInZone(zoneVnum int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, ps := range s.players {
		if ps.ZoneVnum == zoneVnum {
			n++
		}
	}
	return n
}
