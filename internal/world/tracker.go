package world

import (
	"sync"
)

// MobileRegistry tracks every live mobile instance in the world. It is
// safe under concurrent add/remove/query; a reset pass may run while a
// player command reads the same zone.
type MobileRegistry struct {
	mu        sync.RWMutex
	instances map[string]*MobileInstance
}

// NewMobileRegistry creates an empty registry.
func NewMobileRegistry() *MobileRegistry {
	return &MobileRegistry{
		instances: make(map[string]*MobileInstance),
	}
}

// Track registers a live instance.
func (r *MobileRegistry) Track(mi *MobileInstance) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.instances[mi.Id] = mi
}

// Get returns the instance with the given id, or nil.
func (r *MobileRegistry) Get(id string) *MobileInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.instances[id]
}

// Remove deactivates and removes an instance. Removal is terminal.
func (r *MobileRegistry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	mi, ok := r.instances[id]
	if !ok {
		return false
	}
	mi.Active = false
	delete(r.instances, id)
	return true
}

// GetAll returns every active instance.
func (r *MobileRegistry) GetAll() []*MobileInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*MobileInstance, 0, len(r.instances))
	for _, mi := range r.instances {
		if mi.Active {
			out = append(out, mi)
		}
	}
	return out
}

// GetInRoom returns the active instances located in the given room.
func (r *MobileRegistry) GetInRoom(roomVnum int) []*MobileInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*MobileInstance
	for _, mi := range r.instances {
		if mi.Active && mi.RoomVnum == roomVnum {
			out = append(out, mi)
		}
	}
	return out
}

// GetInZone returns the active instances located in the given zone.
func (r *MobileRegistry) GetInZone(zoneVnum int) []*MobileInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*MobileInstance
	for _, mi := range r.instances {
		if mi.Active && mi.ZoneVnum == zoneVnum {
			out = append(out, mi)
		}
	}
	return out
}

// CountOfPrototype returns the number of active instances spawned from
// the given definition, world-wide.
func (r *MobileRegistry) CountOfPrototype(vnum int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, mi := range r.instances {
		if mi.Active && mi.MobileVnum == vnum {
			n++
		}
	}
	return n
}

// CountOfPrototypeInZone returns the number of active instances spawned
// from the given definition within one zone. Population ceilings are
// checked against this count.
func (r *MobileRegistry) CountOfPrototypeInZone(zoneVnum, vnum int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, mi := range r.instances {
		if mi.Active && mi.ZoneVnum == zoneVnum && mi.MobileVnum == vnum {
			n++
		}
	}
	return n
}

// CleanupInactive removes every instance whose active flag has been
// cleared, returning how many were removed.
func (r *MobileRegistry) CleanupInactive() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, mi := range r.instances {
		if !mi.Active {
			delete(r.instances, id)
			n++
		}
	}
	return n
}

// ObjectRegistry tracks every live object instance in the world.
type ObjectRegistry struct {
	mu        sync.RWMutex
	instances map[string]*ObjectInstance
}

// NewObjectRegistry creates an empty registry.
func NewObjectRegistry() *ObjectRegistry {
	return &ObjectRegistry{
		instances: make(map[string]*ObjectInstance),
	}
}

// Track registers a live instance.
func (r *ObjectRegistry) Track(oi *ObjectInstance) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.instances[oi.Id] = oi
}

// Get returns the instance with the given id, or nil.
func (r *ObjectRegistry) Get(id string) *ObjectInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.instances[id]
}

// Remove deactivates and removes an instance. Removal is terminal.
func (r *ObjectRegistry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	oi, ok := r.instances[id]
	if !ok {
		return false
	}
	oi.Active = false
	delete(r.instances, id)
	return true
}

// Place sets an instance's location under the registry lock so that
// location queries never observe a half-applied move.
func (r *ObjectRegistry) Place(oi *ObjectInstance, loc Location) {
	r.mu.Lock()
	defer r.mu.Unlock()

	oi.Location = loc
}

// GetAll returns every active instance.
func (r *ObjectRegistry) GetAll() []*ObjectInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*ObjectInstance, 0, len(r.instances))
	for _, oi := range r.instances {
		if oi.Active {
			out = append(out, oi)
		}
	}
	return out
}

// GetInRoom returns the active instances lying in the given room.
func (r *ObjectRegistry) GetInRoom(roomVnum int) []*ObjectInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*ObjectInstance
	for _, oi := range r.instances {
		if oi.Active && oi.Location.Kind == LocationInRoom && oi.Location.RoomVnum == roomVnum {
			out = append(out, oi)
		}
	}
	return out
}

// GetInZone returns the active instances spawned into the given zone.
func (r *ObjectRegistry) GetInZone(zoneVnum int) []*ObjectInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*ObjectInstance
	for _, oi := range r.instances {
		if oi.Active && oi.ZoneVnum == zoneVnum {
			out = append(out, oi)
		}
	}
	return out
}

// GetOwnedBy returns the active instances a mobile is holding, equipped
// and carried together.
func (r *ObjectRegistry) GetOwnedBy(mobileInstanceId string) []*ObjectInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*ObjectInstance
	for _, oi := range r.instances {
		if !oi.Active || oi.Location.OwnerId != mobileInstanceId {
			continue
		}
		if oi.Location.Kind == LocationEquipped || oi.Location.Kind == LocationInInventory {
			out = append(out, oi)
		}
	}
	return out
}

// CountOfPrototype returns the number of active instances spawned from
// the given definition, world-wide.
func (r *ObjectRegistry) CountOfPrototype(vnum int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, oi := range r.instances {
		if oi.Active && oi.ObjectVnum == vnum {
			n++
		}
	}
	return n
}

// CountOfPrototypeInZone returns the number of active instances spawned
// from the given definition within one zone.
func (r *ObjectRegistry) CountOfPrototypeInZone(zoneVnum, vnum int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, oi := range r.instances {
		if oi.Active && oi.ZoneVnum == zoneVnum && oi.ObjectVnum == vnum {
			n++
		}
	}
	return n
}

// CleanupInactive removes every instance whose active flag has been
// cleared, returning how many were removed.
func (r *ObjectRegistry) CleanupInactive() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, oi := range r.instances {
		if !oi.Active {
			delete(r.instances, id)
			n++
		}
	}
	return n
}
