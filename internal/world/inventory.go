package world

// Inventory holds object instances carried by a mobile or nested in a
// container. It is an unordered collection keyed by instance id.
type Inventory struct {
	items map[string]*ObjectInstance
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		items: make(map[string]*ObjectInstance),
	}
}

// Add adds an object instance to the inventory.
func (inv *Inventory) Add(obj *ObjectInstance) {
	if inv.items == nil {
		inv.items = make(map[string]*ObjectInstance)
	}
	inv.items[obj.Id] = obj
}

// Remove removes an object instance from the inventory.
// Returns the removed instance, or nil if not found.
func (inv *Inventory) Remove(instanceId string) *ObjectInstance {
	if obj, ok := inv.items[instanceId]; ok {
		delete(inv.items, instanceId)
		return obj
	}
	return nil
}

// Get returns an object instance by id, or nil if not found.
func (inv *Inventory) Get(instanceId string) *ObjectInstance {
	return inv.items[instanceId]
}

// Contains checks if an object instance is in the inventory.
func (inv *Inventory) Contains(instanceId string) bool {
	_, ok := inv.items[instanceId]
	return ok
}

// Len returns the number of items held.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// All returns the held instances.
func (inv *Inventory) All() []*ObjectInstance {
	out := make([]*ObjectInstance, 0, len(inv.items))
	for _, obj := range inv.items {
		out = append(out, obj)
	}
	return out
}

// Equipment holds items equipped by a mobile, at most one per slot.
// Slots are addressed by wear slot number.
type Equipment struct {
	slots map[int]*ObjectInstance
}

// NewEquipment creates an empty equipment set.
func NewEquipment() *Equipment {
	return &Equipment{
		slots: make(map[int]*ObjectInstance),
	}
}

// Set places an object instance in the given slot, returning the
// previous occupant, or nil if the slot was empty.
func (eq *Equipment) Set(slot int, obj *ObjectInstance) *ObjectInstance {
	if eq.slots == nil {
		eq.slots = make(map[int]*ObjectInstance)
	}
	prev := eq.slots[slot]
	eq.slots[slot] = obj
	return prev
}

// GetSlot returns the object instance in the given slot, or nil if empty.
func (eq *Equipment) GetSlot(slot int) *ObjectInstance {
	return eq.slots[slot]
}

// Remove finds and unequips an object by instance id.
func (eq *Equipment) Remove(instanceId string) *ObjectInstance {
	for slot, obj := range eq.slots {
		if obj.Id == instanceId {
			delete(eq.slots, slot)
			return obj
		}
	}
	return nil
}

// All returns the equipped instances.
func (eq *Equipment) All() []*ObjectInstance {
	out := make([]*ObjectInstance, 0, len(eq.slots))
	for _, obj := range eq.slots {
		out = append(out, obj)
	}
	return out
}
