package reset

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hollowmere/mud/internal/game"
	"github.com/hollowmere/mud/internal/world"
)

// ResetResult reports the outcome of one reset pass over a zone's
// directive list.
type ResetResult struct {
	// Success is false only when the pass hard-failed and was aborted.
	Success bool

	// DirectivesExecuted counts directives that did work; ceiling
	// no-ops and soft skips are not counted.
	DirectivesExecuted int

	// ErrorMessage describes the hard failure, if any.
	ErrorMessage string

	// Log collects per-directive notes (skips, warnings, removals).
	Log []string
}

func (r *ResetResult) logf(format string, args ...any) {
	r.Log = append(r.Log, fmt.Sprintf(format, args...))
}

// passContext carries the same-pass dependencies between directives:
// the two most recently spawned instances. It is created fresh for
// every pass and never shared, so concurrent resets of different zones
// cannot interfere.
type passContext struct {
	lastMobile *world.MobileInstance
	lastObject *world.ObjectInstance
}

// Engine replays a zone's ordered directive list against the live
// world. Passes for the same zone serialize on a per-zone mutex;
// different zones reset concurrently.
type Engine struct {
	world *world.State

	mu        sync.Mutex
	zoneLocks map[int]*sync.Mutex
}

// NewEngine creates a reset engine over the given world state.
func NewEngine(ws *world.State) *Engine {
	return &Engine{
		world:     ws,
		zoneLocks: make(map[int]*sync.Mutex),
	}
}

func (e *Engine) zoneLock(zoneVnum int) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, ok := e.zoneLocks[zoneVnum]
	if !ok {
		l = &sync.Mutex{}
		e.zoneLocks[zoneVnum] = l
	}
	return l
}

// ExecuteReset runs one reset pass for the zone. Directives execute in
// order; a soft failure skips the directive and continues, a hard
// failure (missing room on a spawn directive) aborts the remainder of
// the pass. Only a pass that completes without hard failure zeroes the
// zone's age and stamps its last-reset time, so a failed zone retries
// on a later aging cycle.
func (e *Engine) ExecuteReset(zoneVnum int) ResetResult {
	lock := e.zoneLock(zoneVnum)
	lock.Lock()
	defer lock.Unlock()

	res := ResetResult{Success: true}

	zone := e.world.Dictionary().Zones.Get(zoneVnum)
	if zone == nil {
		res.Success = false
		res.ErrorMessage = fmt.Sprintf("zone %d not found", zoneVnum)
		return res
	}

	directives, err := zone.CompileDirectives()
	if err != nil {
		res.Success = false
		res.ErrorMessage = fmt.Sprintf("zone %d: %v", zoneVnum, err)
		return res
	}

	pass := &passContext{}
	for i, d := range directives {
		executed, err := e.applyRecovered(zoneVnum, i, d, pass, &res)
		if err != nil {
			// Hard failure: stop immediately, leave the zone clock alone.
			res.Success = false
			res.ErrorMessage = err.Error()
			slog.Warn("zone reset aborted", "zone", zoneVnum, "directive", i, "error", err)
			return res
		}
		if executed {
			res.DirectivesExecuted++
		}
	}

	if zs := e.world.Zone(zoneVnum); zs != nil {
		zs.MarkReset(time.Now())
	}

	slog.Info("zone reset complete", "zone", zoneVnum, "executed", res.DirectivesExecuted, "directives", len(directives))
	return res
}

// applyRecovered dispatches one directive, downgrading a handler panic
// to a soft skip so a bad directive can never take the process down or
// abort the rest of the pass.
func (e *Engine) applyRecovered(zoneVnum, idx int, d game.Directive, pass *passContext, res *ResetResult) (executed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			res.logf("directive %d panicked: %v", idx, r)
			slog.Error("reset directive panicked", "zone", zoneVnum, "directive", idx, "panic", r)
			executed = false
			err = nil
		}
	}()

	switch d := d.(type) {
	case game.SpawnMobile:
		return e.applySpawnMobile(zoneVnum, d, pass, res)
	case game.SpawnObject:
		return e.applySpawnObject(zoneVnum, d, pass, res)
	case game.EquipObject:
		return e.applyEquipObject(zoneVnum, d, pass, res)
	case game.GiveObject:
		return e.applyGiveObject(zoneVnum, d, pass, res)
	case game.SetDoor:
		return e.applySetDoor(d, res)
	case game.PutObject:
		return e.applyPutObject(zoneVnum, d, pass, res)
	case game.RemoveObject:
		return e.applyRemoveObject(d, res)
	default:
		res.logf("directive %d: unhandled type %T", idx, d)
		return false, nil
	}
}

func (e *Engine) applySpawnMobile(zoneVnum int, d game.SpawnMobile, pass *passContext, res *ResetResult) (bool, error) {
	if !d.Force && e.world.Mobiles().CountOfPrototypeInZone(zoneVnum, d.MobileVnum) >= d.MaxInZone {
		res.logf("mobile %d at population ceiling %d", d.MobileVnum, d.MaxInZone)
		return false, nil
	}

	// A spawn directive naming a room that does not exist hard-fails
	// the pass; the zone definition is broken, not merely sparse.
	if !e.world.Dictionary().Rooms.Exists(d.RoomVnum) {
		return false, fmt.Errorf("spawn mobile %d: room %d not found", d.MobileVnum, d.RoomVnum)
	}

	def := e.world.Dictionary().Mobiles.Get(d.MobileVnum)
	if def == nil {
		res.logf("mobile %d not found, skipping", d.MobileVnum)
		return false, nil
	}

	mi, err := e.world.Spawner().SpawnMobileInRoom(d.MobileVnum, def, zoneVnum, d.RoomVnum)
	if err != nil {
		res.logf("spawning mobile %d: %v", d.MobileVnum, err)
		return false, nil
	}

	pass.lastMobile = mi
	return true, nil
}

func (e *Engine) applySpawnObject(zoneVnum int, d game.SpawnObject, pass *passContext, res *ResetResult) (bool, error) {
	if !d.Force && e.world.Objects().CountOfPrototypeInZone(zoneVnum, d.ObjectVnum) >= d.MaxInZone {
		res.logf("object %d at population ceiling %d", d.ObjectVnum, d.MaxInZone)
		return false, nil
	}

	if !e.world.Dictionary().Rooms.Exists(d.RoomVnum) {
		return false, fmt.Errorf("spawn object %d: room %d not found", d.ObjectVnum, d.RoomVnum)
	}

	def := e.world.Dictionary().Objects.Get(d.ObjectVnum)
	if def == nil {
		res.logf("object %d not found, skipping", d.ObjectVnum)
		return false, nil
	}

	oi, err := e.world.Spawner().SpawnObjectInRoom(d.ObjectVnum, def, zoneVnum, d.RoomVnum)
	if err != nil {
		res.logf("spawning object %d: %v", d.ObjectVnum, err)
		return false, nil
	}

	pass.lastObject = oi
	return true, nil
}

func (e *Engine) applyEquipObject(zoneVnum int, d game.EquipObject, pass *passContext, res *ResetResult) (bool, error) {
	if pass.lastMobile == nil {
		res.logf("equip object %d: no mobile spawned yet this pass", d.ObjectVnum)
		return false, nil
	}

	if !d.Force && e.world.Objects().CountOfPrototypeInZone(zoneVnum, d.ObjectVnum) >= d.MaxInZone {
		res.logf("object %d at population ceiling %d", d.ObjectVnum, d.MaxInZone)
		return false, nil
	}

	def := e.world.Dictionary().Objects.Get(d.ObjectVnum)
	if def == nil {
		res.logf("object %d not found, skipping", d.ObjectVnum)
		return false, nil
	}

	oi, err := e.world.Spawner().CreateObject(d.ObjectVnum, def)
	if err != nil {
		res.logf("creating object %d: %v", d.ObjectVnum, err)
		return false, nil
	}
	oi.ZoneVnum = zoneVnum

	if err := e.world.Spawner().Equip(oi, pass.lastMobile, d.Slot); err != nil {
		res.logf("equipping object %d: %v", d.ObjectVnum, err)
		return false, nil
	}
	e.world.Objects().Track(oi)
	return true, nil
}

func (e *Engine) applyGiveObject(zoneVnum int, d game.GiveObject, pass *passContext, res *ResetResult) (bool, error) {
	if pass.lastMobile == nil {
		res.logf("give object %d: no mobile spawned yet this pass", d.ObjectVnum)
		return false, nil
	}

	if !d.Force && e.world.Objects().CountOfPrototypeInZone(zoneVnum, d.ObjectVnum) >= d.MaxInZone {
		res.logf("object %d at population ceiling %d", d.ObjectVnum, d.MaxInZone)
		return false, nil
	}

	def := e.world.Dictionary().Objects.Get(d.ObjectVnum)
	if def == nil {
		res.logf("object %d not found, skipping", d.ObjectVnum)
		return false, nil
	}

	oi, err := e.world.Spawner().CreateObject(d.ObjectVnum, def)
	if err != nil {
		res.logf("creating object %d: %v", d.ObjectVnum, err)
		return false, nil
	}
	oi.ZoneVnum = zoneVnum

	if err := e.world.Spawner().Give(oi, pass.lastMobile); err != nil {
		res.logf("giving object %d: %v", d.ObjectVnum, err)
		return false, nil
	}
	e.world.Objects().Track(oi)
	return true, nil
}

func (e *Engine) applySetDoor(d game.SetDoor, res *ResetResult) (bool, error) {
	// Unlike spawn directives, a missing room here is a soft skip.
	rs := e.world.Room(d.RoomVnum)
	if rs == nil {
		res.logf("set door: room %d not found, skipping", d.RoomVnum)
		return false, nil
	}

	if err := rs.SetDoor(d.Direction, d.State); err != nil {
		res.logf("set door: %v", err)
		return false, nil
	}
	return true, nil
}

func (e *Engine) applyPutObject(zoneVnum int, d game.PutObject, pass *passContext, res *ResetResult) (bool, error) {
	// Nesting targets only the most recently spawned object of this
	// pass, never an arbitrary existing container.
	if pass.lastObject == nil || pass.lastObject.ObjectVnum != d.ContainerVnum {
		res.logf("put object %d: container %d was not the last spawned object", d.ObjectVnum, d.ContainerVnum)
		return false, nil
	}

	if !d.Force && e.world.Objects().CountOfPrototypeInZone(zoneVnum, d.ObjectVnum) >= d.MaxInZone {
		res.logf("object %d at population ceiling %d", d.ObjectVnum, d.MaxInZone)
		return false, nil
	}

	def := e.world.Dictionary().Objects.Get(d.ObjectVnum)
	if def == nil {
		res.logf("object %d not found, skipping", d.ObjectVnum)
		return false, nil
	}

	oi, err := e.world.Spawner().CreateObject(d.ObjectVnum, def)
	if err != nil {
		res.logf("creating object %d: %v", d.ObjectVnum, err)
		return false, nil
	}
	oi.ZoneVnum = zoneVnum

	if err := e.world.Spawner().PutInContainer(oi, pass.lastObject); err != nil {
		res.logf("putting object %d: %v", d.ObjectVnum, err)
		return false, nil
	}
	e.world.Objects().Track(oi)
	return true, nil
}

func (e *Engine) applyRemoveObject(d game.RemoveObject, res *ResetResult) (bool, error) {
	if !e.world.Dictionary().Rooms.Exists(d.RoomVnum) {
		res.logf("remove object %d: room %d not found, skipping", d.ObjectVnum, d.RoomVnum)
		return false, nil
	}

	for _, oi := range e.world.Objects().GetInRoom(d.RoomVnum) {
		if oi.ObjectVnum == d.ObjectVnum {
			e.world.Objects().Remove(oi.Id)
			res.logf("removed object %d from room %d", d.ObjectVnum, d.RoomVnum)
			return true, nil
		}
	}

	res.logf("remove object %d: no instance in room %d", d.ObjectVnum, d.RoomVnum)
	return false, nil
}
