package world

import (
	"sync"
	"time"
)

// ZoneState holds the mutable runtime state of a zone: its accumulated
// age and the timestamp of its last completed reset. The definition
// (reset mode, lifespan, directives) stays immutable.
type ZoneState struct {
	Vnum int

	mu        sync.Mutex
	age       time.Duration
	lastReset time.Time
}

// NewZoneState creates runtime state for a zone.
func NewZoneState(vnum int) *ZoneState {
	return &ZoneState{Vnum: vnum}
}

// Age returns the accumulated age since the last completed reset.
func (zs *ZoneState) Age() time.Duration {
	zs.mu.Lock()
	defer zs.mu.Unlock()

	return zs.age
}

// AddAge advances the zone's age counter. Never fails.
func (zs *ZoneState) AddAge(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}

	zs.mu.Lock()
	defer zs.mu.Unlock()

	zs.age += elapsed
}

// LastReset returns when the zone last completed a reset pass, or the
// zero time if it never has.
func (zs *ZoneState) LastReset() time.Time {
	zs.mu.Lock()
	defer zs.mu.Unlock()

	return zs.lastReset
}

// MarkReset zeroes the age counter and records the reset timestamp.
// Called only after a pass completes without hard failure, so a failed
// zone keeps aging and retries on a later cycle.
func (zs *ZoneState) MarkReset(at time.Time) {
	zs.mu.Lock()
	defer zs.mu.Unlock()

	zs.age = 0
	zs.lastReset = at
}
