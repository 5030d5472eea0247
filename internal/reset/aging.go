package reset

import (
	"time"

	"github.com/hollowmere/mud/internal/game"
)

// AgeZone advances a zone's age counter. Unknown zones are ignored;
// aging never fails.
func (e *Engine) AgeZone(zoneVnum int, elapsed time.Duration) {
	zs := e.world.Zone(zoneVnum)
	if zs == nil {
		return
	}
	zs.AddAge(elapsed)
}

// ShouldReset reports whether a zone is due for a reset pass. A zone
// that never resets is never due. Below its lifespan nothing is due
// regardless of mode; past it, lifespan zones are always due and empty
// zones are due only while no players are in the zone's rooms.
func (e *Engine) ShouldReset(zoneVnum int) bool {
	zone := e.world.Dictionary().Zones.Get(zoneVnum)
	if zone == nil {
		return false
	}
	if zone.ResetMode == game.ZoneResetNever {
		return false
	}

	zs := e.world.Zone(zoneVnum)
	if zs == nil {
		return false
	}
	if zs.Age() < zone.ResetInterval() {
		return false
	}

	switch zone.ResetMode {
	case game.ZoneResetLifespan:
		return true
	case game.ZoneResetEmpty:
		return e.world.CountPlayersInZone(zoneVnum) == 0
	default:
		return false
	}
}
