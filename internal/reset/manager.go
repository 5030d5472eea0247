package reset

import (
	"context"
	"log/slog"
	"time"

	"github.com/hollowmere/mud/internal/world"
)

// Publisher delivers reset events to interested subsystems.
type Publisher interface {
	PublishReset(ev Event) error
}

// Event describes one completed (or aborted) reset pass.
type Event struct {
	ZoneVnum           int       `json:"zone_vnum"`
	Success            bool      `json:"success"`
	DirectivesExecuted int       `json:"directives_executed"`
	Error              string    `json:"error,omitempty"`
	At                 time.Time `json:"at"`
}

// Manager ages zones on every driver tick and runs reset passes for the
// ones that come due. A failing zone never blocks the others.
type Manager struct {
	engine *Engine
	world  *world.State
	pub    Publisher

	lastTick time.Time
}

// NewManager creates a reset manager. pub may be nil.
func NewManager(engine *Engine, ws *world.State, pub Publisher) *Manager {
	return &Manager{
		engine: engine,
		world:  ws,
		pub:    pub,
	}
}

// Tick advances every zone's age by the wall-clock delta since the
// previous tick, then resets the zones that are due.
func (m *Manager) Tick(ctx context.Context) error {
	now := time.Now()
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	for vnum := range m.world.Dictionary().Zones.GetAll() {
		m.engine.AgeZone(vnum, elapsed)

		if !m.engine.ShouldReset(vnum) {
			continue
		}

		res := m.engine.ExecuteReset(vnum)
		if !res.Success {
			slog.WarnContext(ctx, "zone reset failed", "zone", vnum, "error", res.ErrorMessage)
		}

		if m.pub != nil {
			ev := Event{
				ZoneVnum:           vnum,
				Success:            res.Success,
				DirectivesExecuted: res.DirectivesExecuted,
				Error:              res.ErrorMessage,
				At:                 now,
			}
			if err := m.pub.PublishReset(ev); err != nil {
				slog.WarnContext(ctx, "publishing reset event", "zone", vnum, "error", err)
			}
		}
	}

	return nil
}
