package driver

import (
	"context"
	"fmt"
	"time"
)

const (
	DefaultTickLength = time.Second * 2
)

// Manager is anything the driver advances on every tick.
type Manager interface {
	Tick(context.Context) error
}

// MudDriver runs the game loop: it ticks each manager in order at a
// fixed interval until its context is cancelled.
type MudDriver struct {
	tickLength time.Duration
	managers   []Manager
}

func NewMudDriver(managers []Manager, opts ...MudDriverOpt) *MudDriver {
	d := &MudDriver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *MudDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				return err
			}
		}
	}
}

func (d *MudDriver) Tick(ctx context.Context) error {
	for i, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return fmt.Errorf("ticking manager %d: %w", i, err)
		}
	}
	return nil
}
