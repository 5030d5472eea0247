package command

import (
	"fmt"
	"time"

	"github.com/hollowmere/mud/internal/driver"
	"github.com/hollowmere/mud/internal/messaging"
	"github.com/hollowmere/mud/internal/reset"
	"github.com/hollowmere/mud/internal/world"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load the definition catalogs
	dict, err := cfg.Storage.BuildDictionary()
	if err != nil {
		return nil, fmt.Errorf("building dictionary: %w", err)
	}

	// Build live world state from the catalogs
	ws := world.NewState(dict)

	// Create the messaging server and reset event publisher
	natsServer, err := cfg.Nats.BuildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	publisher := messaging.NewResetPublisher(natsServer)

	// Create the reset engine and its manager
	engine := reset.NewEngine(ws)
	manager := reset.NewManager(engine, ws, publisher)

	tickLength, err := time.ParseDuration(cfg.TickInterval)
	if err != nil {
		return nil, fmt.Errorf("parsing tick_interval: %w", err)
	}

	// Setup the mud driver
	drv := driver.NewMudDriver(
		[]driver.Manager{manager},
		driver.WithTickLength(tickLength),
	)

	// Create a worker list
	return service.WorkerList{
		"driver": drv,
		"nats":   natsServer,
	}, nil
}
