package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/hollowmere/mud/internal/reset"
)

// Broker is the publish surface ResetPublisher needs from the embedded
// NATS server.
type Broker interface {
	Publish(subject string, data []byte) error
}

// ResetPublisher emits zone reset events so other subsystems (session
// layer, auditors) can observe repopulation.
type ResetPublisher struct {
	broker Broker
}

// NewResetPublisher wraps a broker for reset event delivery.
func NewResetPublisher(broker Broker) *ResetPublisher {
	return &ResetPublisher{broker: broker}
}

// PublishReset publishes one reset event on zone.reset.<vnum>.
func (p *ResetPublisher) PublishReset(ev reset.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshalling reset event: %w", err)
	}
	return p.broker.Publish(fmt.Sprintf("zone.reset.%d", ev.ZoneVnum), data)
}
