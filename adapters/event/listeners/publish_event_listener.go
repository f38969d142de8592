package listeners

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SeaCloudHub/customers/domain"
	"github.com/SeaCloudHub/customers/domain/pubsub"
)

type Envelope struct {
	Name       domain.EventName `json:"name"`
	OccurredAt time.Time        `json:"occurred_at"`
	Data       json.RawMessage  `json:"data"`
}

// PublishEventListener forwards domain events to a pub/sub channel so other
// services can react to them.
type PublishEventListener struct {
	pubsubService pubsub.Service
	channel       string
}

func NewPublishEventListener(pubsubService pubsub.Service, channel string) *PublishEventListener {
	return &PublishEventListener{pubsubService: pubsubService, channel: channel}
}

func (l *PublishEventListener) Handle(event domain.BaseDomainEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("cannot encode event %s: %w", event.EventName(), err)
	}

	payload, err := json.Marshal(Envelope{
		Name:       event.EventName(),
		OccurredAt: event.OccurredAt(),
		Data:       data,
	})
	if err != nil {
		return fmt.Errorf("cannot encode envelope: %w", err)
	}

	if err := l.pubsubService.Publish(context.Background(), l.channel, payload); err != nil {
		return fmt.Errorf("cannot publish event %s: %w", event.EventName(), err)
	}

	return nil
}
