package pubsub

import "context"

type Message struct {
	Channel string
	Payload []byte
}

type Subscription interface {
	ReceiveMessage(ctx context.Context) (Message, error)
	Close() error
}

// Service carries already-encoded payloads between processes.
type Service interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	Subscribe(ctx context.Context, channel string) Subscription
}
