package redisstore

import (
	"context"
	"fmt"

	"github.com/SeaCloudHub/customers/domain/pubsub"
	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	rdb *redis.Client
}

type RedisSubscription struct {
	rps *redis.PubSub
}

func NewRedisClient(rdb *redis.Client) *RedisClient {
	return &RedisClient{rdb: rdb}
}

func (r *RedisClient) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := r.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("cannot publish to %s: %w", channel, err)
	}

	return nil
}

func (r *RedisClient) Subscribe(ctx context.Context, channel string) pubsub.Subscription {
	return &RedisSubscription{rps: r.rdb.Subscribe(ctx, channel)}
}

func (r *RedisSubscription) ReceiveMessage(ctx context.Context) (pubsub.Message, error) {
	msg, err := r.rps.ReceiveMessage(ctx)
	if err != nil {
		return pubsub.Message{}, err
	}

	return pubsub.Message{
		Channel: msg.Channel,
		Payload: []byte(msg.Payload),
	}, nil
}

func (r *RedisSubscription) Close() error {
	return r.rps.Close()
}
