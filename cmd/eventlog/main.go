package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/SeaCloudHub/customers/adapters/event/listeners"
	"github.com/SeaCloudHub/customers/adapters/redisstore"
	"github.com/SeaCloudHub/customers/pkg/config"
	"github.com/SeaCloudHub/customers/pkg/logger"
	"go.uber.org/zap"
)

// eventlog tails the customer events channel and writes every envelope to
// the application log.
func main() {
	applog, err := logger.NewAppLogger()
	if err != nil {
		log.Fatalf("cannot load config: %v\n", err)
	}
	defer logger.Sync(applog)

	cfg, err := config.LoadConfig()
	if err != nil {
		applog.Fatal(err)
	}

	redis, err := redisstore.NewConnection(redisstore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatalf("cannot connect to redis: %v\n", err)
	}

	pubsubService := redisstore.NewRedisClient(redis)
	ctx := context.Background()

	sub := pubsubService.Subscribe(ctx, cfg.Redis.Channel)
	defer sub.Close()

	applog.Infof("listening on %s", cfg.Redis.Channel)

	for {
		msg, err := sub.ReceiveMessage(ctx)
		if err != nil {
			applog.Fatalf("cannot receive message: %v\n", err)
		}

		var envelope listeners.Envelope
		if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
			applog.Warnf("cannot unmarshal payload: %v", err)
			continue
		}

		applog.Infow("event received",
			zap.String("event", string(envelope.Name)),
			zap.Time("occurred_at", envelope.OccurredAt),
			zap.ByteString("data", envelope.Data),
		)
	}
}
