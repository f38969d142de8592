package redisstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/SeaCloudHub/customers/adapters/redisstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisPubSub(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "docker.io/redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	addr, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	rdb, err := redisstore.NewConnection(redisstore.Options{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	client := redisstore.NewRedisClient(rdb)

	sub := client.Subscribe(ctx, "customers.events")
	defer sub.Close()

	// wait for the subscription to be confirmed before publishing
	require.Eventually(t, func() bool {
		n, err := rdb.PubSubNumSub(ctx, "customers.events").Result()
		return err == nil && n["customers.events"] == 1
	}, 5*time.Second, 50*time.Millisecond)

	require.NoError(t, client.Publish(ctx, "customers.events", []byte(`{"name":"CustomerCreatedEvent"}`)))

	receiveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	msg, err := sub.ReceiveMessage(receiveCtx)
	require.NoError(t, err)
	assert.Equal(t, "customers.events", msg.Channel)
	assert.JSONEq(t, `{"name":"CustomerCreatedEvent"}`, string(msg.Payload))
}
