package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jxjxx71718/mediaGallery/internal/domain/dto"
)

const (
	RedisImage = "redis:7-alpine"
	StreamName = "media-events-test"
	GroupName  = "media-events-test-group"
	Consumer   = "test-consumer"
)

func setupRedis(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        RedisImage,
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start Redis container: %v", err)
	}

	host, err := redisC.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get Redis container host: %v", err)
	}

	port, err := redisC.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("failed to get Redis container port: %v", err)
	}

	hostPort := net.JoinHostPort(host, port.Port())
	uri := fmt.Sprintf("redis://%s", hostPort)

	return uri, func() {
		_ = redisC.Terminate(ctx)
	}
}

func eventMessage(t *testing.T, action string, id int64) string {
	t.Helper()

	data, err := json.Marshal(dto.CatalogEvent{Action: action, ID: id, At: time.Now().UTC()})
	require.NoError(t, err)

	return string(data)
}

func TestPublish(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		messages  func(t *testing.T) []string
		expectLen int
	}{
		{
			name: "single created event",
			messages: func(t *testing.T) []string {
				t.Helper()

				return []string{eventMessage(t, dto.ActionCreated, 1)}
			},
			expectLen: 1,
		},
		{
			name: "full lifecycle keeps order",
			messages: func(t *testing.T) []string {
				t.Helper()

				return []string{
					eventMessage(t, dto.ActionCreated, 7),
					eventMessage(t, dto.ActionUpdated, 7),
					eventMessage(t, dto.ActionDeleted, 7),
				}
			},
			expectLen: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uri, terminate := setupRedis(t)
			defer terminate()

			client, err := NewClient(Config{
				URI:        uri,
				Enabled:    true,
				StreamName: StreamName,
				GroupName:  GroupName,
			})
			if err != nil {
				t.Fatalf("failed to create Redis client: %v", err)
			}
			defer client.Close()

			publisher := NewPublisher(client, PublisherConfig{Timeout: 1000, MaxLen: 1000})

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			messages := tt.messages(t)
			for _, msg := range messages {
				assert.NoError(t, publisher.Publish(ctx, msg))
			}

			read, err := client.redis.XReadGroup(ctx, &redis.XReadGroupArgs{
				Group:    GroupName,
				Consumer: Consumer,
				Streams:  []string{StreamName, ">"},
				Count:    int64(tt.expectLen),
				Block:    2 * time.Second,
			}).Result()
			require.NoError(t, err)
			require.Len(t, read, 1)
			require.Len(t, read[0].Messages, tt.expectLen)

			for i, msg := range messages {
				assert.Equal(t, msg, read[0].Messages[i].Values["body"])
			}
		})
	}
}

func TestNewClientRejectsBadURI(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{URI: "not a redis uri", StreamName: StreamName, GroupName: GroupName})
	assert.Error(t, err)
}
