package flash

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisStoreAgainstRealRedis(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Redis container test in short mode")
	}

	ctx := context.Background()
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}
	defer redisContainer.Terminate(ctx)

	host, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	port, err := redisContainer.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: host + ":" + port.Port()})
	defer client.Close()
	require.NoError(t, client.Ping(ctx).Err())

	s := NewRedisStore(client, time.Minute)
	w := httptest.NewRecorder()
	require.NoError(t, s.Add(w, httptest.NewRequest(http.MethodPost, "/", nil), "Show was successfully listed!"))

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	cookies := issued(w)
	require.Len(t, cookies, 1)
	next.AddCookie(cookies[0])

	ttl, err := client.TTL(ctx, keyPrefix+cookies[0].Value).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	got, err := s.Pop(httptest.NewRecorder(), next)
	require.NoError(t, err)
	assert.Equal(t, []string{"Show was successfully listed!"}, got)
}
