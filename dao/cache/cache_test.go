package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	return rds
}

func TestClientStorage_BindUnBind(t *testing.T) {
	ctx := context.Background()
	rds := newRedis(t)
	servers := NewServerStorage(rds)
	clients := NewClientStorage(rds, servers)

	require.NoError(t, servers.Set(ctx, "node-1", time.Now()))
	assert.False(t, clients.IsOnline(ctx, 7))

	require.NoError(t, clients.Bind(ctx, "node-1", "c1", 7))
	require.NoError(t, clients.Bind(ctx, "node-1", "c2", 7))
	assert.True(t, clients.IsOnline(ctx, 7))
	assert.Equal(t, []string{"node-1"}, clients.Servers(ctx, 7))

	require.NoError(t, clients.UnBind(ctx, "node-1", "c1"))
	assert.True(t, clients.IsOnline(ctx, 7))

	require.NoError(t, clients.UnBind(ctx, "node-1", "c2"))
	assert.False(t, clients.IsOnline(ctx, 7))

	// 重复解绑不报错
	require.NoError(t, clients.UnBind(ctx, "node-1", "c2"))
}

func TestClientStorage_IgnoresDeadServers(t *testing.T) {
	ctx := context.Background()
	rds := newRedis(t)
	servers := NewServerStorage(rds)
	clients := NewClientStorage(rds, servers)

	require.NoError(t, servers.Set(ctx, "node-1", time.Now().Add(-2*ServerOverTime)))
	require.NoError(t, clients.Bind(ctx, "node-1", "c1", 7))
	assert.False(t, clients.IsOnline(ctx, 7))
	assert.Empty(t, servers.All(ctx, time.Now()))

	require.NoError(t, servers.Set(ctx, "node-1", time.Now()))
	assert.True(t, clients.IsOnline(ctx, 7))
	assert.Equal(t, []string{"node-1"}, servers.All(ctx, time.Now()))
}

func TestClientStorage_Clean(t *testing.T) {
	ctx := context.Background()
	rds := newRedis(t)
	servers := NewServerStorage(rds)
	clients := NewClientStorage(rds, servers)

	require.NoError(t, servers.Set(ctx, "node-1", time.Now()))
	require.NoError(t, clients.Bind(ctx, "node-1", "c1", 7))
	require.NoError(t, clients.Bind(ctx, "node-1", "c2", 8))

	require.NoError(t, clients.Clean(ctx, "node-1"))
	assert.False(t, clients.IsOnline(ctx, 7))
	assert.False(t, clients.IsOnline(ctx, 8))
}
