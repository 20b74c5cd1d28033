package realtime

import (
	"context"
	"testing"
	"time"

	"Memora/config"
	"Memora/dao/cache"
	"Memora/models"
	"Memora/service"
	"Memora/types"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func setup(t *testing.T) (*redis.Client, *cache.ServerStorage, *cache.ClientStorage) {
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })

	servers := cache.NewServerStorage(rds)
	return rds, servers, cache.NewClientStorage(rds, servers)
}

func payload(recipient uint64) *types.NoticePayload {
	source := uint64(42)
	return types.NewNoticePayload(&models.Notification{
		ID:           1001,
		RecipientID:  recipient,
		InteractorID: 2,
		Type:         models.NotificationLike,
		SourceID:     &source,
		CreatedAt:    time.Now(),
	}, models.UserBrief{ID: 2, Username: "bob"})
}

func TestEncode(t *testing.T) {
	body, err := Encode(7, payload(7))
	require.NoError(t, err)

	assert.Equal(t, types.EventNotification, gjson.GetBytes(body, "type").String())
	assert.Equal(t, "7", gjson.GetBytes(body, "recipient_id").String())
	assert.Equal(t, "LIKE", gjson.GetBytes(body, "data.type").String())
	assert.Equal(t, "42", gjson.GetBytes(body, "data.source_id").String())
	assert.Equal(t, "bob", gjson.GetBytes(body, "data.interactor.username").String())
}

func TestRedisPublisher_OnlineRecipient(t *testing.T) {
	ctx := context.Background()
	rds, servers, clients := setup(t)

	require.NoError(t, servers.Set(ctx, "node-1", time.Now()))
	require.NoError(t, clients.Bind(ctx, "node-1", "c1", 7))

	sub := rds.Subscribe(ctx, "memora_notice")
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	p := &RedisPublisher{Redis: rds, Clients: clients, Channel: "memora_notice"}
	require.NoError(t, p.Publish(ctx, 7, payload(7)))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, "7", gjson.Get(msg.Payload, "recipient_id").String())
	case <-time.After(2 * time.Second):
		t.Fatal("message not received")
	}
}

func TestRedisPublisher_OfflineRecipient(t *testing.T) {
	ctx := context.Background()
	rds, _, clients := setup(t)

	sub := rds.Subscribe(ctx, "memora_notice")
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	p := &RedisPublisher{Redis: rds, Clients: clients, Channel: "memora_notice"}
	require.NoError(t, p.Publish(ctx, 7, payload(7)))

	select {
	case msg := <-sub.Channel():
		t.Fatalf("unexpected message %s", msg.Payload)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNewPublisher_Driver(t *testing.T) {
	rds, _, clients := setup(t)

	p, cleanup := NewPublisher(&config.Config{}, rds, clients)
	defer cleanup()
	assert.IsType(t, service.NopPublisher{}, p)

	p, cleanup = NewPublisher(&config.Config{Realtime: &config.Realtime{Driver: config.RealtimeRedis}}, rds, clients)
	defer cleanup()
	require.IsType(t, &RedisPublisher{}, p)
	assert.Equal(t, "memora_notice", p.(*RedisPublisher).Channel)

	// 未配置 nameserver 时降级
	p, cleanup = NewPublisher(&config.Config{Realtime: &config.Realtime{Driver: config.RealtimeRocketMQ}}, rds, clients)
	defer cleanup()
	assert.IsType(t, service.NopPublisher{}, p)
}
