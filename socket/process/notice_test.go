package process

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Memora/config"
	"Memora/dao/cache"
	"Memora/pkg/socket"
	"Memora/types"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHub(t *testing.T, uid uint64) (*socket.Hub, *websocket.Conn) {
	hub := socket.NewHub("test-node", nil)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, uid)
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool { return hub.Online(uid) == 1 }, 2*time.Second, 10*time.Millisecond)
	return hub, conn
}

func message(t *testing.T, recipient uint64) []byte {
	body, err := json.Marshal(&types.SystemMessage{
		Type:        types.EventNotification,
		RecipientID: recipient,
		Data:        json.RawMessage(`{"type":"LIKE","notification_id":"1"}`),
	})
	require.NoError(t, err)
	return body
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var resp map[string]any
	require.NoError(t, conn.ReadJSON(&resp))
	return resp
}

func TestNoticeSubscribe_Handle(t *testing.T) {
	hub, conn := newHub(t, 7)
	m := &NoticeSubscribe{Hub: hub}

	assert.Zero(t, m.handle([]byte("not json")))
	assert.Zero(t, m.handle([]byte(`{"type":"chat","recipient_id":"7","data":{}}`)))
	assert.Zero(t, m.handle([]byte(`{"type":"notification","data":{}}`)))
	assert.Zero(t, m.handle(message(t, 8)))

	assert.Equal(t, 1, m.handle(message(t, 7)))

	resp := readEvent(t, conn)
	assert.Equal(t, types.EventNotification, resp["event"])
	assert.Equal(t, "LIKE", resp["content"].(map[string]any)["type"])
}

func TestNoticeSubscribe_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })

	hub, conn := newHub(t, 7)
	m := &NoticeSubscribe{
		Config: &config.Config{Realtime: &config.Realtime{Driver: config.RealtimeRedis}},
		Redis:  rds,
		Hub:    hub,
	}
	require.NoError(t, m.Init())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Setup(ctx) }()

	require.Eventually(t, func() bool {
		return len(mr.PubSubChannels("memora_notice")) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, rds.Publish(context.Background(), "memora_notice", message(t, 7)).Err())
	assert.Equal(t, types.EventNotification, readEvent(t, conn)["event"])

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("subscribe did not stop")
	}
}

func TestNoticeSubscribe_InitUnknownDriver(t *testing.T) {
	m := &NoticeSubscribe{Config: &config.Config{Realtime: &config.Realtime{Driver: "kafka"}}}
	assert.Error(t, m.Init())
}

func TestHealthSubscribe_Report(t *testing.T) {
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })

	servers := cache.NewServerStorage(rds)
	s := NewHealthSubscribe(servers, cache.NewClientStorage(rds, servers))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Setup(ctx) }()

	require.Eventually(t, func() bool {
		return len(servers.All(context.Background(), time.Now())) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Empty(t, servers.All(context.Background(), time.Now()))
}
