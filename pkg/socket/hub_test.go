package socket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	mu    sync.Mutex
	binds map[string]uint64
}

func (m *memStorage) Bind(_ context.Context, _ string, cid string, uid uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.binds[cid] = uid
	return nil
}

func (m *memStorage) UnBind(_ context.Context, _ string, cid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.binds, cid)
	return nil
}

func (m *memStorage) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.binds)
}

func newTestHub(t *testing.T) (*Hub, *memStorage, string) {
	storage := &memStorage{binds: map[string]uint64{}}
	hub := NewHub("test-node", storage)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, _ := strconv.ParseUint(r.URL.Query().Get("uid"), 10, 64)
		_ = hub.Serve(w, r, uid)
	}))
	t.Cleanup(srv.Close)

	return hub, storage, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string, uid uint64) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(url+"?uid="+strconv.FormatUint(uid, 10), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readResponse(t *testing.T, conn *websocket.Conn) map[string]any {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, body, err := conn.ReadMessage()
	require.NoError(t, err)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestHub_PushToAllConnections(t *testing.T) {
	hub, storage, url := newTestHub(t)

	first := dial(t, url, 7)
	second := dial(t, url, 7)
	other := dial(t, url, 8)

	require.Eventually(t, func() bool { return hub.Online(7) == 2 && hub.Online(8) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 3, storage.count())

	n := hub.Push(7, "notification", map[string]any{"type": "like"})
	assert.Equal(t, 2, n)

	for _, conn := range []*websocket.Conn{first, second} {
		resp := readResponse(t, conn)
		assert.Equal(t, "notification", resp["event"])
		assert.Equal(t, "like", resp["content"].(map[string]any)["type"])
	}

	require.NoError(t, other.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := other.ReadMessage()
	assert.Error(t, err)

	assert.Zero(t, hub.Push(99, "notification", nil))
}

func TestHub_PingPong(t *testing.T) {
	hub, _, url := newTestHub(t)
	conn := dial(t, url, 7)
	require.Eventually(t, func() bool { return hub.Online(7) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteJSON(map[string]string{"event": "ping"}))
	resp := readResponse(t, conn)
	assert.Equal(t, "pong", resp["event"])
}

func TestHub_UnregisterOnDisconnect(t *testing.T) {
	hub, storage, url := newTestHub(t)
	conn := dial(t, url, 7)
	require.Eventually(t, func() bool { return hub.Online(7) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool { return hub.Online(7) == 0 && hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.Zero(t, storage.count())
}

func TestHub_HeartbeatTimeout(t *testing.T) {
	hub, _, url := newTestHub(t)
	conn := dial(t, url, 7)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	var client *Client
	for _, c := range hub.clients.Items() {
		client = c
	}

	now := time.Now().Unix()
	client.lastTime.Store(now - heartbeatInterval)
	hub.check(now)
	assert.Equal(t, "ping", readResponse(t, conn)["event"])

	client.lastTime.Store(now - heartbeatTimeout - 1)
	hub.check(now)
	assert.True(t, client.Closed())

	require.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}
