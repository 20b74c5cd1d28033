package socket

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"Memora/pkg/log"

	"github.com/gorilla/websocket"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// IStorage 连接与用户绑定关系的共享存储
type IStorage interface {
	Bind(ctx context.Context, sid, cid string, uid uint64) error
	UnBind(ctx context.Context, sid, cid string) error
}

// Hub 当前节点上的所有连接
type Hub struct {
	sid     string
	storage IStorage
	clients cmap.ConcurrentMap[string, *Client]
	users   cmap.ConcurrentMap[string, cmap.ConcurrentMap[string, *Client]]
}

func NewHub(sid string, storage IStorage) *Hub {
	return &Hub{
		sid:     sid,
		storage: storage,
		clients: cmap.New[*Client](),
		users:   cmap.New[cmap.ConcurrentMap[string, *Client]](),
	}
}

// Serve 升级连接并阻塞到连接断开
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, uid uint64) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := newClient(conn, uid, 16)
	h.register(r.Context(), c)
	defer h.unregister(c)

	go c.writePump()
	c.readPump()
	return nil
}

func (h *Hub) register(ctx context.Context, c *Client) {
	h.clients.Set(c.cid, c)
	h.users.Upsert(userKey(c.uid), cmap.New[*Client](), func(exist bool, old, fresh cmap.ConcurrentMap[string, *Client]) cmap.ConcurrentMap[string, *Client] {
		if !exist {
			old = fresh
		}
		old.Set(c.cid, c)
		return old
	})

	if h.storage != nil {
		if err := h.storage.Bind(ctx, h.sid, c.cid, c.uid); err != nil {
			log.L.Warn("bind client failed", zap.String("cid", c.cid), zap.Error(err))
		}
	}
	log.L.Debug("client connected", zap.String("cid", c.cid), zap.Uint64("uid", c.uid))
}

func (h *Hub) unregister(c *Client) {
	c.Close(websocket.CloseNormalClosure, "")
	h.clients.Remove(c.cid)
	h.users.RemoveCb(userKey(c.uid), func(_ string, conns cmap.ConcurrentMap[string, *Client], exists bool) bool {
		if !exists {
			return false
		}
		conns.Remove(c.cid)
		return conns.IsEmpty()
	})

	if h.storage != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := h.storage.UnBind(ctx, h.sid, c.cid); err != nil {
			log.L.Warn("unbind client failed", zap.String("cid", c.cid), zap.Error(err))
		}
	}
	log.L.Debug("client disconnected", zap.String("cid", c.cid), zap.Uint64("uid", c.uid))
}

// Push 推送给用户在本节点上的全部连接，返回成功写入的连接数
func (h *Hub) Push(uid uint64, event string, content any) int {
	conns, ok := h.users.Get(userKey(uid))
	if !ok {
		return 0
	}

	resp := &ClientResponse{Event: event, Content: content}
	targets := conns.Items()

	var (
		wg   conc.WaitGroup
		sent = make(chan struct{}, len(targets))
	)
	for _, c := range targets {
		c := c
		wg.Go(func() {
			if err := c.Write(resp); err == nil {
				sent <- struct{}{}
			}
		})
	}
	wg.Wait()
	close(sent)

	return len(sent)
}

// Online 本节点上用户的连接数
func (h *Hub) Online(uid uint64) int {
	conns, ok := h.users.Get(userKey(uid))
	if !ok {
		return 0
	}
	return conns.Count()
}

func (h *Hub) Count() int {
	return h.clients.Count()
}

// CloseAll 关闭全部连接
func (h *Hub) CloseAll() {
	for _, c := range h.clients.Items() {
		c.Close(websocket.CloseGoingAway, "server shutdown")
	}
}

func userKey(uid uint64) string {
	return strconv.FormatUint(uid, 10)
}
