package socket

import (
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"Memora/pkg/log"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var ErrClientClosed = errors.New("client closed")

const (
	writeWait      = 5 * time.Second
	maxMessageSize = 4 << 10
)

// ClientResponse 下发给客户端的消息
type ClientResponse struct {
	Event   string `json:"event"`
	Content any    `json:"content,omitempty"`
}

// clientRequest 客户端上行消息，目前只处理心跳
type clientRequest struct {
	Event string `json:"event"`
}

// Client 单个 websocket 连接
type Client struct {
	cid      string
	uid      uint64
	conn     *websocket.Conn
	send     chan []byte
	lastTime atomic.Int64 // 最后一次收到客户端消息的时间
	pingTime atomic.Int64
	closed   atomic.Bool
	once     sync.Once
	done     chan struct{}
}

func newClient(conn *websocket.Conn, uid uint64, buffer int) *Client {
	if buffer <= 0 {
		buffer = 16
	}
	c := &Client{
		cid:  uuid.NewString(),
		uid:  uid,
		conn: conn,
		send: make(chan []byte, buffer),
		done: make(chan struct{}),
	}
	c.lastTime.Store(time.Now().Unix())
	return c
}

func (c *Client) Cid() string { return c.cid }

func (c *Client) Uid() uint64 { return c.uid }

func (c *Client) Closed() bool { return c.closed.Load() }

// Write 放入发送队列，队列满时丢弃
func (c *Client) Write(resp *ClientResponse) error {
	if c.Closed() {
		return ErrClientClosed
	}

	body, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	select {
	case c.send <- body:
		return nil
	case <-c.done:
		return ErrClientClosed
	default:
		log.L.Warn("client send buffer full", zap.String("cid", c.cid), zap.Uint64("uid", c.uid))
		return errors.New("send buffer full")
	}
}

// Close 发送关闭帧并断开连接，可重复调用
func (c *Client) Close(code int, text string) {
	c.once.Do(func() {
		c.closed.Store(true)
		close(c.done)
		msg := websocket.FormatCloseMessage(code, text)
		_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
		_ = c.conn.Close()
	})
}

func (c *Client) readPump() {
	c.conn.SetReadLimit(maxMessageSize)
	for {
		_, body, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		c.lastTime.Store(time.Now().Unix())

		var req clientRequest
		if err := json.Unmarshal(body, &req); err != nil {
			continue
		}
		if req.Event == "ping" {
			_ = c.Write(&ClientResponse{Event: "pong"})
		}
	}
}

func (c *Client) writePump() {
	for {
		select {
		case <-c.done:
			return
		case body := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, body); err != nil {
				c.Close(websocket.CloseAbnormalClosure, "write failed")
				return
			}
		}
	}
}
