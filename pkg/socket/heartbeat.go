package socket

import (
	"context"
	"time"
)

const (
	heartbeatInterval = 10 // 心跳检测间隔时间
	heartbeatTimeout  = 35 // 心跳检测超时时间（超时时间是隔间检测时间的2.5倍以上）

	closeHeartbeatTimeout = 4000
)

// Heartbeat 周期检查连接，超时断开，空闲时下发 ping
func (h *Hub) Heartbeat(ctx context.Context) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.CloseAll()
			return nil
		case now := <-ticker.C:
			h.check(now.Unix())
		}
	}
}

func (h *Hub) check(now int64) {
	for _, c := range h.clients.Items() {
		if c.Closed() {
			continue
		}

		interval := now - c.lastTime.Load()
		if interval > heartbeatTimeout {
			c.Close(closeHeartbeatTimeout, "心跳检测超时")
			continue
		}

		if interval >= heartbeatInterval && now-c.pingTime.Load() >= heartbeatInterval {
			c.pingTime.Store(now)
			_ = c.Write(&ClientResponse{Event: "ping"})
		}
	}
}
