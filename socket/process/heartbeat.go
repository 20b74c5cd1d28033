package process

import (
	"context"

	"Memora/pkg/socket"
)

type HeartbeatSubscribe struct {
	Hub *socket.Hub
}

func (s *HeartbeatSubscribe) Init() error {
	return nil
}

func (s *HeartbeatSubscribe) Setup(ctx context.Context) error {
	return s.Hub.Heartbeat(ctx)
}
