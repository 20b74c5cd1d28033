package process

import (
	"context"
	"time"

	"Memora/dao/cache"
	"Memora/pkg/log"
	"Memora/pkg/server"

	"go.uber.org/zap"
)

const healthInterval = 5 * time.Second

type HealthSubscribe struct {
	storage *cache.ServerStorage
	clients *cache.ClientStorage
}

func NewHealthSubscribe(storage *cache.ServerStorage, clients *cache.ClientStorage) *HealthSubscribe {
	return &HealthSubscribe{storage: storage, clients: clients}
}

func (s *HealthSubscribe) Init() error {
	return nil
}

func (s *HealthSubscribe) Setup(ctx context.Context) error {
	sid := server.GetServerId()
	log.L.Info("start health subscribe", zap.String("server_id", sid))

	s.report(ctx, sid)

	timer := time.NewTicker(healthInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.offline(sid)
			return nil
		case <-timer.C:
			s.report(ctx, sid)
		}
	}
}

func (s *HealthSubscribe) report(ctx context.Context, sid string) {
	if err := s.storage.Set(ctx, sid, time.Now()); err != nil {
		log.L.Error("websocket health report failed", zap.Error(err))
	}
}

// offline 节点下线，清理心跳和连接绑定
func (s *HealthSubscribe) offline(sid string) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := s.storage.Del(ctx, sid); err != nil {
		log.L.Warn("remove server heartbeat failed", zap.Error(err))
	}
	if err := s.clients.Clean(ctx, sid); err != nil {
		log.L.Warn("clean client binding failed", zap.Error(err))
	}
}
