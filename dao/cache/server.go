package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	serverKey = "ws:servers"
	// ServerOverTime 超过该时间未上报心跳视为下线
	ServerOverTime = 50 * time.Second
)

// ServerStorage 记录在线的 conn-server 节点
type ServerStorage struct {
	redis *redis.Client
}

func NewServerStorage(redis *redis.Client) *ServerStorage {
	return &ServerStorage{redis}
}

// Set 上报节点心跳
func (s *ServerStorage) Set(ctx context.Context, sid string, at time.Time) error {
	return s.redis.HSet(ctx, serverKey, sid, at.Unix()).Err()
}

func (s *ServerStorage) Del(ctx context.Context, sid string) error {
	return s.redis.HDel(ctx, serverKey, sid).Err()
}

// All 心跳未过期的节点
func (s *ServerStorage) All(ctx context.Context, now time.Time) []string {
	items, err := s.redis.HGetAll(ctx, serverKey).Result()
	if err != nil {
		return nil
	}

	alive := make([]string, 0, len(items))
	for sid, value := range items {
		last, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		if now.Sub(time.Unix(last, 0)) <= ServerOverTime {
			alive = append(alive, sid)
		}
	}
	return alive
}

// IsAlive 节点是否在线
func (s *ServerStorage) IsAlive(ctx context.Context, sid string, now time.Time) bool {
	value, err := s.redis.HGet(ctx, serverKey, sid).Int64()
	if err != nil {
		return false
	}
	return now.Sub(time.Unix(value, 0)) <= ServerOverTime
}
