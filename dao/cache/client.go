package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ClientStorage websocket 连接与用户的绑定关系
type ClientStorage struct {
	redis   *redis.Client
	storage *ServerStorage
}

func NewClientStorage(redis *redis.Client, storage *ServerStorage) *ClientStorage {
	return &ClientStorage{redis: redis, storage: storage}
}

// Bind 绑定连接和用户
// @params sid  服务节点ID
// @params cid  客户端连接ID
// @params uid  用户ID
func (c *ClientStorage) Bind(ctx context.Context, sid, cid string, uid uint64) error {
	_, err := c.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, c.clientKey(sid), cid, uid)
		pipe.HIncrBy(ctx, c.userLocationKey(uid), sid, 1)
		return nil
	})
	return err
}

// UnBind 解除绑定，节点上的连接数归零时移除该节点
func (c *ClientStorage) UnBind(ctx context.Context, sid, cid string) error {
	uid, err := c.redis.HGet(ctx, c.clientKey(sid), cid).Uint64()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	if err := c.redis.HDel(ctx, c.clientKey(sid), cid).Err(); err != nil {
		return err
	}

	left, err := c.redis.HIncrBy(ctx, c.userLocationKey(uid), sid, -1).Result()
	if err != nil {
		return err
	}
	if left <= 0 {
		return c.redis.HDel(ctx, c.userLocationKey(uid), sid).Err()
	}
	return nil
}

// IsOnline 用户是否在任一存活节点上有连接
func (c *ClientStorage) IsOnline(ctx context.Context, uid uint64) bool {
	return len(c.Servers(ctx, uid)) > 0
}

// Servers 用户连接所在的存活节点
func (c *ClientStorage) Servers(ctx context.Context, uid uint64) []string {
	items, err := c.redis.HGetAll(ctx, c.userLocationKey(uid)).Result()
	if err != nil {
		return nil
	}

	now := time.Now()
	sids := make([]string, 0, len(items))
	for sid, count := range items {
		n, err := strconv.Atoi(count)
		if err != nil || n <= 0 {
			continue
		}
		if c.storage.IsAlive(ctx, sid, now) {
			sids = append(sids, sid)
		}
	}
	return sids
}

// Clean 节点退出时清理它上面的绑定
func (c *ClientStorage) Clean(ctx context.Context, sid string) error {
	items, err := c.redis.HGetAll(ctx, c.clientKey(sid)).Result()
	if err != nil {
		return err
	}
	for cid := range items {
		if err := c.UnBind(ctx, sid, cid); err != nil {
			return err
		}
	}
	return c.redis.Del(ctx, c.clientKey(sid)).Err()
}

func (c *ClientStorage) userLocationKey(uid uint64) string {
	return fmt.Sprintf("ws:user:location:%d", uid)
}

func (c *ClientStorage) clientKey(sid string) string {
	return fmt.Sprintf("ws:%s:client", sid)
}
