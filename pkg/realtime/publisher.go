package realtime

import (
	"context"
	"encoding/json"

	"Memora/config"
	"Memora/dao/cache"
	"Memora/pkg/log"
	mq "Memora/pkg/rocketmq"
	"Memora/service"
	"Memora/types"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewPublisher)

// Encode 包装成跨进程消息
func Encode(recipientID uint64, payload *types.NoticePayload) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&types.SystemMessage{
		Type:        types.EventNotification,
		RecipientID: recipientID,
		Data:        data,
	})
}

// RedisPublisher 通过 redis pub/sub 广播给所有 conn-server
type RedisPublisher struct {
	Redis   *redis.Client
	Clients *cache.ClientStorage
	Channel string
}

func (p *RedisPublisher) Publish(ctx context.Context, recipientID uint64, payload *types.NoticePayload) error {
	// 接收者不在线时不广播
	if p.Clients != nil && !p.Clients.IsOnline(ctx, recipientID) {
		return nil
	}

	body, err := Encode(recipientID, payload)
	if err != nil {
		return err
	}
	return p.Redis.Publish(ctx, p.Channel, body).Err()
}

// MQPublisher 投递到 rocketmq topic，由 conn-server 广播消费
type MQPublisher struct {
	Producer rocketmq.Producer
	Topic    string
}

func (p *MQPublisher) Publish(ctx context.Context, recipientID uint64, payload *types.NoticePayload) error {
	body, err := Encode(recipientID, payload)
	if err != nil {
		return err
	}
	return mq.SendMsg(ctx, p.Producer, p.Topic, body)
}

// NewPublisher 按配置选择推送通道，初始化失败时降级为不推送
func NewPublisher(conf *config.Config, rds *redis.Client, clients *cache.ClientStorage) (service.INoticePublisher, func()) {
	rt := config.ProvideRealtimeConfig(conf)

	switch rt.Driver {
	case config.RealtimeRedis:
		log.L.Info("realtime publisher", zap.String("driver", rt.Driver), zap.String("channel", rt.Topic()))
		return &RedisPublisher{Redis: rds, Clients: clients, Channel: rt.Topic()}, func() {}
	case config.RealtimeRocketMQ:
		producer, err := mq.InitProducer(conf.RocketMQ)
		if err != nil {
			log.L.Error("init rocketmq producer failed, realtime push disabled", zap.Error(err))
			return service.NopPublisher{}, func() {}
		}
		log.L.Info("realtime publisher", zap.String("driver", rt.Driver), zap.String("topic", rt.Topic()))
		return &MQPublisher{Producer: producer, Topic: rt.Topic()}, func() {
			if err := producer.Shutdown(); err != nil {
				log.L.Warn("shutdown rocketmq producer", zap.Error(err))
			}
		}
	default:
		return service.NopPublisher{}, func() {}
	}
}
