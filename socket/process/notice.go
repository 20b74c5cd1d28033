package process

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"Memora/config"
	"Memora/pkg/log"
	mq "Memora/pkg/rocketmq"
	"Memora/pkg/server"
	"Memora/pkg/socket"
	"Memora/types"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// NoticeSubscribe 订阅 api-server 发出的通知，推给本节点上的在线连接
type NoticeSubscribe struct {
	Config *config.Config
	Redis  *redis.Client
	Hub    *socket.Hub
}

func (m *NoticeSubscribe) Init() error {
	switch driver := config.ProvideRealtimeConfig(m.Config).Driver; driver {
	case config.RealtimeRedis, config.RealtimeRocketMQ, config.RealtimeNone, "":
		return nil
	default:
		return fmt.Errorf("unknown realtime driver: %s", driver)
	}
}

func (m *NoticeSubscribe) Setup(ctx context.Context) error {
	rt := config.ProvideRealtimeConfig(m.Config)

	switch rt.Driver {
	case config.RealtimeRedis:
		return m.subscribeRedis(ctx, rt.Topic())
	case config.RealtimeRocketMQ:
		return m.subscribeMQ(ctx, rt.Topic())
	default:
		log.L.Info("realtime push disabled")
		<-ctx.Done()
		return nil
	}
}

func (m *NoticeSubscribe) subscribeRedis(ctx context.Context, channel string) error {
	log.L.Info("start notice subscribe", zap.String("channel", channel), zap.String("server_id", server.GetServerId()))

	sub := m.Redis.Subscribe(ctx, channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			m.handle([]byte(msg.Payload))
		}
	}
}

func (m *NoticeSubscribe) subscribeMQ(ctx context.Context, topic string) error {
	c, err := mq.InitConsumer(m.Config.RocketMQ)
	if err != nil {
		return fmt.Errorf("init notice consumer: %w", err)
	}

	log.L.Info("start notice consumer", zap.String("topic", topic), zap.String("server_id", server.GetServerId()))
	if err := c.Subscribe(topic, consumer.MessageSelector{}, m.handleMessage); err != nil {
		return fmt.Errorf("subscribe topic error: %w", err)
	}

	if err := c.Start(); err != nil {
		log.L.Error("start notice consumer error", zap.Error(err))
		go m.restart(ctx, c)
	}

	<-ctx.Done()
	log.L.Info("shutting down notice consumer")
	return c.Shutdown()
}

// restart 启动失败时定期重试
func (m *NoticeSubscribe) restart(ctx context.Context, c rocketmq.PushConsumer) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Start(); err == nil {
				log.L.Info("start notice consumer successfully")
				return
			}
		}
	}
}

func (m *NoticeSubscribe) handleMessage(_ context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, msg := range msgs {
		m.handle(msg.Body)
	}
	return consumer.ConsumeSuccess, nil
}

// handle 返回推送到的连接数，接收者不在本节点时为 0
func (m *NoticeSubscribe) handle(body []byte) int {
	if !gjson.ValidBytes(body) {
		log.L.Warn("invalid notice message", zap.ByteString("body", body))
		return 0
	}

	event := gjson.GetBytes(body, "type").String()
	if event != types.EventNotification {
		log.L.Debug("skip message", zap.String("type", event))
		return 0
	}

	recipient := gjson.GetBytes(body, "recipient_id").Uint()
	data := gjson.GetBytes(body, "data")
	if recipient == 0 || !data.Exists() {
		log.L.Warn("malformed notice message", zap.ByteString("body", body))
		return 0
	}

	return m.Hub.Push(recipient, types.EventNotification, json.RawMessage(data.Raw))
}
