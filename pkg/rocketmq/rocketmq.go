package rocketmq

import (
	"Memora/config"
	"Memora/pkg/log"
	"context"
	"fmt"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

func init() {
	rlog.SetLogLevel("error")
}

// InitProducer 创建并启动生产者
func InitProducer(cfg *config.RocketMQConfig) (rocketmq.Producer, error) {
	if cfg == nil || len(cfg.NameServer) == 0 {
		return nil, fmt.Errorf("rocketmq nameserver not configured")
	}

	retry := cfg.Producer.Retry
	if retry <= 0 {
		retry = 2
	}

	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(retry),
	)
	if err != nil {
		return nil, err
	}
	if err = p.Start(); err != nil {
		return nil, err
	}
	log.L.Info("init producer success", zap.Strings("nameserver", cfg.NameServer))
	return p, nil
}

// InitConsumer 创建推模式消费者，订阅完成后由调用方 Start
func InitConsumer(cfg *config.RocketMQConfig) (rocketmq.PushConsumer, error) {
	if cfg == nil || len(cfg.NameServer) == 0 {
		return nil, fmt.Errorf("rocketmq nameserver not configured")
	}

	return rocketmq.NewPushConsumer(
		consumer.WithNameServer(cfg.NameServer),
		consumer.WithGroupName(cfg.Consumer.Group),
		consumer.WithConsumerModel(consumer.BroadCasting),
	)
}

// SendMsg 同步发送
func SendMsg(ctx context.Context, p rocketmq.Producer, topic string, body []byte) error {
	res, err := p.SendSync(ctx, primitive.NewMessage(topic, body))
	if err != nil {
		return err
	}
	log.L.Debug("send message success", zap.String("msg_id", res.MsgID))
	return nil
}
