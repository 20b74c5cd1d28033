package process

import (
	"context"
	"reflect"
	"sync"

	"Memora/pkg/log"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type IServer interface {
	Init() error
	Setup(ctx context.Context) error
}

// SubServers 守护协程列表
type SubServers struct {
	HealthSubscribe    *HealthSubscribe    // 节点健康上报
	HeartbeatSubscribe *HeartbeatSubscribe // 客户端心跳检测
	NoticeSubscribe    *NoticeSubscribe    // 通知订阅
}

type Server struct {
	once  sync.Once
	items []IServer
}

func NewServer(servers *SubServers) *Server {
	s := &Server{}
	s.binds(servers)
	return s
}

func (c *Server) binds(servers *SubServers) {
	elem := reflect.ValueOf(servers).Elem()
	for i := 0; i < elem.NumField(); i++ {
		if v, ok := elem.Field(i).Interface().(IServer); ok && !elem.Field(i).IsNil() {
			c.items = append(c.items, v)
		}
	}
}

// Start 启动服务
func (c *Server) Start(eg *errgroup.Group, ctx context.Context) {
	c.once.Do(func() {
		for _, process := range c.items {
			if err := process.Init(); err != nil {
				log.L.Fatal("init process failed", zap.String("process", reflect.TypeOf(process).String()), zap.Error(err))
			}
		}

		for _, process := range c.items {
			serv := process
			eg.Go(func() error {
				return serv.Setup(ctx)
			})
		}
	})
}
