package socket

import (
	"Memora/dao/cache"
	"Memora/pkg/server"
	"Memora/pkg/socket"
	"Memora/socket/handler"
	"Memora/socket/process"
	"Memora/socket/router"

	"github.com/google/wire"
)

// NewHub 以当前节点 ID 创建连接管理
func NewHub(clients *cache.ClientStorage) *socket.Hub {
	return socket.NewHub(server.GetServerId(), clients)
}

var ProviderSet = wire.NewSet(
	router.NewRouter,
	NewHub,

	// process
	wire.Struct(new(process.SubServers), "*"),
	process.NewServer,
	process.NewHealthSubscribe,
	wire.Struct(new(process.HeartbeatSubscribe), "*"),
	wire.Struct(new(process.NoticeSubscribe), "*"),

	handler.ProviderSet,

	// AppProvider
	wire.Struct(new(AppProvider), "*"),
)
