//go:build wireinject
// +build wireinject

package main

import (
	"Memora/config"
	"Memora/dao"
	"Memora/dao/cache"
	"Memora/handler"
	"Memora/pkg/client"
	"Memora/pkg/database"
	"Memora/pkg/realtime"
	"Memora/pkg/server"
	"Memora/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func()) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		cache.ProviderSet,
		realtime.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,
		handler.ProviderSet,
		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil, nil
}
