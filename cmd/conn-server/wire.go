//go:build wireinject
// +build wireinject

package main

import (
	"Memora/config"
	"Memora/dao/cache"
	"Memora/pkg/client"
	"Memora/socket"

	"github.com/google/wire"
)

func InitSocketServer(cfg *config.Config) *socket.AppProvider {
	wire.Build(
		client.NewRedisClient,
		cache.ProviderSet,
		socket.ProviderSet,
	)
	return nil
}
