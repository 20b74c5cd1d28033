package handler

import (
	"Memora/config"

	"github.com/google/wire"
)

type Handler struct {
	Notice *NoticeChannel
	Config *config.Config
}

var ProviderSet = wire.NewSet(
	wire.Struct(new(NoticeChannel), "*"),
	wire.Struct(new(Handler), "*"),
)
