package handler

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	wire.Struct(new(Follow), "*"),
	wire.Struct(new(Like), "*"),
	wire.Struct(new(Comment), "*"),
	wire.Struct(new(Notification), "*"),
	wire.Struct(new(User), "*"),
	wire.Struct(new(Health), "*"),
)
