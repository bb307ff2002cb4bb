//go:build wireinject

package main

import (
	"github.com/google/wire"
)

func InitApp(args Args) (*App, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		ProvideScanner,
		ProvideRecentStore,
		ProvideOutput,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
