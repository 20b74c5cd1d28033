package main

import (
	"os"

	"Memora/config"
	"Memora/pkg/log"
	s "Memora/socket"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := config.LoadEnv()
	cfg := config.New(config.Path(env))
	log.SetDebug(cfg.Debug())

	serve := func(ctx *cli.Context) error {
		return s.Run(ctx, InitSocketServer(cfg))
	}

	cliApp := &cli.App{
		Name:   "conn-server",
		Usage:  "memora realtime notification gateway",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start websocket server",
				Action: serve,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
