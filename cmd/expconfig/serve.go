package main

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/expconfig/cmd/expconfig/server"
	"github.com/atlanticdynamic/expconfig/internal/config"
)

func newServeCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the experiment configuration over HTTP",
		Flags: []cli.Flag{
			newConfigFlag(),
			&cli.StringFlag{
				Name:    "listen",
				Aliases: []string{"l"},
				Usage:   "Address to bind the HTTP listener (host:port)",
				Value:   server.DefaultListenAddr,
			},
			&cli.StringFlag{
				Name:  "selector",
				Usage: "CSS selector used in the served stylesheet",
				Value: config.DefaultSelector,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := activeConfig(cmd)
			if err != nil {
				return err
			}

			return server.Run(ctx, slog.Default(), cfg, server.Options{
				ListenAddr: cmd.String("listen"),
				Selector:   cmd.String("selector"),
			})
		},
	}
}
