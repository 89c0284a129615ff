package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/expconfig/internal/config"
	"github.com/atlanticdynamic/expconfig/internal/config/loader"
)

func newConfigFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a TOML or JSON configuration file (defaults are used when omitted)",
	}
}

func newShowCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the active experiment configuration as a tree",
		Flags: []cli.Flag{newConfigFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := activeConfig(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout(cmd), cfg)
			return err
		},
	}
}

// activeConfig returns the configuration named by --config, or the defaults
func activeConfig(cmd *cli.Command) (config.ExperimentConfig, error) {
	cfg, err := loader.NewConfigOrDefault(cmd.String("config"))
	if err != nil {
		return config.ExperimentConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// stdout returns the root command's writer
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
