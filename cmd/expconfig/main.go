package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the root command
func newApp() *cli.Command {
	logs := &logSetup{}

	return &cli.Command{
		Name:    "expconfig",
		Version: Version,
		Usage:   "Inspect, export and serve the reading experiment configuration",
		Flags:   globalFlags(),
		Before:  logs.before,
		After:   logs.after,
		Commands: []*cli.Command{
			newShowCmd(),
			newExportCmd(),
			newValidateCmd(),
			newServeCmd(),
			newVersionCmd(),
		},
	}
}

// globalFlags configure logging for every subcommand
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (trace, debug, info, warn, error)",
			Value: "info",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format (text, json)",
			Value: "text",
		},
		&cli.StringFlag{
			Name:  "log-output",
			Usage: "Log destination (stdout, stderr, or a file path)",
			Value: "stderr",
		},
	}
}
