package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/expconfig/internal/config"
)

var ErrUnsupportedExportFormat = errors.New("unsupported export format")

// Export formats
const (
	formatJSON  = "json"
	formatTOML  = "toml"
	formatJS    = "js"
	formatCSS   = "css"
	formatProto = "proto"
)

var exportFormats = []string{formatJSON, formatTOML, formatJS, formatCSS, formatProto}

func newExportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Render the experiment configuration in a format the front-end can consume",
		Flags: []cli.Flag{
			newConfigFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (" + strings.Join(exportFormats, ", ") + ")",
				Value:   formatJSON,
			},
			&cli.StringFlag{
				Name:  "selector",
				Usage: "CSS selector for the css format",
				Value: config.DefaultSelector,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write to this file instead of stdout",
			},
		},
		Action: exportAction,
	}
}

func exportAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := activeConfig(cmd)
	if err != nil {
		return err
	}

	data, err := render(cfg, cmd.String("format"), cmd.String("selector"))
	if err != nil {
		return err
	}

	if path := cmd.String("output"); path != "" {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	}

	_, err = stdout(cmd).Write(data)
	return err
}

// render encodes cfg in format. Every rendering ends with a newline.
func render(cfg config.ExperimentConfig, format, selector string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(format) {
	case formatJSON:
		data, err = cfg.ToJSON()
	case formatTOML:
		data, err = cfg.ToTOML()
	case formatJS:
		data = []byte(cfg.ToJSModule())
	case formatCSS:
		data = []byte(cfg.ToCSS(selector))
	case formatProto:
		data, err = cfg.ToProtoJSON()
	default:
		return nil, fmt.Errorf("%w: %q (expected one of %s)",
			ErrUnsupportedExportFormat, format, strings.Join(exportFormats, ", "))
	}
	if err != nil {
		return nil, err
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}
