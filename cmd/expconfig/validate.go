package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/expconfig/internal/config"
	"github.com/atlanticdynamic/expconfig/internal/config/loader"
	"github.com/atlanticdynamic/expconfig/internal/fancy"
)

func newValidateCmd() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"lint"},
		Usage:   "Validate a configuration file",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "Show detailed tree view of the validated configuration",
			},
			newConfigFlag(),
		},
		Suggest: true,
		Action:  validateAction,
	}
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		if cmd.Args().Len() < 1 {
			return fmt.Errorf(
				"config file path required (use the --config flag, or provide the config file as positional argument)",
			)
		}
		configPath = cmd.Args().Get(0)
	}

	out := stdout(cmd)
	cfg, err := loader.NewConfig(configPath)
	if err != nil {
		fmt.Fprintf(out, "Configuration file %s is %s\n", fancy.PathText(configPath), fancy.ErrorText("invalid"))
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "Configuration file %s is %s\n", fancy.PathText(configPath), fancy.ValidText("valid"))

	if cmd.Bool("tree") {
		_, err = fmt.Fprintln(out, cfg)
		return err
	}

	_, err = fmt.Fprintln(out, renderConfigSummary(configPath, cfg))
	return err
}

// summaryFamilyWidth caps the font-family stack shown in the summary
const summaryFamilyWidth = 48

// renderConfigSummary creates a formatted summary string for the configuration
func renderConfigSummary(path string, cfg config.ExperimentConfig) string {
	var summary strings.Builder

	summary.WriteString("\nConfig Summary:\n")
	fmt.Fprintf(&summary, "- Path: %s\n", path)
	fmt.Fprintf(&summary, "- Version: %s\n", config.VersionLatest)
	fmt.Fprintf(&summary, "- Font: %s %s (%s)\n", cfg.FontSize,
		fancy.TruncateString(cfg.FontFamily, summaryFamilyWidth), cfg.FontColor)
	fmt.Fprintf(&summary, "- Comprehension: %s\n", strconv.FormatBool(cfg.Comprehension))
	fmt.Fprintf(&summary, "- Corrective feedback: %s\n", strconv.FormatBool(cfg.ShowCorrectiveFeedback()))
	summary.WriteString("\n" + fancy.SummaryText("Use --tree for a more detailed view of the config."))

	return summary.String()
}
