package config

import (
	"strconv"

	"github.com/atlanticdynamic/expconfig/internal/fancy"
)

// String returns a pretty-printed tree representation of the config
func (c ExperimentConfig) String() string {
	return ConfigTree(c)
}

// ConfigTree converts an ExperimentConfig into a rendered tree string
func ConfigTree(cfg ExperimentConfig) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render("Experiment Config (" + VersionLatest + ")"))

	colorValue := cfg.FontColor
	if parsed, err := ParseColor(cfg.FontColor); err == nil && parsed.IsConcrete() {
		colorValue = fancy.Swatch(parsed.Hex) + " " + cfg.FontColor
	}

	typography := fancy.BranchNode("Typography", "(3)")
	typography.Child(fancy.KeyValue(KeyFontColor, colorValue))
	typography.Child(fancy.KeyValue(KeyFontSize, cfg.FontSize))
	typography.Child(fancy.KeyValue(KeyFontFamily, cfg.FontFamily))
	t.Child(typography)

	flags := fancy.BranchNode("Flags", "(2)")
	flags.Child(fancy.KeyStyle.Render(KeyComprehension+":") + " " + fancy.FlagText(cfg.Comprehension))
	feedbackText := fancy.KeyStyle.Render(KeyCorrectiveFeedback+":") + " " + fancy.FlagText(cfg.CorrectiveFeedback)
	if cfg.HasOrphanedFeedback() {
		// Child returns the receiver, so nested notes need their own subtree
		flags.Child(fancy.Tree().Root(feedbackText).Child(
			fancy.InfoStyle.Render("no effect: " + KeyComprehension + " is disabled"),
		))
	} else {
		flags.Child(feedbackText)
	}
	t.Child(flags)

	t.Child(fancy.KeyValue("effective feedback", strconv.FormatBool(cfg.ShowCorrectiveFeedback())))

	return t.String()
}
