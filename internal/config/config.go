// Package config defines the experiment configuration record handed to the
// experiment front-end, along with its validation and wire renderings.
package config

// Default values for the experiment configuration.
const (
	DefaultFontColor          = "black"
	DefaultFontSize           = "20px"
	DefaultFontFamily         = "'Open Sans', 'Arial', sans-serif"
	DefaultComprehension      = true
	DefaultCorrectiveFeedback = true
)

// Field names used on every wire format (JSON, TOML, maps, ES modules).
const (
	KeyFontColor          = "fontColor"
	KeyFontSize           = "fontSize"
	KeyFontFamily         = "fontFamily"
	KeyComprehension      = "comprehension"
	KeyCorrectiveFeedback = "correctiveFeedback"
)

// keys lists the wire field names in declaration order.
var keys = []string{
	KeyFontColor,
	KeyFontSize,
	KeyFontFamily,
	KeyComprehension,
	KeyCorrectiveFeedback,
}

// ExperimentConfig holds the styling and feature flags for the experiment
// front-end. It is always passed by value, so a copy held by one caller can
// never change what another caller sees.
type ExperimentConfig struct {
	// FontColor is a CSS color keyword or hex value for stimulus text.
	FontColor string `json:"fontColor" toml:"fontColor"`

	// FontSize is a CSS length, e.g. "20px".
	FontSize string `json:"fontSize" toml:"fontSize"`

	// FontFamily is a CSS font-family stack.
	FontFamily string `json:"fontFamily" toml:"fontFamily"`

	// Comprehension enables the comprehension-check trials.
	Comprehension bool `json:"comprehension" toml:"comprehension"`

	// CorrectiveFeedback shows feedback after a wrong comprehension answer.
	// Only relevant when Comprehension is true.
	CorrectiveFeedback bool `json:"correctiveFeedback" toml:"correctiveFeedback"`
}

// Default returns the experiment configuration. Every call returns an equal value.
func Default() ExperimentConfig {
	return ExperimentConfig{
		FontColor:          DefaultFontColor,
		FontSize:           DefaultFontSize,
		FontFamily:         DefaultFontFamily,
		Comprehension:      DefaultComprehension,
		CorrectiveFeedback: DefaultCorrectiveFeedback,
	}
}

// ShowCorrectiveFeedback reports whether corrective feedback is actually in
// effect, which requires comprehension checks to be enabled as well.
func (c ExperimentConfig) ShowCorrectiveFeedback() bool {
	return c.Comprehension && c.CorrectiveFeedback
}

// HasOrphanedFeedback is true when CorrectiveFeedback is set but has no
// effect because comprehension checks are disabled.
func (c ExperimentConfig) HasOrphanedFeedback() bool {
	return c.CorrectiveFeedback && !c.Comprehension
}

// Equals reports whether two configurations hold the same values.
func (c ExperimentConfig) Equals(other ExperimentConfig) bool {
	return c == other
}
