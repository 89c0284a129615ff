package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	VersionLatest  = "v1"
	VersionUnknown = "UNKNOWN"
)

// DefaultSelector is the CSS selector used when rendering style rules.
const DefaultSelector = ".experiment"

// Document is the on-disk layout of an experiment configuration file.
type Document struct {
	Version    string           `json:"version"    toml:"version"`
	Experiment ExperimentConfig `json:"experiment" toml:"experiment"`
}

// ToJSON renders the configuration as indented JSON.
func (c ExperimentConfig) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to JSON: %w", err)
	}
	return data, nil
}

// ToTOML renders the configuration as a versioned TOML document that the
// loader can read back.
func (c ExperimentConfig) ToTOML() ([]byte, error) {
	data, err := toml.Marshal(Document{Version: VersionLatest, Experiment: c})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to TOML: %w", err)
	}
	return data, nil
}

// ToJSModule renders the configuration as an ES module whose default export
// is the configuration object.
func (c ExperimentConfig) ToJSModule() string {
	var b strings.Builder
	b.WriteString("// Set configurations for experiment\n\n")
	b.WriteString("const experimentConfig = {\n")
	fmt.Fprintf(&b, "    %s: %s,\n", KeyFontColor, jsString(c.FontColor))
	fmt.Fprintf(&b, "    %s: %s,\n", KeyFontSize, jsString(c.FontSize))
	fmt.Fprintf(&b, "    %s: %s,\n", KeyFontFamily, jsString(c.FontFamily))
	fmt.Fprintf(&b, "    %s: %t,\n", KeyComprehension, c.Comprehension)
	fmt.Fprintf(&b, "    %s: %t // Only relevant if comprehension is set to true\n",
		KeyCorrectiveFeedback, c.CorrectiveFeedback)
	b.WriteString("};\n\n")
	b.WriteString("export default experimentConfig;\n")
	return b.String()
}

// ToCSS renders the typography settings as a CSS rule for selector. An empty
// selector falls back to DefaultSelector.
func (c ExperimentConfig) ToCSS(selector string) string {
	if selector == "" {
		selector = DefaultSelector
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", selector)
	fmt.Fprintf(&b, "  color: %s;\n", c.FontColor)
	fmt.Fprintf(&b, "  font-size: %s;\n", c.FontSize)
	fmt.Fprintf(&b, "  font-family: %s;\n", c.FontFamily)
	b.WriteString("}\n")
	return b.String()
}

// jsString quotes s as a JavaScript string literal. JSON string escaping is a
// subset of JavaScript's, and encoding/json also escapes U+2028 and U+2029.
func jsString(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(data)
}
