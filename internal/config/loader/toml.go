package loader

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/atlanticdynamic/expconfig/internal/config"
)

// tomlLoader implements the Loader interface for TOML files
type tomlLoader struct {
	source []byte
}

// NewTomlLoader creates a new TOML configuration loader
func NewTomlLoader(source []byte) Loader {
	return &tomlLoader{source: source}
}

// LoadDocument parses the TOML source on top of the defaults
func (l *tomlLoader) LoadDocument() (*config.Document, error) {
	if len(l.source) == 0 {
		return nil, ErrNoSourceProvided
	}

	// First, extract just the version to check compatibility
	var versionCheck struct {
		Version string `toml:"version"`
	}
	if err := toml.Unmarshal(l.source, &versionCheck); err != nil {
		return nil, fmt.Errorf("%w: failed to parse version from TOML config: %w", ErrDecode, err)
	}
	if err := checkVersion(&config.Document{Version: versionCheck.Version}); err != nil {
		return nil, err
	}

	doc := newDocument()
	dec := toml.NewDecoder(bytes.NewReader(l.source))
	dec.DisallowUnknownFields()
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := checkVersion(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
