package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/atlanticdynamic/expconfig/internal/config"
)

// jsonLoader implements the Loader interface for JSON files
type jsonLoader struct {
	source []byte
}

// NewJSONLoader creates a new JSON configuration loader
func NewJSONLoader(source []byte) Loader {
	return &jsonLoader{source: source}
}

// LoadDocument parses the JSON source on top of the defaults
func (l *jsonLoader) LoadDocument() (*config.Document, error) {
	if len(l.source) == 0 {
		return nil, ErrNoSourceProvided
	}

	doc := newDocument()
	doc.Version = ""
	dec := json.NewDecoder(bytes.NewReader(l.source))
	dec.DisallowUnknownFields()
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the top-level object", ErrDecode)
	}
	if err := checkVersion(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
