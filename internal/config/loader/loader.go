// Package loader reads experiment configuration files. Values present in a
// file replace the defaults; absent values keep them.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atlanticdynamic/expconfig/internal/config"
)

type LoaderFunc func([]byte) Loader

// Loader handles loading configuration from various sources
type Loader interface {
	// LoadDocument decodes the source into a versioned document
	LoadDocument() (*config.Document, error)
}

// NewLoaderFromBytes creates a new Loader with the provided bytes
func NewLoaderFromBytes(data []byte, loaderFunc LoaderFunc) (Loader, error) {
	if len(data) == 0 {
		return nil, ErrNoSourceProvided
	}
	return loaderFunc(data), nil
}

// NewLoaderFromReader creates a new Loader from an io.Reader
func NewLoaderFromReader(reader io.Reader, loaderFunc LoaderFunc) (Loader, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read config data from reader: %w", err)
	}
	return NewLoaderFromBytes(data, loaderFunc)
}

// NewLoaderFromFilePath creates a new Loader from a file path, choosing the
// decoder by file extension
func NewLoaderFromFilePath(filePath string) (Loader, error) {
	loaderFunc, err := loaderForExtension(filepath.Ext(filePath))
	if err != nil {
		return nil, FormatFileError(err, filePath)
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, FormatFileError(ErrFileNotFound, filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filePath, err)
	}

	l, err := NewLoaderFromBytes(data, loaderFunc)
	if err != nil {
		return nil, FormatFileError(err, filePath)
	}
	return l, nil
}

func loaderForExtension(ext string) (LoaderFunc, error) {
	switch strings.ToLower(ext) {
	case ".toml":
		return NewTomlLoader, nil
	case ".json":
		return NewJSONLoader, nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedExtension, ext)
	}
}

// Load decodes the document from l and returns its validated configuration
func Load(l Loader) (config.ExperimentConfig, error) {
	doc, err := l.LoadDocument()
	if err != nil {
		return config.ExperimentConfig{}, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	if err := doc.Experiment.Validate(); err != nil {
		return config.ExperimentConfig{}, err
	}
	return doc.Experiment, nil
}

// newDocument returns a document pre-populated with the default configuration
func newDocument() *config.Document {
	return &config.Document{
		Version:    config.VersionLatest,
		Experiment: config.Default(),
	}
}

// checkVersion defaults an empty version to the latest and rejects anything else
func checkVersion(doc *config.Document) error {
	if doc.Version == "" {
		doc.Version = config.VersionLatest
	}
	if doc.Version != config.VersionLatest {
		return fmt.Errorf("%w: %s", ErrUnsupportedConfigVer, doc.Version)
	}
	return nil
}
