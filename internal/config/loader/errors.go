package loader

import (
	"errors"
	"fmt"
)

// Loader-specific errors
var (
	ErrFailedToLoadConfig   = errors.New("failed to load config")
	ErrNoSourceProvided     = errors.New("no source provided to loader")
	ErrFileNotFound         = errors.New("config file does not exist")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrUnsupportedConfigVer = errors.New("unsupported config version")
	ErrDecode               = errors.New("failed to decode config")
)

// FormatFileError creates an error with file path context
func FormatFileError(err error, path string) error {
	return fmt.Errorf("%w: %s", err, path)
}
