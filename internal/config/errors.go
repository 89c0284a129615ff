package config

import (
	"errors"
	"fmt"
)

var (
	ErrFailedToValidateConfig = errors.New("failed to validate config")
	ErrMissingRequiredField   = errors.New("missing required field")
	ErrInvalidColor           = errors.New("invalid font color")
	ErrInvalidFontSize        = errors.New("invalid font size")
	ErrInvalidFontFamily      = errors.New("invalid font family")
)

// Conversion errors
var (
	ErrInvalidType  = errors.New("invalid field type")
	ErrUnknownField = errors.New("unknown field")
	ErrNilStruct    = errors.New("nil struct")
)

// fieldError wraps a base error with the wire name of the offending field
func fieldError(baseErr error, key string, value any) error {
	return fmt.Errorf("%w: %s=%q", baseErr, key, fmt.Sprint(value))
}
