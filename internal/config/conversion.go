package config

import (
	"errors"
	"fmt"
	"sort"
)

// ToMap returns the configuration as a map keyed by the wire field names.
func (c ExperimentConfig) ToMap() map[string]any {
	return map[string]any{
		KeyFontColor:          c.FontColor,
		KeyFontSize:           c.FontSize,
		KeyFontFamily:         c.FontFamily,
		KeyComprehension:      c.Comprehension,
		KeyCorrectiveFeedback: c.CorrectiveFeedback,
	}
}

// FromMap builds a configuration from a map produced by ToMap, or any decoder
// yielding the same shape. Every field is required and no extra keys are allowed.
func FromMap(m map[string]any) (ExperimentConfig, error) {
	var cfg ExperimentConfig
	errz := []error{}

	for _, key := range unknownKeys(m) {
		errz = append(errz, fmt.Errorf("%w: %s", ErrUnknownField, key))
	}

	var err error
	if cfg.FontColor, err = stringField(m, KeyFontColor); err != nil {
		errz = append(errz, err)
	}
	if cfg.FontSize, err = stringField(m, KeyFontSize); err != nil {
		errz = append(errz, err)
	}
	if cfg.FontFamily, err = stringField(m, KeyFontFamily); err != nil {
		errz = append(errz, err)
	}
	if cfg.Comprehension, err = boolField(m, KeyComprehension); err != nil {
		errz = append(errz, err)
	}
	if cfg.CorrectiveFeedback, err = boolField(m, KeyCorrectiveFeedback); err != nil {
		errz = append(errz, err)
	}

	if len(errz) > 0 {
		return ExperimentConfig{}, errors.Join(errz...)
	}
	return cfg, nil
}

func stringField(m map[string]any, key string) (string, error) {
	raw, ok := m[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingRequiredField, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidType, key, raw)
	}
	return s, nil
}

func boolField(m map[string]any, key string) (bool, error) {
	raw, ok := m[key]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrMissingRequiredField, key)
	}
	b, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a boolean, got %T", ErrInvalidType, key, raw)
	}
	return b, nil
}

// unknownKeys returns the keys of m that are not wire field names, sorted
func unknownKeys(m map[string]any) []string {
	known := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		known[k] = struct{}{}
	}

	extra := []string{}
	for k := range m {
		if _, ok := known[k]; !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return extra
}
