package loader

import (
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/expconfig/internal/config"
)

// NewConfig loads and validates the configuration in filePath
func NewConfig(filePath string) (config.ExperimentConfig, error) {
	l, err := NewLoaderFromFilePath(filePath)
	if err != nil {
		return config.ExperimentConfig{}, fmt.Errorf("failed to load config from file: %w", err)
	}
	return loadAndWarn(l, slog.Default().With("path", filePath))
}

// NewConfigFromBytes loads and validates TOML configuration bytes
func NewConfigFromBytes(data []byte) (config.ExperimentConfig, error) {
	l, err := NewLoaderFromBytes(data, NewTomlLoader)
	if err != nil {
		return config.ExperimentConfig{}, fmt.Errorf("failed to load config from bytes: %w", err)
	}
	return loadAndWarn(l, slog.Default())
}

// NewConfigOrDefault loads filePath, or returns the defaults when filePath is empty
func NewConfigOrDefault(filePath string) (config.ExperimentConfig, error) {
	if filePath == "" {
		return config.Default(), nil
	}
	return NewConfig(filePath)
}

func loadAndWarn(l Loader, logger *slog.Logger) (config.ExperimentConfig, error) {
	cfg, err := Load(l)
	if err != nil {
		return config.ExperimentConfig{}, err
	}
	if cfg.HasOrphanedFeedback() {
		logger.Warn(
			"correctiveFeedback is set but has no effect while comprehension is disabled",
			"comprehension", cfg.Comprehension,
			"correctiveFeedback", cfg.CorrectiveFeedback,
		)
	}
	return cfg, nil
}
