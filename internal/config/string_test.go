package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigTree(t *testing.T) {
	out := Default().String()

	assert.Contains(t, out, "Experiment Config (v1)")
	assert.Contains(t, out, "Typography")
	assert.Contains(t, out, "black")
	assert.Contains(t, out, "20px")
	assert.Contains(t, out, "'Open Sans', 'Arial', sans-serif")
	assert.Contains(t, out, "Flags")
	assert.Contains(t, out, "comprehension")
	assert.Contains(t, out, "enabled")
	assert.Contains(t, out, "effective feedback")
	assert.NotContains(t, out, "no effect")
}

func TestConfigTree_OrphanedFeedback(t *testing.T) {
	cfg := Default()
	cfg.Comprehension = false

	out := ConfigTree(cfg)
	assert.Contains(t, out, "disabled")
	assert.Contains(t, out, "no effect: comprehension is disabled")
}

func TestConfigTree_NonConcreteColor(t *testing.T) {
	cfg := Default()
	cfg.FontColor = "currentcolor"

	assert.Contains(t, ConfigTree(cfg), "currentcolor")
}
