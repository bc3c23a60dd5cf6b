package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := Default()
	cfg.Run.OutputDir = "out"
	cfg.Run.ChannelURL = "https://www.youtube.com/@creator"
	return cfg
}

func TestValidate_MinimalValid(t *testing.T) {
	assert.Empty(t, validConfig().Validate())
}

func TestValidate_RequiredFields(t *testing.T) {
	errs := Default().Validate()
	assert.True(t, containsError(errs, "run.output_dir"), "expected output_dir error, got %v", errs)
	assert.True(t, containsError(errs, "run.channel_url"), "expected channel_url error, got %v", errs)
}

func TestValidate_Ranges(t *testing.T) {
	zero := 0
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"limit zero", func(c *Config) { c.Run.Limit = &zero }, "run.limit"},
		{"batch size", func(c *Config) { c.Run.BatchSize = 0 }, "run.batch_size"},
		{"retries", func(c *Config) { c.Download.Retries = -1 }, "download.retries"},
		{"delay", func(c *Config) { c.Download.DelaySeconds = -5 }, "download.delay_seconds"},
		{"format", func(c *Config) { c.Download.Format = "4k" }, "download.format"},
		{"mode", func(c *Config) { c.Metadata.Mode = "bulk" }, "metadata.mode"},
		{"scroll method", func(c *Config) { c.Discovery.ScrollMethod = "wheel" }, "discovery.scroll_method"},
		{"max scroll", func(c *Config) { c.Discovery.MaxScrollDuration = 0 }, "discovery.max_scroll_duration"},
		{"element timeout", func(c *Config) { c.Discovery.ElementTimeout = -time.Second }, "discovery.element_timeout"},
		{"stale threshold", func(c *Config) { c.Discovery.StaleThreshold = 0 }, "discovery.stale_threshold"},
		{"log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			errs := cfg.Validate()
			assert.Len(t, errs, 1)
			assert.True(t, containsError(errs, tt.want), "expected %s error, got %v", tt.want, errs)
		})
	}
}

func TestError_Format(t *testing.T) {
	err := &Error{Path: "shorts-batcher.toml", Missing: []string{"A", "B"}, Errors: []string{"run.limit: bad"}}

	assert.True(t, err.HasErrors())
	assert.Equal(t, "config shorts-batcher.toml:\nmissing environment variables: A, B\nvalidation failed:\n  - run.limit: bad", err.Error())
	assert.Empty(t, (&Error{}).Error())
}
