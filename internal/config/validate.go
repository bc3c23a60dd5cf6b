package config

import (
	"fmt"
	"strings"

	"shortsbatcher/internal/core/domain"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if strings.TrimSpace(c.Run.OutputDir) == "" {
		errs = append(errs, "run.output_dir: required")
	}
	if strings.TrimSpace(c.Run.ChannelURL) == "" {
		errs = append(errs, "run.channel_url: required")
	}
	if c.Run.Limit != nil && *c.Run.Limit <= 0 {
		errs = append(errs, fmt.Sprintf("run.limit: must be a positive integer, got %d", *c.Run.Limit))
	}
	if c.Run.BatchSize <= 0 {
		errs = append(errs, fmt.Sprintf("run.batch_size: must be positive, got %d", c.Run.BatchSize))
	}

	if _, ok := domain.LookupFormat(c.Download.Format); !ok {
		errs = append(errs, fmt.Sprintf("download.format: must be one of %s; got %q",
			strings.Join(domain.FormatNames(), ", "), c.Download.Format))
	}
	if c.Download.Retries < 0 {
		errs = append(errs, fmt.Sprintf("download.retries: must not be negative, got %d", c.Download.Retries))
	}
	if c.Download.DelaySeconds < 0 {
		errs = append(errs, fmt.Sprintf("download.delay_seconds: must not be negative, got %d", c.Download.DelaySeconds))
	}

	if !domain.MetadataMode(c.Metadata.Mode).Valid() {
		errs = append(errs, fmt.Sprintf("metadata.mode: must be one of per-url, listing; got %q", c.Metadata.Mode))
	}
	if c.Metadata.Timeout < 0 {
		errs = append(errs, "metadata.timeout: must not be negative")
	}

	if !domain.ScrollMethod(c.Discovery.ScrollMethod).Valid() {
		errs = append(errs, fmt.Sprintf("discovery.scroll_method: must be one of end-key, js-bottom, js-viewport; got %q", c.Discovery.ScrollMethod))
	}
	if c.Discovery.ScrollPause < 0 {
		errs = append(errs, "discovery.scroll_pause: must not be negative")
	}
	if c.Discovery.MaxScrollDuration <= 0 {
		errs = append(errs, "discovery.max_scroll_duration: must be positive")
	}
	if c.Discovery.ElementTimeout <= 0 {
		errs = append(errs, "discovery.element_timeout: must be positive")
	}
	if c.Discovery.StaleThreshold <= 0 {
		errs = append(errs, fmt.Sprintf("discovery.stale_threshold: must be positive, got %d", c.Discovery.StaleThreshold))
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	return errs
}
