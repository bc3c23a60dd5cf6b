package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortsbatcher/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[run]
output_dir = "/data/shorts"
channel_url = "https://www.youtube.com/@creator"
limit = 25
batch_size = 10

[download]
format = "720p"
retries = 0
delay_seconds = 2
proxy = "socks5://127.0.0.1:1080"

[metadata]
mode = "listing"

[discovery]
scroll_method = "js-viewport"
scroll_pause = "1500ms"
stale_threshold = 3

[browser]
headless = false
start_maximized = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Validate())

	rc := cfg.RunConfig()
	assert.Equal(t, "/data/shorts", rc.OutputDir)
	assert.Equal(t, 25, rc.Limit)
	assert.Equal(t, 10, rc.BatchSize)
	assert.Equal(t, "720p", rc.FormatName)
	assert.Contains(t, rc.Format, "height<=720")
	assert.Equal(t, 0, rc.Retries)
	assert.Equal(t, 2*time.Second, rc.Delay)
	assert.Equal(t, "socks5://127.0.0.1:1080", rc.Proxy)
	assert.Equal(t, "socks5://127.0.0.1:1080", rc.Browser.Proxy)
	assert.Equal(t, domain.MetadataListing, rc.MetadataMode)
	assert.Equal(t, domain.ScrollJSViewport, rc.Scroll.Method)
	assert.Equal(t, 1500*time.Millisecond, rc.Scroll.Pause)
	assert.Equal(t, 3, rc.Scroll.StaleThreshold)
	assert.Equal(t, 15*time.Minute, rc.Scroll.MaxDuration, "unset keys keep their default")
	assert.False(t, rc.Browser.Headless)
	assert.True(t, rc.Browser.StartMaximized)
	assert.True(t, rc.Browser.NoSandbox)
}

func TestDefault_RunConfig(t *testing.T) {
	cfg := Default()
	cfg.Run.OutputDir = "out"
	cfg.Run.ChannelURL = "@creator"

	require.Empty(t, cfg.Validate())
	rc := cfg.RunConfig()
	assert.Equal(t, 0, rc.Limit)
	assert.Equal(t, domain.DefaultBatchSize, rc.BatchSize)
	assert.Equal(t, 3, rc.Retries)
	assert.Equal(t, 5*time.Second, rc.Delay)
	assert.Equal(t, "bestvideo+bestaudio/best", rc.Format)
	assert.Equal(t, domain.MetadataPerURL, rc.MetadataMode)
	assert.Equal(t, domain.DefaultScrollOptions(), rc.Scroll)
	assert.Equal(t, domain.DefaultBrowserOptions(), rc.Browser)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	path := writeConfig(t, `
[download]
proxy = "${SHORTS_BATCHER_TEST_UNSET_PROXY}"
`)

	_, err := Load(path)
	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"SHORTS_BATCHER_TEST_UNSET_PROXY"}, cfgErr.Missing)
	assert.Contains(t, err.Error(), "SHORTS_BATCHER_TEST_UNSET_PROXY")
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("SHORTS_BATCHER_TEST_OUT", "/srv/out")
	path := writeConfig(t, `
[run]
output_dir = "${SHORTS_BATCHER_TEST_OUT}"
channel_url = "${SHORTS_BATCHER_TEST_CHANNEL:-@fallback}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/out", cfg.Run.OutputDir)
	assert.Equal(t, "@fallback", cfg.Run.ChannelURL)
}

func TestLoad_ParseError(t *testing.T) {
	_, err := Load(writeConfig(t, "[run\n"))
	assert.ErrorContains(t, err, "parsing config")
}

func TestLoadOrDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := LoadOrDefault(missing, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = LoadOrDefault(missing, true)
	assert.Error(t, err)
}

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("SB_SET", "value")
	t.Setenv("SB_EMPTY", "")

	tests := []struct {
		in      string
		want    string
		missing []string
	}{
		{"a = ${SB_SET}", "a = value", nil},
		{"a = ${SB_EMPTY}", "a = ", nil},
		{"a = ${SB_EMPTY:-fallback}", "a = fallback", nil},
		{"a = ${SB_SET:-fallback}", "a = value", nil},
		{"a = ${SB_NOT_SET_ANYWHERE} ${SB_NOT_SET_ANYWHERE}", "a = ${SB_NOT_SET_ANYWHERE} ${SB_NOT_SET_ANYWHERE}", []string{"SB_NOT_SET_ANYWHERE"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, missing := substituteEnvVars(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.missing, missing)
		})
	}
}

func TestLogConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", LogConfig{Level: "debug"}.SlogLevel().String())
	assert.Equal(t, "INFO", LogConfig{Level: ""}.SlogLevel().String())
	assert.Equal(t, "ERROR", LogConfig{Level: "error"}.SlogLevel().String())
}
