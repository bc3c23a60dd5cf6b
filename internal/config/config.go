// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"

	"shortsbatcher/internal/core/domain"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "shorts-batcher.toml"

// Config is the root configuration structure.
type Config struct {
	Run       RunOptions      `toml:"run"`
	Download  DownloadConfig  `toml:"download"`
	Metadata  MetadataConfig  `toml:"metadata"`
	Discovery DiscoveryConfig `toml:"discovery"`
	Browser   BrowserConfig   `toml:"browser"`
	Log       LogConfig       `toml:"log"`
}

type RunOptions struct {
	OutputDir  string `toml:"output_dir"`
	ChannelURL string `toml:"channel_url"`
	Limit      *int   `toml:"limit"`
	BatchSize  int    `toml:"batch_size"`
}

type DownloadConfig struct {
	Format       string `toml:"format"`
	Retries      int    `toml:"retries"`
	DelaySeconds int    `toml:"delay_seconds"`
	Proxy        string `toml:"proxy"`
	YtDlpPath    string `toml:"ytdlp_path"`
}

type MetadataConfig struct {
	Mode    string        `toml:"mode"`
	Timeout time.Duration `toml:"timeout"`
}

type DiscoveryConfig struct {
	ScrollMethod      string        `toml:"scroll_method"`
	ScrollPause       time.Duration `toml:"scroll_pause"`
	MaxScrollDuration time.Duration `toml:"max_scroll_duration"`
	ElementTimeout    time.Duration `toml:"element_timeout"`
	StaleThreshold    int           `toml:"stale_threshold"`
}

type BrowserConfig struct {
	Headless              bool   `toml:"headless"`
	NoSandbox             bool   `toml:"no_sandbox"`
	DisableDevShmUsage    bool   `toml:"disable_dev_shm_usage"`
	DisableNotifications  bool   `toml:"disable_notifications"`
	DisableExtensions     bool   `toml:"disable_extensions"`
	DisableGPU            bool   `toml:"disable_gpu"`
	EnableWebGL           bool   `toml:"enable_webgl"`
	EnableSmoothScrolling bool   `toml:"enable_smooth_scrolling"`
	LangEnUS              bool   `toml:"lang_en_us"`
	StartMaximized        bool   `toml:"start_maximized"`
	ExecPath              string `toml:"exec_path"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used for anything the file leaves out.
func Default() *Config {
	b := domain.DefaultBrowserOptions()
	s := domain.DefaultScrollOptions()
	return &Config{
		Run: RunOptions{
			BatchSize: domain.DefaultBatchSize,
		},
		Download: DownloadConfig{
			Format:       domain.DefaultFormat,
			Retries:      3,
			DelaySeconds: 5,
		},
		Metadata: MetadataConfig{
			Mode:    string(domain.MetadataPerURL),
			Timeout: 2 * time.Minute,
		},
		Discovery: DiscoveryConfig{
			ScrollMethod:      string(s.Method),
			ScrollPause:       s.Pause,
			MaxScrollDuration: s.MaxDuration,
			ElementTimeout:    s.ElementTimeout,
			StaleThreshold:    s.StaleThreshold,
		},
		Browser: BrowserConfig{
			Headless:              b.Headless,
			NoSandbox:             b.NoSandbox,
			DisableDevShmUsage:    b.DisableDevShmUsage,
			DisableNotifications:  b.DisableNotifications,
			DisableExtensions:     b.DisableExtensions,
			DisableGPU:            b.DisableGPU,
			EnableWebGL:           b.EnableWebGL,
			EnableSmoothScrolling: b.EnableSmoothScrolling,
			LangEnUS:              b.LangEnUS,
			StartMaximized:        b.StartMaximized,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads and parses the configuration file over the defaults.
// It does not validate; call Validate once flag overrides are applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &Error{Path: path, Missing: missing}
	}

	cfg := Default()
	if _, err := toml.Decode(content, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults
// when it is not required.
func LoadOrDefault(path string, required bool) (*Config, error) {
	cfg, err := Load(path)
	if !required && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// RunConfig captures the immutable settings of one run.
func (c *Config) RunConfig() domain.RunConfig {
	preset, _ := domain.LookupFormat(c.Download.Format)
	limit := 0
	if c.Run.Limit != nil {
		limit = *c.Run.Limit
	}
	return domain.RunConfig{
		OutputDir:    c.Run.OutputDir,
		ChannelURL:   c.Run.ChannelURL,
		Limit:        limit,
		BatchSize:    c.Run.BatchSize,
		FormatName:   preset.Name,
		Format:       preset.Selector,
		Retries:      c.Download.Retries,
		Delay:        time.Duration(c.Download.DelaySeconds) * time.Second,
		Proxy:        c.Download.Proxy,
		MetadataMode: domain.MetadataMode(c.Metadata.Mode),
		Browser: domain.BrowserOptions{
			Headless:              c.Browser.Headless,
			NoSandbox:             c.Browser.NoSandbox,
			DisableDevShmUsage:    c.Browser.DisableDevShmUsage,
			DisableNotifications:  c.Browser.DisableNotifications,
			DisableExtensions:     c.Browser.DisableExtensions,
			DisableGPU:            c.Browser.DisableGPU,
			EnableWebGL:           c.Browser.EnableWebGL,
			EnableSmoothScrolling: c.Browser.EnableSmoothScrolling,
			LangEnUS:              c.Browser.LangEnUS,
			StartMaximized:        c.Browser.StartMaximized,
			ExecPath:              c.Browser.ExecPath,
			Proxy:                 c.Download.Proxy,
		},
		Scroll: domain.ScrollOptions{
			Method:         domain.ScrollMethod(c.Discovery.ScrollMethod),
			Pause:          c.Discovery.ScrollPause,
			MaxDuration:    c.Discovery.MaxScrollDuration,
			ElementTimeout: c.Discovery.ElementTimeout,
			StaleThreshold: c.Discovery.StaleThreshold,
		},
	}
}

// SlogLevel maps the configured level name to a slog level.
func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// envVarPattern matches ${VAR} and ${VAR:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
// Unset names without a default are left in place and reported.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	seen := map[string]bool{}
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatchIndex(match)
		name := match[m[2]:m[3]]
		hasDefault := m[4] >= 0
		if value, ok := os.LookupEnv(name); ok && (value != "" || !hasDefault) {
			return value
		}
		if hasDefault {
			return match[m[4]:m[5]]
		}
		if !seen[name] {
			seen[name] = true
			missing = append(missing, name)
		}
		return match
	})
	return out, missing
}
