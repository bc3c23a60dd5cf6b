package domain

import "time"

// ScrollMethod selects how the discovery loop asks the page to load more items.
type ScrollMethod string

const (
	ScrollEndKey      ScrollMethod = "end-key"     // send the End key to <body>
	ScrollJSBottom    ScrollMethod = "js-bottom"   // scroll the document to its full height
	ScrollJSViewport  ScrollMethod = "js-viewport" // scroll down by one viewport height
	DefaultScrollMode              = ScrollEndKey
)

// ScrollMethods lists the supported strategies in display order.
var ScrollMethods = []ScrollMethod{ScrollEndKey, ScrollJSBottom, ScrollJSViewport}

// Valid reports whether m is a known strategy.
func (m ScrollMethod) Valid() bool {
	for _, v := range ScrollMethods {
		if v == m {
			return true
		}
	}
	return false
}

// MetadataMode selects how titles and descriptions are fetched.
type MetadataMode string

const (
	// MetadataPerURL discovers URLs in a browser, then queries each one.
	MetadataPerURL MetadataMode = "per-url"
	// MetadataListing asks the media fetcher for the whole listing at once.
	MetadataListing MetadataMode = "listing"
)

// Valid reports whether m is a known mode.
func (m MetadataMode) Valid() bool {
	return m == MetadataPerURL || m == MetadataListing
}

// BrowserOptions are the capability flags of the discovery browser session.
type BrowserOptions struct {
	Headless              bool
	NoSandbox             bool
	DisableDevShmUsage    bool
	DisableNotifications  bool
	DisableExtensions     bool
	DisableGPU            bool
	EnableWebGL           bool
	EnableSmoothScrolling bool
	LangEnUS              bool
	StartMaximized        bool
	ExecPath              string
	Proxy                 string
}

// DefaultBrowserOptions mirrors the toggles a fresh install starts with.
func DefaultBrowserOptions() BrowserOptions {
	return BrowserOptions{
		Headless:             true,
		NoSandbox:            true,
		DisableDevShmUsage:   true,
		DisableNotifications: true,
		DisableExtensions:    true,
		DisableGPU:           true,
		LangEnUS:             true,
	}
}

// ScrollOptions tune the scroll-until-stable loop.
type ScrollOptions struct {
	Method         ScrollMethod
	Pause          time.Duration // wait after each scroll for lazy content
	MaxDuration    time.Duration // hard ceiling on the whole loop
	ElementTimeout time.Duration // wait for the first video link
	StaleThreshold int           // consecutive unchanged counts before stopping
}

// DefaultScrollOptions returns the tuning used when nothing is configured.
func DefaultScrollOptions() ScrollOptions {
	return ScrollOptions{
		Method:         DefaultScrollMode,
		Pause:          5 * time.Second,
		MaxDuration:    15 * time.Minute,
		ElementTimeout: 20 * time.Second,
		StaleThreshold: 7,
	}
}

// RunConfig is captured once at run start and never modified afterwards.
type RunConfig struct {
	OutputDir    string
	ChannelURL   string
	Limit        int // 0 means no limit
	BatchSize    int
	FormatName   string
	Format       string // yt-dlp format selector
	Retries      int
	Delay        time.Duration
	Proxy        string
	MetadataMode MetadataMode
	Browser      BrowserOptions
	Scroll       ScrollOptions
}
