package ports

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_ports.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"shortsbatcher/internal/core/domain"
)

var (
	// ErrToolNotFound is returned when the media fetcher binary cannot be launched.
	ErrToolNotFound = errors.New("media fetcher not found")

	// ErrBrowserSession is returned when the browser cannot be started or navigated.
	ErrBrowserSession = errors.New("browser session error")

	// ErrElementTimeout is returned when the first video link never shows up.
	ErrElementTimeout = errors.New("timed out waiting for page element")
)

// Browser starts browser-automation sessions.
type Browser interface {
	// Launch starts a session with the given capability flags.
	// The caller must Close the returned session.
	Launch(ctx context.Context, opts domain.BrowserOptions) (BrowserSession, error)
}

// BrowserSession is a single rendered page driven by the discovery loop.
type BrowserSession interface {
	Navigate(ctx context.Context, url string) error

	// WaitFor blocks until selector matches at least one element or timeout elapses.
	WaitFor(ctx context.Context, selector string, timeout time.Duration) error

	Scroll(ctx context.Context, method domain.ScrollMethod) error

	// Count returns how many elements currently match selector.
	Count(ctx context.Context, selector string) (int, error)

	// Hrefs returns the raw href attribute of every element matching selector.
	Hrefs(ctx context.Context, selector string) ([]string, error)

	Close() error
}

// VideoInfo is what the media fetcher reports about one video.
type VideoInfo struct {
	ID          string
	Title       string
	Description string
}

// DownloadRequest describes one media fetcher invocation.
type DownloadRequest struct {
	URL       string
	OutputDir string
	Format    string
	Retries   int
	Proxy     string
}

// DownloadResult is the outcome of a finished media fetcher process.
type DownloadResult struct {
	ExitCode int
	Stderr   string
}

// MediaFetcher defines the contract for the external video fetching tool.
type MediaFetcher interface {
	// FetchInfo extracts metadata for a single video without downloading it.
	FetchInfo(ctx context.Context, videoURL, proxy string) (*VideoInfo, error)

	// FetchListing extracts metadata for the first limit entries of a listing.
	// A limit of zero requests every entry.
	FetchListing(ctx context.Context, listingURL string, limit int, proxy string) ([]VideoInfo, error)

	// Download runs the tool to completion. A non-zero exit is reported in the
	// result, not as an error. ErrToolNotFound means the process never started.
	Download(ctx context.Context, req DownloadRequest) (*DownloadResult, error)
}

// Storage defines the contract for the flat per-run files.
type Storage interface {
	// InitRoot creates the top-level output directory.
	InitRoot(ctx context.Context) error

	// InitBatch creates the batch directory.
	InitBatch(ctx context.Context, batch domain.Batch) error

	// SaveFailedURLs writes one URL per line to the batch's error file.
	SaveFailedURLs(ctx context.Context, batchIndex int, urls []string) (string, error)

	// MetadataPath returns where the batch metadata export lives.
	MetadataPath(batch domain.Batch, ext string) string

	// StatusPath returns where the master status export lives.
	StatusPath(channelName, ext string) string
}

// Exporter writes tabular exports.
type Exporter interface {
	// Extension is the file extension including the dot, e.g. ".xlsx".
	Extension() string

	WriteMetadata(path string, records []domain.VideoRecord) error

	WriteStatus(path string, entries []domain.StatusEntry) error
}

// Reporter receives progress for display.
type Reporter interface {
	// Progress reports a status line for the given state.
	Progress(state domain.State, message string)

	// Alert reports a condition the operator has to act on.
	Alert(state domain.State, message string)
}
