package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"shortsbatcher/internal/channelurl"
	"shortsbatcher/internal/core/domain"
	"shortsbatcher/internal/core/ports"
	"shortsbatcher/internal/runctl"
)

// ShortsLinkSelector matches the video links of a shorts listing.
const ShortsLinkSelector = "a[href^='/shorts/']"

const shortsPrefix = "/shorts/"

// DiscoveryOptions configure one discovery pass.
type DiscoveryOptions struct {
	Limit   int // 0 means no limit
	Browser domain.BrowserOptions
	Scroll  domain.ScrollOptions
}

// Discoverer scrolls a rendered shorts listing until it stops growing and
// collects the video links.
type Discoverer struct {
	browser  ports.Browser
	reporter ports.Reporter
	logger   *slog.Logger
	now      func() time.Time
}

// NewDiscoverer creates a new Discoverer.
func NewDiscoverer(browser ports.Browser, reporter ports.Reporter, logger *slog.Logger) *Discoverer {
	return &Discoverer{browser: browser, reporter: reporter, logger: logger, now: time.Now}
}

// Discover returns the unique shorts URLs of listingURL in first-seen order,
// truncated to opts.Limit. Session failures and the initial element wait
// are not retried. A cancelled ctx aborts the loop and returns ctx.Err().
func (d *Discoverer) Discover(ctx context.Context, listingURL string, opts DiscoveryOptions) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.reporter.Progress(domain.StateDiscovering, "Launching browser")
	session, err := d.browser.Launch(ctx, opts.Browser)
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	release := runctl.Hold(ctx, runctl.SlotSession, runctl.HandleFunc(session.Close))
	defer func() {
		release()
		if err := session.Close(); err != nil {
			d.logger.Warn("closing browser session", "error", err)
		}
	}()

	d.logger.Info("opening listing", "url", listingURL)
	if err := session.Navigate(ctx, listingURL); err != nil {
		return nil, fmt.Errorf("navigate to %s: %w", listingURL, err)
	}

	d.reporter.Progress(domain.StateDiscovering, "Waiting for shorts to load")
	if err := session.WaitFor(ctx, ShortsLinkSelector, opts.Scroll.ElementTimeout); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("wait for shorts links: %w", err)
	}

	if err := d.scroll(ctx, session, opts); err != nil {
		return nil, err
	}

	hrefs, err := session.Hrefs(ctx, ShortsLinkSelector)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("collect links: %w", err)
	}

	urls := extractShortURLs(hrefs, opts.Limit)
	d.logger.Info("discovery finished", "links", len(hrefs), "unique", len(urls))
	d.reporter.Progress(domain.StateDiscovering, fmt.Sprintf("Found %d unique shorts", len(urls)))
	return urls, nil
}

// scroll runs the scroll-until-stable loop. It only fails on cancellation.
func (d *Discoverer) scroll(ctx context.Context, session ports.BrowserSession, opts DiscoveryOptions) error {
	threshold := opts.Scroll.StaleThreshold
	if threshold <= 0 {
		threshold = domain.DefaultScrollOptions().StaleThreshold
	}

	last, err := session.Count(ctx, ShortsLinkSelector)
	if err != nil {
		d.logger.Warn("counting links", "error", err)
	}
	start := d.now()
	stale := 0

	for {
		if err := ctx.Err(); err != nil {
			d.logger.Info("discovery cancelled", "found", last)
			return err
		}
		if opts.Limit > 0 && last >= opts.Limit {
			d.logger.Info("limit reached", "found", last, "limit", opts.Limit)
			return nil
		}
		if opts.Scroll.MaxDuration > 0 && d.now().Sub(start) >= opts.Scroll.MaxDuration {
			d.logger.Warn("scroll ceiling reached", "found", last, "max_duration", opts.Scroll.MaxDuration)
			return nil
		}

		if err := session.Scroll(ctx, opts.Scroll.Method); err != nil {
			d.logger.Warn("scroll action failed", "method", opts.Scroll.Method, "error", err)
		}
		if err := sleep(ctx, opts.Scroll.Pause); err != nil {
			d.logger.Info("discovery cancelled", "found", last)
			return err
		}

		count, err := session.Count(ctx, ShortsLinkSelector)
		if err != nil {
			d.logger.Warn("counting links", "error", err)
			count = last
		}
		if count > last {
			stale = 0
		} else {
			stale++
		}
		last = count
		d.logger.Debug("scrolled", "found", count, "stale", stale)
		d.reporter.Progress(domain.StateDiscovering, fmt.Sprintf("Scrolling: %d shorts found", count))

		if stale >= threshold {
			d.logger.Info("listing stable", "found", count, "stale", stale)
			return nil
		}
	}
}

// extractShortURLs turns raw hrefs into absolute shorts URLs, dropping
// anything outside the listing prefix and repeats. limit 0 keeps all.
func extractShortURLs(hrefs []string, limit int) []string {
	seen := make(map[string]bool, len(hrefs))
	urls := make([]string, 0, len(hrefs))
	for _, href := range hrefs {
		u, ok := normalizeShortURL(href)
		if !ok || seen[u] {
			continue
		}
		seen[u] = true
		urls = append(urls, u)
		if limit > 0 && len(urls) == limit {
			break
		}
	}
	return urls
}

func normalizeShortURL(href string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	if u.Host != "" && !strings.HasSuffix(strings.ToLower(u.Host), "youtube.com") {
		return "", false
	}
	id, ok := strings.CutPrefix(u.Path, shortsPrefix)
	if !ok {
		return "", false
	}
	id, _, _ = strings.Cut(id, "/")
	if id == "" {
		return "", false
	}
	return ShortURL(id), true
}

// ShortURL returns the canonical URL of the short with the given id.
func ShortURL(id string) string {
	return channelurl.BaseURL + shortsPrefix + id
}
