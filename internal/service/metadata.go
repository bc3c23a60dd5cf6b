package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"shortsbatcher/internal/core/domain"
	"shortsbatcher/internal/core/ports"
)

// DefaultTitle is used when the media fetcher reports no title.
const DefaultTitle = "Untitled"

// MetadataFetcher resolves titles and descriptions through the media fetcher.
type MetadataFetcher struct {
	media    ports.MediaFetcher
	reporter ports.Reporter
	logger   *slog.Logger
}

// NewMetadataFetcher creates a new MetadataFetcher.
func NewMetadataFetcher(media ports.MediaFetcher, reporter ports.Reporter, logger *slog.Logger) *MetadataFetcher {
	return &MetadataFetcher{media: media, reporter: reporter, logger: logger}
}

// FetchEach queries every URL in order. URLs that fail or come back without
// an id are returned in failed and never abort the loop. On cancellation the
// records gathered so far are returned with ctx.Err(). A missing media
// fetcher aborts with ports.ErrToolNotFound.
func (f *MetadataFetcher) FetchEach(ctx context.Context, urls []string, proxy string) ([]domain.VideoRecord, []string, error) {
	records := make([]domain.VideoRecord, 0, len(urls))
	var failed []string

	for i, u := range urls {
		if err := ctx.Err(); err != nil {
			f.logger.Info("metadata fetch cancelled", "done", i, "total", len(urls))
			return records, failed, err
		}
		f.reporter.Progress(domain.StateFetchingMetadata, fmt.Sprintf("Fetching metadata %d/%d", i+1, len(urls)))

		info, err := f.media.FetchInfo(ctx, u, proxy)
		switch {
		case errors.Is(err, ports.ErrToolNotFound):
			return records, failed, err
		case err != nil && ctx.Err() != nil:
			return records, failed, ctx.Err()
		case err != nil:
			f.logger.Warn("metadata fetch failed", "url", u, "error", err)
			failed = append(failed, u)
			continue
		case info == nil || strings.TrimSpace(info.ID) == "":
			f.logger.Warn("metadata without video id", "url", u)
			failed = append(failed, u)
			continue
		}
		records = append(records, recordFromInfo(info))
	}

	f.logger.Info("metadata fetched", "records", len(records), "failed", len(failed))
	return records, failed, nil
}

// FetchListing extracts the first limit entries of a listing in one call.
// limit 0 requests every entry. Entries without an id are skipped.
func (f *MetadataFetcher) FetchListing(ctx context.Context, listingURL string, limit int, proxy string) ([]domain.VideoRecord, error) {
	f.reporter.Progress(domain.StateFetchingMetadata, "Fetching listing metadata")

	infos, err := f.media.FetchListing(ctx, listingURL, limit, proxy)
	records := make([]domain.VideoRecord, 0, len(infos))
	seen := make(map[string]bool, len(infos))
	for i := range infos {
		info := &infos[i]
		if strings.TrimSpace(info.ID) == "" {
			f.logger.Warn("listing entry without video id", "position", i+1)
			continue
		}
		r := recordFromInfo(info)
		if seen[r.URL] {
			continue
		}
		seen[r.URL] = true
		records = append(records, r)
	}

	switch {
	case errors.Is(err, ports.ErrToolNotFound):
		return records, err
	case err != nil && ctx.Err() != nil:
		return records, ctx.Err()
	case err != nil:
		return records, fmt.Errorf("fetch listing %s: %w", listingURL, err)
	}
	f.logger.Info("listing metadata fetched", "entries", len(infos), "records", len(records))
	return records, nil
}

func recordFromInfo(info *ports.VideoInfo) domain.VideoRecord {
	title := strings.TrimSpace(info.Title)
	if title == "" {
		title = DefaultTitle
	}
	return domain.VideoRecord{
		URL:         ShortURL(strings.TrimSpace(info.ID)),
		Title:       title,
		Description: info.Description,
	}
}
