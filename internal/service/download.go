package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"shortsbatcher/internal/core/domain"
	"shortsbatcher/internal/core/ports"
)

// accessDeniedPhrases identify downloads refused by sign-in, bot, privacy or
// age gating. Matched case-insensitively against the tool's stderr.
var accessDeniedPhrases = []string{
	"Sign in to confirm you’re not a bot",
	"Sign in to confirm you're not a bot",
	"confirm you're not a robot",
	"Private video",
	"Age-restricted video",
	"Sign in to confirm your age",
}

// DownloadOptions are the per-run media fetcher settings.
type DownloadOptions struct {
	Format  string
	Retries int
	Delay   time.Duration
	Proxy   string
}

// BatchDownloader downloads the videos of one batch sequentially.
type BatchDownloader struct {
	media    ports.MediaFetcher
	reporter ports.Reporter
	logger   *slog.Logger
}

// NewBatchDownloader creates a new BatchDownloader.
func NewBatchDownloader(media ports.MediaFetcher, reporter ports.Reporter, logger *slog.Logger) *BatchDownloader {
	return &BatchDownloader{media: media, reporter: reporter, logger: logger}
}

// DownloadBatch downloads every record of batch into batch.OutputDir and
// records each outcome in ledger. It returns the URLs that failed.
//
// Per-item failures never stop the batch. A media fetcher that cannot be
// launched marks the current and every remaining record ErrorToolMissing
// and ends the batch. Cancellation stops before the next record; a record
// whose download was interrupted is marked Cancelled.
func (d *BatchDownloader) DownloadBatch(ctx context.Context, batch domain.Batch, opts DownloadOptions, ledger *Ledger) []string {
	var failed []string
	log := d.logger.With("batch", batch.Index)

	for i, rec := range batch.Records {
		if ctx.Err() != nil {
			log.Info("batch cancelled", "remaining", len(batch.Records)-i)
			return failed
		}
		ledger.Ensure(rec.URL, rec.Title)
		d.reporter.Progress(domain.StateProcessingBatch,
			fmt.Sprintf("%s: downloading %d/%d: %s", batch.Label(), i+1, len(batch.Records), rec.Title))

		res, err := d.media.Download(ctx, ports.DownloadRequest{
			URL:       rec.URL,
			OutputDir: batch.OutputDir,
			Format:    opts.Format,
			Retries:   opts.Retries,
			Proxy:     opts.Proxy,
		})

		var status domain.Status
		switch {
		case err == nil && res != nil && res.ExitCode == 0:
			status = domain.StatusDownloaded
		case ctx.Err() != nil:
			log.Info("download interrupted", "url", rec.URL)
			d.mark(log, ledger, rec.URL, domain.StatusCancelled)
			return failed
		case errors.Is(err, ports.ErrToolNotFound):
			log.Error("media fetcher not found", "url", rec.URL, "error", err)
			d.reporter.Alert(domain.StateProcessingBatch,
				fmt.Sprintf("%s: yt-dlp could not be started, skipping the remaining %d videos", batch.Label(), len(batch.Records)-i))
			for _, r := range batch.Records[i:] {
				ledger.Ensure(r.URL, r.Title)
				d.mark(log, ledger, r.URL, domain.StatusErrorToolMissing)
				failed = append(failed, r.URL)
			}
			return failed
		case err != nil:
			log.Error("download failed unexpectedly", "url", rec.URL, "error", err)
			status = domain.StatusErrorUnexpected
		case res == nil:
			log.Error("download returned no result", "url", rec.URL)
			status = domain.StatusErrorUnexpected
		default:
			status = classifyFailure(res.Stderr)
			log.Warn("download failed", "url", rec.URL, "exit_code", res.ExitCode, "status", status)
		}

		d.mark(log, ledger, rec.URL, status)
		if status.IsFailure() {
			failed = append(failed, rec.URL)
		}

		if i < len(batch.Records)-1 && ctx.Err() == nil {
			if err := sleep(ctx, opts.Delay); err != nil {
				log.Info("delay interrupted")
			}
		}
	}
	return failed
}

func (d *BatchDownloader) mark(log *slog.Logger, ledger *Ledger, url string, status domain.Status) {
	if err := ledger.Mark(url, status); err != nil {
		log.Warn("status not updated", "url", url, "status", status, "error", err)
	}
}

// classifyFailure maps the stderr of a failed download to an error status.
func classifyFailure(stderr string) domain.Status {
	lower := strings.ToLower(stderr)
	for _, p := range accessDeniedPhrases {
		if strings.Contains(lower, strings.ToLower(p)) {
			return domain.StatusErrorAccessDenied
		}
	}
	return domain.StatusError
}
