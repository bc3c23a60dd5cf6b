package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"shortsbatcher/internal/channelurl"
	"shortsbatcher/internal/core/domain"
	"shortsbatcher/internal/core/ports"
)

// ErrInvalidRunConfig is returned when a run is started with unusable input.
var ErrInvalidRunConfig = errors.New("invalid run config")

// Orchestrator coordinates the discovery, metadata, batching and download
// workflow of a run.
type Orchestrator struct {
	storage  ports.Storage
	exporter ports.Exporter
	reporter ports.Reporter
	logger   *slog.Logger

	discoverer *Discoverer
	metadata   *MetadataFetcher
	downloader *BatchDownloader
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	browser ports.Browser,
	media ports.MediaFetcher,
	storage ports.Storage,
	exporter ports.Exporter,
	reporter ports.Reporter,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		storage:    storage,
		exporter:   exporter,
		reporter:   reporter,
		logger:     logger,
		discoverer: NewDiscoverer(browser, reporter, logger),
		metadata:   NewMetadataFetcher(media, reporter, logger),
		downloader: NewBatchDownloader(media, reporter, logger),
	}
}

// job is the mutable state of one RunJob call.
type job struct {
	o      *Orchestrator
	cfg    domain.RunConfig
	log    *slog.Logger
	result *domain.RunResult
	ledger *Ledger
}

// RunJob executes one complete run. Cancelling ctx moves the run to
// Cancelled; the result is still returned with a nil error. A non-nil
// error means the run Failed.
func (o *Orchestrator) RunJob(ctx context.Context, cfg domain.RunConfig) (*domain.RunResult, error) {
	run := domain.Run{
		ID:         uuid.New().String(),
		ChannelURL: cfg.ChannelURL,
		ListingURL: channelurl.ListingURL(cfg.ChannelURL),
		CreatedAt:  time.Now().UTC(),
	}
	j := &job{
		o:   o,
		cfg: cfg,
		log: o.logger.With("run_id", run.ID),
		result: &domain.RunResult{
			Run:    run,
			State:  domain.StateIdle,
			States: []domain.State{domain.StateIdle},
		},
	}
	j.log.Info("starting run", "channel_url", cfg.ChannelURL, "listing_url", run.ListingURL, "mode", cfg.MetadataMode)

	if err := validateRunConfig(cfg); err != nil {
		return j.fail(err)
	}
	if err := o.storage.InitRoot(ctx); err != nil {
		return j.fail(fmt.Errorf("create output directory: %w", err))
	}

	records, err := j.collect(ctx)
	switch {
	case errors.Is(err, ports.ErrToolNotFound):
		return j.fail(err)
	case ctx.Err() != nil:
		j.result.Records = len(records)
		return j.cancel()
	case err != nil:
		o.reporter.Alert(j.result.State, err.Error())
		j.log.Error("no videos collected", "error", err)
		return j.finish()
	}

	if cfg.Limit > 0 && len(records) > cfg.Limit {
		records = records[:cfg.Limit]
	}
	j.result.Records = len(records)
	if len(records) == 0 {
		o.reporter.Progress(j.result.State, "No shorts found")
		return j.finish()
	}

	j.enter(domain.StatePlanningBatches, fmt.Sprintf("Planning batches for %d videos", len(records)))
	batches := PlanBatches(records, cfg.BatchSize, cfg.OutputDir)
	j.ledger = NewLedger(records)
	j.result.Batches = len(batches)

	opts := DownloadOptions{Format: cfg.Format, Retries: cfg.Retries, Delay: cfg.Delay, Proxy: cfg.Proxy}
	for _, b := range batches {
		if ctx.Err() != nil {
			return j.cancel()
		}
		j.enter(domain.StateProcessingBatch, fmt.Sprintf("Processing %s (%d videos)", b.Label(), len(b.Records)))
		j.processBatch(ctx, b, opts)
		if ctx.Err() != nil {
			return j.cancel()
		}
	}
	return j.finish()
}

// collect runs discovery and metadata fetching for the configured mode.
func (j *job) collect(ctx context.Context) ([]domain.VideoRecord, error) {
	o, cfg := j.o, j.cfg

	if cfg.MetadataMode == domain.MetadataListing {
		j.enter(domain.StateFetchingMetadata, "Fetching metadata from listing")
		records, err := o.metadata.FetchListing(ctx, j.result.Run.ListingURL, cfg.Limit, cfg.Proxy)
		j.result.Discovered = len(records)
		return records, err
	}

	j.enter(domain.StateDiscovering, "Discovering shorts")
	browser := cfg.Browser
	if browser.Proxy == "" {
		browser.Proxy = cfg.Proxy
	}
	urls, err := o.discoverer.Discover(ctx, j.result.Run.ListingURL, DiscoveryOptions{
		Limit:   cfg.Limit,
		Browser: browser,
		Scroll:  cfg.Scroll,
	})
	if err != nil {
		return nil, fmt.Errorf("discovery failed: %w", err)
	}
	j.result.Discovered = len(urls)
	if len(urls) == 0 {
		return nil, nil
	}

	j.enter(domain.StateFetchingMetadata, fmt.Sprintf("Fetching metadata for %d shorts", len(urls)))
	records, failed, err := o.metadata.FetchEach(ctx, urls, cfg.Proxy)
	j.result.Failed = append(j.result.Failed, failed...)
	return records, err
}

func (j *job) processBatch(ctx context.Context, b domain.Batch, opts DownloadOptions) {
	o := j.o
	log := j.log.With("batch", b.Index)

	if err := o.storage.InitBatch(ctx, b); err != nil {
		log.Error("creating batch directory", "dir", b.OutputDir, "error", err)
		o.reporter.Alert(domain.StateProcessingBatch, fmt.Sprintf("%s skipped: %v", b.Label(), err))
		return
	}

	path := o.storage.MetadataPath(b, o.exporter.Extension())
	if err := o.exporter.WriteMetadata(path, b.Records); err != nil {
		log.Error("writing batch metadata", "path", path, "error", err)
	} else {
		log.Info("batch metadata written", "path", path)
	}

	failed := o.downloader.DownloadBatch(ctx, b, opts, j.ledger)
	if len(failed) == 0 {
		return
	}
	j.result.Failed = append(j.result.Failed, failed...)
	if errPath, err := o.storage.SaveFailedURLs(ctx, b.Index, failed); err != nil {
		log.Error("writing failed urls", "error", err)
	} else {
		log.Info("failed urls written", "path", errPath, "count", len(failed))
	}
}

// enter moves the run to s and reports it.
func (j *job) enter(s domain.State, message string) {
	if !j.result.State.CanTransitionTo(s) {
		j.log.Error("unexpected state transition", "from", j.result.State, "to", s)
	}
	j.result.State = s
	j.result.States = append(j.result.States, s)
	j.log.Info(message, "state", s)
	j.o.reporter.Progress(s, message)
}

func (j *job) finish() (*domain.RunResult, error) {
	j.enter(domain.StateFinished, "Run finished")
	if j.ledger != nil {
		j.writeStatus()
	}
	return j.done(), nil
}

func (j *job) cancel() (*domain.RunResult, error) {
	j.enter(domain.StateCancelled, "Run cancelled")
	return j.done(), nil
}

func (j *job) fail(err error) (*domain.RunResult, error) {
	j.result.ErrorMessage = err.Error()
	j.o.reporter.Alert(j.result.State, err.Error())
	j.enter(domain.StateFailed, "Run failed")
	j.log.Error("run failed", "error", err)
	return j.done(), err
}

func (j *job) done() *domain.RunResult {
	if j.ledger != nil {
		j.result.Entries = j.ledger.Entries()
	}
	j.result.CompletedAt = time.Now().UTC()
	return j.result
}

func (j *job) writeStatus() {
	o := j.o
	name := channelurl.ChannelName(j.cfg.ChannelURL, "")
	path := o.storage.StatusPath(name, o.exporter.Extension())
	if err := o.exporter.WriteStatus(path, j.ledger.Entries()); err != nil {
		j.log.Error("writing status export", "path", path, "error", err)
		o.reporter.Alert(domain.StateFinished, fmt.Sprintf("could not write status file: %v", err))
		return
	}
	j.result.StatusPath = path
	counts := j.ledger.Counts()
	j.log.Info("status export written", "path", path,
		"downloaded", counts[domain.StatusDownloaded], "pending", counts[domain.StatusPending])
}

func validateRunConfig(cfg domain.RunConfig) error {
	var problems []string
	if cfg.OutputDir == "" {
		problems = append(problems, "output directory is required")
	}
	if cfg.ChannelURL == "" {
		problems = append(problems, "channel url is required")
	}
	if cfg.Limit < 0 {
		problems = append(problems, "limit must be positive")
	}
	if cfg.BatchSize <= 0 {
		problems = append(problems, "batch size must be positive")
	}
	if cfg.Retries < 0 {
		problems = append(problems, "retries must not be negative")
	}
	if cfg.Delay < 0 {
		problems = append(problems, "delay must not be negative")
	}
	if cfg.MetadataMode != "" && !cfg.MetadataMode.Valid() {
		problems = append(problems, fmt.Sprintf("unknown metadata mode %q", cfg.MetadataMode))
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidRunConfig, strings.Join(problems, "; "))
}
