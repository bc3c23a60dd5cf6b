package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shortsbatcher/internal/core/domain"
	"shortsbatcher/internal/core/ports"
	"shortsbatcher/internal/core/ports/mocks"
	"shortsbatcher/internal/runctl"
)

func testBatch(n int) domain.Batch {
	return PlanBatches(makeRecords(n), n, "out")[0]
}

func testDownloadOptions() DownloadOptions {
	return DownloadOptions{Format: "bestvideo+bestaudio/best", Retries: 3}
}

func statuses(l *Ledger) []domain.Status {
	var out []domain.Status
	for _, e := range l.Entries() {
		out = append(out, e.Status)
	}
	return out
}

func TestClassifyFailure(t *testing.T) {
	tests := []struct {
		stderr string
		want   domain.Status
	}{
		{"ERROR: [youtube] abc: Private video. Sign in if you've been granted access", domain.StatusErrorAccessDenied},
		{"ERROR: Sign in to confirm you’re not a bot", domain.StatusErrorAccessDenied},
		{"ERROR: sign in to confirm your age", domain.StatusErrorAccessDenied},
		{"ERROR: [youtube] abc: Age-restricted video", domain.StatusErrorAccessDenied},
		{"ERROR: unable to download video data: HTTP Error 403", domain.StatusError},
		{"", domain.StatusError},
	}
	for _, tt := range tests {
		t.Run(tt.stderr, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyFailure(tt.stderr))
		})
	}
}

func TestBatchDownloader_Classification(t *testing.T) {
	ctrl := gomock.NewController(t)
	media := mocks.NewMockMediaFetcher(ctrl)
	batch := testBatch(4)
	ledger := NewLedger(batch.Records)

	gomock.InOrder(
		media.EXPECT().Download(gomock.Any(), ports.DownloadRequest{
			URL:       batch.Records[0].URL,
			OutputDir: batch.OutputDir,
			Format:    "bestvideo+bestaudio/best",
			Retries:   3,
		}).Return(&ports.DownloadResult{}, nil),
		media.EXPECT().Download(gomock.Any(), gomock.Any()).
			Return(&ports.DownloadResult{ExitCode: 1, Stderr: "ERROR: Private video"}, nil),
		media.EXPECT().Download(gomock.Any(), gomock.Any()).
			Return(&ports.DownloadResult{ExitCode: 1, Stderr: "ERROR: HTTP Error 500"}, nil),
		media.EXPECT().Download(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("pipe closed")),
	)

	d := NewBatchDownloader(media, quietReporter(ctrl), testLogger())
	failed := d.DownloadBatch(context.Background(), batch, testDownloadOptions(), ledger)

	assert.Equal(t, batch.URLs()[1:], failed)
	assert.Equal(t, []domain.Status{
		domain.StatusDownloaded,
		domain.StatusErrorAccessDenied,
		domain.StatusError,
		domain.StatusErrorUnexpected,
	}, statuses(ledger))
}

func TestBatchDownloader_ToolMissingMarksRemaining(t *testing.T) {
	ctrl := gomock.NewController(t)
	media := mocks.NewMockMediaFetcher(ctrl)
	reporter := mocks.NewMockReporter(ctrl)
	batch := testBatch(5)
	ledger := NewLedger(batch.Records)

	reporter.EXPECT().Progress(gomock.Any(), gomock.Any()).AnyTimes()
	reporter.EXPECT().Alert(domain.StateProcessingBatch, gomock.Any()).Times(1)
	gomock.InOrder(
		media.EXPECT().Download(gomock.Any(), gomock.Any()).Return(&ports.DownloadResult{}, nil),
		media.EXPECT().Download(gomock.Any(), gomock.Any()).
			Return(&ports.DownloadResult{ExitCode: 1, Stderr: "boom"}, nil),
		media.EXPECT().Download(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("start yt-dlp: %w", ports.ErrToolNotFound)),
	)

	d := NewBatchDownloader(media, reporter, testLogger())
	failed := d.DownloadBatch(context.Background(), batch, testDownloadOptions(), ledger)

	urls := batch.URLs()
	assert.Equal(t, []string{urls[1], urls[2], urls[3], urls[4]}, failed)
	assert.Equal(t, []domain.Status{
		domain.StatusDownloaded,
		domain.StatusError,
		domain.StatusErrorToolMissing,
		domain.StatusErrorToolMissing,
		domain.StatusErrorToolMissing,
	}, statuses(ledger))
}

func TestBatchDownloader_CancelBetweenItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	media := mocks.NewMockMediaFetcher(ctrl)
	batch := testBatch(5)
	ledger := NewLedger(batch.Records)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		media.EXPECT().Download(gomock.Any(), gomock.Any()).Return(&ports.DownloadResult{}, nil),
		media.EXPECT().Download(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, ports.DownloadRequest) (*ports.DownloadResult, error) {
				cancel()
				return &ports.DownloadResult{}, nil
			}),
	)

	opts := testDownloadOptions()
	opts.Delay = 0
	d := NewBatchDownloader(media, quietReporter(ctrl), testLogger())
	failed := d.DownloadBatch(ctx, batch, opts, ledger)

	assert.Empty(t, failed)
	assert.Equal(t, []domain.Status{
		domain.StatusDownloaded,
		domain.StatusDownloaded,
		domain.StatusPending,
		domain.StatusPending,
		domain.StatusPending,
	}, statuses(ledger))
}

func TestBatchDownloader_AbortKillsRunningProcess(t *testing.T) {
	ctrl := gomock.NewController(t)
	media := mocks.NewMockMediaFetcher(ctrl)
	batch := testBatch(3)
	ledger := NewLedger(batch.Records)
	rc := runctl.New(context.Background())

	var killed bool
	media.EXPECT().Download(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ ports.DownloadRequest) (*ports.DownloadResult, error) {
			release := runctl.Hold(ctx, runctl.SlotProcess, runctl.HandleFunc(func() error {
				killed = true
				return nil
			}))
			defer release()
			require.NoError(t, rc.Abort())
			return &ports.DownloadResult{ExitCode: -1, Stderr: "signal: killed"}, nil
		})

	d := NewBatchDownloader(media, quietReporter(ctrl), testLogger())
	failed := d.DownloadBatch(rc.Context(), batch, testDownloadOptions(), ledger)

	assert.True(t, killed)
	assert.Empty(t, failed)
	assert.Equal(t, []domain.Status{
		domain.StatusCancelled,
		domain.StatusPending,
		domain.StatusPending,
	}, statuses(ledger))
}

func TestBatchDownloader_CancelledBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	media := mocks.NewMockMediaFetcher(ctrl)
	batch := testBatch(2)
	ledger := NewLedger(batch.Records)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewBatchDownloader(media, quietReporter(ctrl), testLogger())
	failed := d.DownloadBatch(ctx, batch, testDownloadOptions(), ledger)

	assert.Empty(t, failed)
	assert.Equal(t, []domain.Status{domain.StatusPending, domain.StatusPending}, statuses(ledger))
}

func TestBatchDownloader_DelayInterruptedByCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	media := mocks.NewMockMediaFetcher(ctrl)
	batch := testBatch(2)
	ledger := NewLedger(batch.Records)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	media.EXPECT().Download(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, ports.DownloadRequest) (*ports.DownloadResult, error) {
			time.AfterFunc(10*time.Millisecond, cancel)
			return &ports.DownloadResult{}, nil
		})

	opts := testDownloadOptions()
	opts.Delay = time.Hour
	d := NewBatchDownloader(media, quietReporter(ctrl), testLogger())

	start := time.Now()
	d.DownloadBatch(ctx, batch, opts, ledger)

	assert.Less(t, time.Since(start), time.Minute)
	assert.Equal(t, []domain.Status{domain.StatusDownloaded, domain.StatusPending}, statuses(ledger))
}
