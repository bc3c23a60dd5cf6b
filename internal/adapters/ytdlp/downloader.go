package ytdlp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"shortsbatcher/internal/core/ports"
	"shortsbatcher/internal/runctl"
)

const waitDelay = 5 * time.Second

// OutputTemplate names downloaded files by title with the original extension.
const OutputTemplate = "%(title)s.%(ext)s"

// YtDlpDownloader drives the yt-dlp binary as an external process.
type YtDlpDownloader struct {
	binaryPath  string
	infoTimeout time.Duration
	logger      *slog.Logger
}

// NewYtDlpDownloader creates a new downloader. An empty binaryPath prefers a
// yt-dlp binary in the working directory and falls back to PATH.
// infoTimeout bounds each single video metadata query; zero disables it.
func NewYtDlpDownloader(binaryPath string, infoTimeout time.Duration, logger *slog.Logger) *YtDlpDownloader {
	return &YtDlpDownloader{
		binaryPath:  resolveBinary(binaryPath),
		infoTimeout: infoTimeout,
		logger:      logger,
	}
}

// BinaryPath returns the resolved binary.
func (d *YtDlpDownloader) BinaryPath() string {
	return d.binaryPath
}

func resolveBinary(configured string) string {
	if configured != "" {
		return configured
	}
	for _, name := range []string{"yt-dlp.exe", "yt-dlp"} {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return "." + string(filepath.Separator) + name
		}
	}
	return "yt-dlp"
}

// Download runs one download to completion. A non-zero exit is reported in
// the result; only a process that never started is an error.
func (d *YtDlpDownloader) Download(ctx context.Context, req ports.DownloadRequest) (*ports.DownloadResult, error) {
	code, stderr, err := d.run(ctx, downloadArgs(req), io.Discard)
	if err != nil {
		return nil, err
	}
	if code != 0 {
		d.logger.Debug("yt-dlp download failed", "url", req.URL, "exit_code", code, "stderr", lastLine(stderr))
	}
	return &ports.DownloadResult{ExitCode: code, Stderr: stderr}, nil
}

func downloadArgs(req ports.DownloadRequest) []string {
	args := []string{
		"--quiet",
		"--no-part",
		"--no-warnings",
		"--retries", strconv.Itoa(req.Retries),
		"--output", filepath.Join(req.OutputDir, OutputTemplate),
	}
	if req.Format != "" {
		args = append(args, "--format", req.Format)
	}
	if req.Proxy != "" {
		args = append(args, "--proxy", req.Proxy)
	}
	return append(args, req.URL)
}

// run starts the binary, holds the process in the run control so an abort
// can kill it, and waits. It returns the exit code and captured stderr.
func (d *YtDlpDownloader) run(ctx context.Context, args []string, stdout io.Writer) (int, string, error) {
	cmd := exec.CommandContext(ctx, d.binaryPath, args...)
	var stderr bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = &stderr
	// children such as ffmpeg may keep the pipes open after a kill
	cmd.WaitDelay = waitDelay

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return -1, "", fmt.Errorf("%w: %s: %v", ports.ErrToolNotFound, d.binaryPath, err)
		}
		return -1, "", fmt.Errorf("failed to start yt-dlp: %w", err)
	}
	release := runctl.Hold(ctx, runctl.SlotProcess, runctl.HandleFunc(func() error {
		return kill(cmd.Process)
	}))
	defer release()

	err := cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, stderr.String(), nil
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), stderr.String(), nil
	default:
		return -1, stderr.String(), fmt.Errorf("yt-dlp failed: %w", err)
	}
}

func kill(p *os.Process) error {
	if err := p.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
