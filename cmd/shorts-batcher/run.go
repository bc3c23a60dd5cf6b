package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"shortsbatcher/internal/adapters/chrome"
	"shortsbatcher/internal/adapters/localstorage"
	"shortsbatcher/internal/adapters/spreadsheet"
	"shortsbatcher/internal/adapters/ytdlp"
	"shortsbatcher/internal/config"
	"shortsbatcher/internal/core/domain"
	"shortsbatcher/internal/runctl"
	"shortsbatcher/internal/service"
)

var runFlags struct {
	output       string
	limit        int
	batchSize    int
	format       string
	retries      int
	delay        int
	proxy        string
	mode         string
	scrollMethod string
	ytdlpPath    string
	chromePath   string
	headless     bool
}

var runCmd = &cobra.Command{
	Use:   "run [channel-url]",
	Short: "Discover and download a channel's shorts",
	Long: `Runs one complete job: discovers the channel's shorts, fetches their
metadata, and downloads them batch by batch into the output directory.

Settings come from the config file; flags override it. Ctrl+C cancels the
run and stops any in-flight download or browser session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVarP(&runFlags.output, "output", "o", "", "Output directory")
	f.IntVarP(&runFlags.limit, "limit", "n", 0, "Maximum number of shorts (0 for all)")
	f.IntVar(&runFlags.batchSize, "batch-size", domain.DefaultBatchSize, "Videos per batch folder")
	f.StringVarP(&runFlags.format, "format", "f", domain.DefaultFormat, "Download format preset (see 'formats')")
	f.IntVar(&runFlags.retries, "retries", 3, "yt-dlp retries per video")
	f.IntVar(&runFlags.delay, "delay", 5, "Seconds to wait between downloads")
	f.StringVar(&runFlags.proxy, "proxy", "", "Proxy URL for yt-dlp and the browser")
	f.StringVar(&runFlags.mode, "mode", string(domain.MetadataPerURL), "Metadata mode (per-url, listing)")
	f.StringVar(&runFlags.scrollMethod, "scroll-method", string(domain.DefaultScrollMode), "Discovery scroll method (end-key, js-bottom, js-viewport)")
	f.StringVar(&runFlags.ytdlpPath, "ytdlp-path", "", "Path to the yt-dlp executable")
	f.StringVar(&runFlags.chromePath, "chrome-path", "", "Path to the Chrome executable")
	f.BoolVar(&runFlags.headless, "headless", true, "Run the browser without a window")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configPath, cmd.Flags().Changed("config"))
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) {
			printConfigErrors(cmd.ErrOrStderr(), configErr)
		}
		return err
	}
	if len(args) > 0 {
		cfg.Run.ChannelURL = args[0]
	}
	applyRunFlags(cmd, cfg)
	if errs := cfg.Validate(); len(errs) > 0 {
		configErr := &config.Error{Path: configPath, Errors: errs}
		printConfigErrors(cmd.ErrOrStderr(), configErr)
		return configErr
	}

	logger := newLogger(cfg)
	rc := cfg.RunConfig()

	media := ytdlp.NewYtDlpDownloader(cfg.Download.YtDlpPath, cfg.Metadata.Timeout, logger.With("component", "ytdlp"))
	orch := service.NewOrchestrator(
		chrome.NewBrowser(logger.With("component", "browser")),
		media,
		localstorage.NewLocalStorage(rc.OutputDir),
		spreadsheet.NewExcelExporter(),
		newConsoleReporter(cmd.OutOrStdout()),
		logger,
	)
	logger.Debug("resolved yt-dlp", "path", media.BinaryPath())

	ctl := runctl.New(cmd.Context())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var result *domain.RunResult
	done := make(chan struct{})
	var g errgroup.Group

	g.Go(func() error {
		defer close(done)
		var runErr error
		result, runErr = orch.RunJob(ctl.Context(), rc)
		return runErr
	})
	g.Go(func() error {
		select {
		case sig := <-sigCh:
			logger.Warn("received signal, cancelling run", "signal", sig.String())
			if err := ctl.Abort(); err != nil {
				logger.Warn("stopping in-flight work", "error", err)
			}
		case <-done:
		}
		return nil
	})

	err = g.Wait()
	if result != nil {
		printSummary(cmd.OutOrStdout(), result)
	}
	return err
}

// applyRunFlags overrides config values with the flags given on the command line.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("output") {
		cfg.Run.OutputDir = runFlags.output
	}
	if f.Changed("limit") {
		cfg.Run.Limit = nil
		if limit := runFlags.limit; limit != 0 {
			cfg.Run.Limit = &limit
		}
	}
	if f.Changed("batch-size") {
		cfg.Run.BatchSize = runFlags.batchSize
	}
	if f.Changed("format") {
		cfg.Download.Format = runFlags.format
	}
	if f.Changed("retries") {
		cfg.Download.Retries = runFlags.retries
	}
	if f.Changed("delay") {
		cfg.Download.DelaySeconds = runFlags.delay
	}
	if f.Changed("proxy") {
		cfg.Download.Proxy = runFlags.proxy
	}
	if f.Changed("mode") {
		cfg.Metadata.Mode = runFlags.mode
	}
	if f.Changed("scroll-method") {
		cfg.Discovery.ScrollMethod = runFlags.scrollMethod
	}
	if f.Changed("ytdlp-path") {
		cfg.Download.YtDlpPath = runFlags.ytdlpPath
	}
	if f.Changed("chrome-path") {
		cfg.Browser.ExecPath = runFlags.chromePath
	}
	if f.Changed("headless") {
		cfg.Browser.Headless = runFlags.headless
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
}

func printSummary(w io.Writer, r *domain.RunResult) {
	counts := make(map[domain.Status]int)
	for _, e := range r.Entries {
		counts[e.Status]++
	}
	failures := 0
	for s, n := range counts {
		if s.IsFailure() {
			failures += n
		}
	}

	fmt.Fprintln(w, "\n=== Job Summary ===")
	fmt.Fprintf(w, "Run ID:       %s\n", r.Run.ID)
	fmt.Fprintf(w, "Channel:      %s\n", r.Run.ListingURL)
	fmt.Fprintf(w, "State:        %s\n", r.State)
	fmt.Fprintf(w, "Discovered:   %d\n", r.Discovered)
	fmt.Fprintf(w, "Videos:       %d in %d batches\n", r.Records, r.Batches)
	fmt.Fprintf(w, "Downloaded:   %d\n", counts[domain.StatusDownloaded])
	fmt.Fprintf(w, "Failed:       %d\n", failures)
	if n := counts[domain.StatusPending]; n > 0 {
		fmt.Fprintf(w, "Pending:      %d\n", n)
	}
	if r.StatusPath != "" {
		fmt.Fprintf(w, "Status file:  %s\n", r.StatusPath)
	}
	if r.ErrorMessage != "" {
		fmt.Fprintf(w, "Error:        %s\n", r.ErrorMessage)
	}
	fmt.Fprintf(w, "Completed At: %s\n", r.CompletedAt.Format(time.RFC3339))
}
