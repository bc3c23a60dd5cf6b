package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"shortsbatcher/internal/config"
)

var version = "dev"

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "shorts-batcher",
	Short: "Archive a channel's shorts in batches",
	Long: `shorts-batcher - discover, index and download a channel's short videos

Discovers every short of a channel in a headless browser, fetches titles and
descriptions with yt-dlp, and downloads them into fixed-size batch folders
with a spreadsheet index per batch and a status sheet for the whole run.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; variables may already be set in the environment
		_ = godotenv.Load()
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "Config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("shorts-batcher {{.Version}}\n")
}

func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
}
