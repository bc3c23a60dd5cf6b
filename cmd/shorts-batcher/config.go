package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"shortsbatcher/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates the TOML syntax, required fields, and environment variable substitution without starting a run.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		printConfigErrors(out, &config.Error{Path: path, Errors: errs})
		return fmt.Errorf("configuration invalid")
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.Error) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	limit := "all"
	if cfg.Run.Limit != nil {
		limit = fmt.Sprint(*cfg.Run.Limit)
	}
	proxy := "none"
	if cfg.Download.Proxy != "" {
		proxy = cfg.Download.Proxy
	}

	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Channel:    %s\n", cfg.Run.ChannelURL)
	fmt.Fprintf(w, "  Output:     %s (batches of %d, limit %s)\n", cfg.Run.OutputDir, cfg.Run.BatchSize, limit)
	fmt.Fprintf(w, "  Download:   format %s, %d retries, %ds delay, proxy %s\n",
		cfg.Download.Format, cfg.Download.Retries, cfg.Download.DelaySeconds, proxy)
	fmt.Fprintf(w, "  Metadata:   %s\n", cfg.Metadata.Mode)
	fmt.Fprintf(w, "  Discovery:  %s, pause %s, stale after %d, ceiling %s\n",
		cfg.Discovery.ScrollMethod, cfg.Discovery.ScrollPause, cfg.Discovery.StaleThreshold, cfg.Discovery.MaxScrollDuration)
	fmt.Fprintf(w, "  Browser:    headless=%t\n", cfg.Browser.Headless)
	fmt.Fprintf(w, "  Log level:  %s\n", cfg.Log.Level)
}
