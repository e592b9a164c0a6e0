package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/artgrid/internal/adapter"
	"github.com/mmcdole/artgrid/internal/artic"
	"github.com/mmcdole/artgrid/internal/service"
	"github.com/mmcdole/artgrid/internal/tui"
)

var (
	// Global flags
	configFile  string
	logLevel    string
	pageSize    int
	metricsAddr string
)

// rootCmd opens the interactive grid when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "artgrid",
	Short: "Browse the Art Institute of Chicago collection in a terminal grid",
	Long: `artgrid pages through the Art Institute of Chicago public artwork API
one page at a time and shows each page as a table.

Rows can be checked individually, all at once, or as the first N rows of
the page. Checked rows stay checked when you move between pages.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd)
	},
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is "+adapter.DefaultConfigDir()+"/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", 0, "rows per page")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	rootCmd.SetVersionTemplate(`artgrid {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(cmd *cobra.Command) (*adapter.Config, error) {
	cfg, err := adapter.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("page-size") {
		cfg.Paging.PageSize = pageSize
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Listen = metricsAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setupLogger installs the file logger as the default, falling back to a
// discarding logger when the log file cannot be opened
func setupLogger(cfg *adapter.Config) (*slog.Logger, io.Closer) {
	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		logger = adapter.NullLogger()
		closer = io.NopCloser(nil)
	}
	slog.SetDefault(logger)
	return logger, closer
}

func newClient(cfg *adapter.Config, logger *slog.Logger) *artic.Client {
	return artic.NewClient(cfg.API.BaseURL, logger,
		artic.WithTimeout(cfg.API.Timeout),
		artic.WithUserAgent(cfg.API.UserAgent),
	)
}

// serveMetrics exposes /metrics until the process exits
func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
}

func runBrowse(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use `artgrid page` for plain output")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer := setupLogger(cfg)
	defer closer.Close()

	logger.Info("starting artgrid", "version", Version, "base_url", cfg.API.BaseURL)

	if cfg.Metrics.Listen != "" {
		serveMetrics(cfg.Metrics.Listen, logger)
	}

	// Create services
	catalog := service.NewCatalogService(newClient(cfg, logger), logger)
	browse := service.NewBrowseSession(cfg.Paging.PageSize, logger)
	browse.SetResultWindow(artic.MaxResultWindow)

	// Create TUI model
	model := tui.NewModel(catalog, browse, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down", "selected", browse.Selection().Len())
	return nil
}
