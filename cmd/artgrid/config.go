package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmcdole/artgrid/internal/adapter"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Long: `Manage the artgrid configuration file.

Settings are read from, highest priority first:
  - Command line flags
  - ARTGRID_* environment variables (and a .env file)
  - The configuration file
  - Default values`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default settings",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var forceInit bool

func init() {
	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "overwrite an existing file")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configFile
	if path == "" {
		path = filepath.Join(adapter.DefaultConfigDir(), "config.yaml")
	}

	if _, err := os.Stat(path); err == nil && !forceInit {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	if err := adapter.SaveConfig(adapter.DefaultConfig(), path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "api.base_url:      %s\n", cfg.API.BaseURL)
	fmt.Fprintf(out, "api.timeout:       %s\n", cfg.API.Timeout)
	fmt.Fprintf(out, "api.user_agent:    %s\n", cfg.API.UserAgent)
	fmt.Fprintf(out, "paging.page_size:  %d\n", cfg.Paging.PageSize)
	fmt.Fprintf(out, "logging.file:      %s\n", cfg.Logging.File)
	fmt.Fprintf(out, "logging.level:     %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "metrics.listen:    %s\n", orNone(cfg.Metrics.Listen))
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(disabled)"
	}
	return s
}
