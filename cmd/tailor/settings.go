package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/tailor-engine/internal/config"
	"github.com/jonathan/tailor-engine/internal/logger"
)

// loadSettings reads the config file, then applies environment overrides and the persistent flags.
// Command-specific flags are applied by the caller before finalizeSettings.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	cfg.ApplyEnv(os.Getenv)

	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debug
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = jsonLogs
	}
	return cfg, nil
}

// finalizeSettings fills defaults and validates the merged configuration
func finalizeSettings(cfg config.Config) (config.Config, error) {
	merged := cfg.MergeWithDefaults(config.Default())
	if err := merged.Validate(); err != nil {
		return merged, err
	}
	return merged, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	l, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return l, nil
}

// writeJSON writes v as indented JSON to path, or to w when path is empty
func writeJSON(w io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// requireInput returns an error naming the flag when value is empty
func requireInput(value, flag string) error {
	if value == "" {
		return fmt.Errorf("--%s must be provided (flag or config file)", flag)
	}
	return nil
}
