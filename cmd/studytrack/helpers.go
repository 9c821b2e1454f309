package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"studytrack/internal/config"
	"studytrack/internal/storage"
	"studytrack/internal/types"
)

// loadConfig resolves configuration with the global flags applied on top.
func loadConfig() (*config.Config, error) {
	overrides := &config.Config{
		DataFile: dataFile,
		Output:   output,
		Verbose:  verbose,
	}
	cfg, err := config.Load(overrides)
	if err != nil {
		return nil, err
	}
	setupLogging(cfg)
	return cfg, nil
}

// setupLogging points slog at stderr, and additionally at the configured log
// file when one is set. Verbose mode lowers the level to Debug.
func setupLogging(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			slog.Warn("cannot open log file", "path", cfg.LogFile, "error", err)
		} else {
			w = io.MultiWriter(os.Stderr, f)
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// openStore returns the file store for the configured data file.
func openStore(cfg *config.Config) *storage.FileStore {
	return storage.New(cfg.DataFile)
}

// loadDocument loads the data file. A missing file yields an empty default
// document; a malformed one is surfaced as an error rather than silently
// replaced, so a typo in the file cannot wipe the study history.
func loadDocument(store *storage.FileStore) (*types.Document, error) {
	doc, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", store.Path, err)
	}
	return doc, nil
}

// today returns the current calendar day.
func today() types.Date {
	return types.DateOf(time.Now())
}

// useJSON reports whether output should be JSON for the resolved config.
func useJSON(cfg *config.Config) bool {
	return cfg.Output == "json"
}
