package main

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/fwojciec/worddef"
)

// newLogger builds the diagnostic logger. Logs go to stderr so stdout
// stays parseable by the launcher.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// encodeResults writes results to w as one JSON object per line.
func encodeResults(w io.Writer, results ...worddef.Result) error {
	enc := json.NewEncoder(w)
	// Content carries a markup envelope; keep its angle brackets literal
	// instead of < escapes.
	enc.SetEscapeHTML(false)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// writeError reports a failed lookup as a renderable error entry on
// stdout for the launcher. It returns err so callers can propagate the
// failure; the diagnostic itself is printed once, by main.
func writeError(stdout io.Writer, cfg worddef.Config, err error) error {
	if cfg.Format != worddef.FormatText {
		if encErr := encodeResults(stdout, worddef.ErrorResult(err, cfg.Icon)); encErr != nil {
			return encErr
		}
	}
	return err
}
