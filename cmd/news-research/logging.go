package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// setupLogging builds the process logger from the persistent log flags.
// Interactive commands log to --log-file or nowhere so output does not
// corrupt the screen; everything else logs to stderr.
func setupLogging(cmd *cobra.Command) (*slog.Logger, func() error, error) {
	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")
	path, _ := cmd.Flags().GetString("log-file")

	var w io.Writer = os.Stderr
	closer := func() error { return nil }
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closer = f, f.Close
	case isInteractive(cmd):
		w = io.Discard
	}

	logger, err := newLogger(w, level, format)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return logger, closer, nil
}

// isInteractive reports whether cmd runs the terminal UI: the root command
// itself or its tui subcommand.
func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "tui"
}

// newLogger returns a text or JSON slog.Logger writing to w at level.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q (want text or json)", format)
	}
}
