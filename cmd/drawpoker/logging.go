package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// setupLogger builds the process logger. Without a log file only warnings
// reach stderr so the game output stays readable. With one, level comes from
// the config. --debug always wins.
func setupLogger(g *Globals, level string) (*log.Logger, io.Closer, error) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if g.LogFile != "" {
		f, err := os.OpenFile(g.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "drawpoker",
		Level:           resolveLevel(g, level),
	})
	return logger, closer, nil
}

func resolveLevel(g *Globals, level string) log.Level {
	if g.Debug {
		return log.DebugLevel
	}
	if g.LogFile == "" {
		return log.WarnLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
