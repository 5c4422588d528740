package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/paigow/internal/game"
)

// newLogger creates the application logger writing to w
func newLogger(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// openLogFile creates the log file named in cfg. The terminal belongs to the
// table while playing, so logs never go to stderr there.
func openLogFile(cfg game.LoggingConfig) (*log.Logger, func(), error) {
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}
	logger, err := newLogger(f, cfg.Level, "paigow")
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}
	return logger, closeFn, nil
}

// loadConfig reads the configuration named by the globals. Callers validate
// after applying flag overrides.
func loadConfig(g *Globals) (*game.Config, error) {
	return game.LoadConfig(g.Config)
}
