package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

// logLevel maps the verbosity settings to a zerolog level.
func logLevel(quiet bool, verbosity int) zerolog.Level {
	switch {
	case quiet:
		return zerolog.Disabled
	case verbosity >= 1:
		return zerolog.DebugLevel
	default:
		return zerolog.WarnLevel
	}
}

// setupLogger builds the program logger. Human readable output goes to stderr
// unless a log file is configured, in which case JSON lines are written to a
// rotating file. The returned closer must be closed before exit.
func setupLogger(cfg *Config) (zerolog.Logger, io.Closer) {
	level := logLevel(cfg.Quiet, cfg.Verbosity)

	if cfg.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
		}
		logger := zerolog.New(lj).Level(level).With().Timestamp().Logger()
		return logger, lj
	}

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
		NoColor:    cfg.ColorMode == "never",
	}
	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
