package cliconfig

import (
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bft-labs/tabsum/pkg/log"
)

// Logger returns the console logger used before configuration is loaded.
func Logger() *log.ZerologLogger {
	return log.NewConsoleLogger(zerolog.InfoLevel)
}

// NewLogger builds the logger described by cfg. When LogFile is set, JSON
// lines are also written to a size-rotated file; the returned closer must be
// closed on exit.
func NewLogger(cfg Config) (*log.ZerologLogger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogFile == "" {
		return log.NewConsoleLogger(level), nopCloser{}, nil
	}

	rotating := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    25, // megabytes
		MaxBackups: 10,
		MaxAge:     14, // days
		Compress:   true,
	}
	return log.NewConsoleLogger(level, rotating), rotating, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
