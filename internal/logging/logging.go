// Package logging builds the zap loggers used for diagnostics.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tasklist/internal/config"
)

// New returns a console logger writing to w. The level comes from the
// configured log_level; Debug forces debug level.
func New(cfg *config.Config, w io.Writer) *zap.Logger {
	return zap.New(zapcore.NewCore(encoder(false), zapcore.AddSync(w), Level(cfg)))
}

// NewFile returns a logger appending to the config directory's log file,
// for use while the terminal is owned by the UI. The returned close
// function flushes and closes the file.
func NewFile(cfg *config.Config) (*zap.Logger, func() error, error) {
	if err := cfg.EnsureDir(); err != nil {
		return nil, nil, fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	log := zap.New(zapcore.NewCore(encoder(true), zapcore.AddSync(f), Level(cfg)))
	closeFn := func() error {
		_ = log.Sync()
		return f.Close()
	}
	return log, closeFn, nil
}

// Level resolves the effective level for cfg.
func Level(cfg *config.Config) zapcore.Level {
	if cfg.Debug {
		return zapcore.DebugLevel
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

func encoder(timestamps bool) zapcore.Encoder {
	enc := zap.NewDevelopmentEncoderConfig()
	if !timestamps {
		enc.TimeKey = ""
	}
	enc.CallerKey = ""
	enc.EncodeLevel = zapcore.LowercaseLevelEncoder
	return zapcore.NewConsoleEncoder(enc)
}
