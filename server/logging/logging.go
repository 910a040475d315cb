// Package logging builds the zap logger from configuration and keeps its
// level in sync with config reloads.
package logging

import (
	"context"
	"fmt"

	"github.com/teilomillet/travelplanner/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel converts a config level name into a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

// New creates a logger for cfg. The returned AtomicLevel controls the
// logger's verbosity after construction.
//
// "json" uses zap's production encoder, "text" a console encoder with
// ISO8601 timestamps.
func New(cfg config.LoggingConfig) (*zap.Logger, zap.AtomicLevel, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}
	level := zap.NewAtomicLevelAt(lvl)

	var zcfg zap.Config
	switch cfg.Format {
	case "json", "":
		zcfg = zap.NewProductionConfig()
	case "text":
		zcfg = zap.NewDevelopmentConfig()
		zcfg.Development = false
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid log format: %s", cfg.Format)
	}
	zcfg.Level = level

	logger, err := zcfg.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("build logger: %w", err)
	}
	return logger, level, nil
}

// FollowLevel applies logging.level from every config the watcher publishes
// until ctx is done or the watcher closes its channel.
func FollowLevel(ctx context.Context, w config.Watcher, level zap.AtomicLevel, logger *zap.Logger) {
	updates := w.Subscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case cfg, ok := <-updates:
			if !ok {
				return
			}
			next, err := ParseLevel(cfg.Logging.Level)
			if err != nil {
				logger.Warn("Ignoring log level from reloaded config", zap.Error(err))
				continue
			}
			if next == level.Level() {
				continue
			}
			logger.Info("Log level changed",
				zap.Stringer("from", level.Level()),
				zap.Stringer("to", next),
			)
			level.SetLevel(next)
		}
	}
}
