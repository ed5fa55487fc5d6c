package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"summer-success/tracker/config"
)

// NewLogger builds a zap logger from config. The returned AtomicLevel can be
// changed at runtime (config reload) without rebuilding the logger.
func NewLogger(cfg *config.LogConfig) (*zap.Logger, zap.AtomicLevel, error) {
	var zapCfg zap.Config

	switch cfg.Format {
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	atom := zap.NewAtomicLevelAt(level)
	zapCfg.Level = atom

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("build logger: %w", err)
	}

	return logger, atom, nil
}

// SetLevel parses level and applies it to atom. Unknown levels are ignored.
func SetLevel(atom zap.AtomicLevel, level string) bool {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return false
	}
	if atom.Level() == lvl {
		return false
	}
	atom.SetLevel(lvl)
	return true
}
