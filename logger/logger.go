package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level  string
	Format string // "console" or "json"
}

// New builds a zap logger. Console format uses the development encoder with
// colored levels; json uses the production encoder.
func New(cfg Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		level = parsed
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build(zap.AddCaller())
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
