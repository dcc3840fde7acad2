package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rayIDKey matches rayid.LocalsKey.
const rayIDKey = "ray_id"

// New builds a zap logger: development settings for debug, production otherwise.
func New(cfg *Config, opts ...zap.Option) (*zap.Logger, error) {
	zc := baseConfig(cfg.Level)

	switch cfg.Format {
	case "console":
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.DisableStacktrace = true
	default:
		zc.Encoding = "json"
		zc.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	}

	zc.EncoderConfig.LevelKey = "level"
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.MessageKey = "message"
	zc.EncoderConfig.NameKey = "logger"

	l, err := zc.Build(opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Service != "" {
		l = l.Named(cfg.Service).With(zap.String("service", cfg.Service))
	}
	return l, nil
}

func baseConfig(level string) zap.Config {
	if level == "debug" {
		return zap.NewDevelopmentConfig()
	}
	zc := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zc
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if rid, ok := c.Locals(rayIDKey).(string); ok && rid != "" {
		return l.With(zap.String(rayIDKey, rid))
	}
	return l
}
