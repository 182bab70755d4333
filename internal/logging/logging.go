// Package logging builds the process logger.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls the process logger.
type Config struct {
	Level  string `yaml:"level,omitempty" json:"level,omitempty" long:"log-level" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	Format string `yaml:"format,omitempty" json:"format,omitempty" long:"log-format" description:"log format" choice:"console" choice:"json"`
}

// New builds a zap.Logger writing to stderr. The caller should defer logger.Sync().
func New(c Config) *zap.Logger {
	return NewWithSink(c, zapcore.Lock(os.Stderr))
}

// NewWithSink builds a zap.Logger writing to sink.
func NewWithSink(c Config, sink zapcore.WriteSyncer) *zap.Logger {
	level := zap.NewAtomicLevelAt(parseLevel(c.Level))
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	if strings.ToLower(c.Format) == "json" {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}
	return zap.New(zapcore.NewCore(encoder, sink, level))
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
