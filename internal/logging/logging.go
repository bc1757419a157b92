// Package logging builds the zap loggers used by the CLI layer. The engine
// core receives a *zap.Logger through its config and stays silent by default.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger configured from the NABLE_LOG_LEVEL and NABLE_ENV
// environment variables. Unset or unknown values give a warn-level
// development logger, which keeps normal CLI output clean.
func New() (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(os.Getenv("NABLE_ENV")) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Level = zap.NewAtomicLevelAt(parseLevel(os.Getenv("NABLE_LOG_LEVEL")))
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
