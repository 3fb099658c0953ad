// File: internal/logging/logging.go
// Author: momentics <momentics@gmail.com>
//
// Structured logging bootstrap. The pool itself defaults to a nop
// logger; binaries and examples attach a real one via pool.WithLogger.

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger. Development mode uses the console encoder
// with colored levels; production mode emits JSON at Info.
func New(development bool) *zap.Logger {
	if development {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		log, err := cfg.Build()
		if err != nil {
			return zap.NewNop()
		}
		return log
	}
	log, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
