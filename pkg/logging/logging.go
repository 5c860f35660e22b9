package logging

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	level  = zap.NewAtomicLevelAt(zap.InfoLevel)
	logger = newLogger()
)

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{"stdout"}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLevel changes the minimum level of the default logger, e.g. "debug".
func SetLevel(name string) error {
	return level.UnmarshalText([]byte(name))
}

// ReplaceLogger swaps the package logger and returns a func restoring the
// previous one.
func ReplaceLogger(l *zap.Logger) func() {
	mu.Lock()
	prev := logger
	logger = l.WithOptions(zap.AddCallerSkip(1))
	mu.Unlock()
	return func() {
		mu.Lock()
		logger = prev
		mu.Unlock()
	}
}

func Debug(msg string, fields ...zap.Field) {
	current().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	current().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	current().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	current().Error(msg, fields...)
}

// Fatal logs at fatal level and exits the process with status 1.
func Fatal(msg string, fields ...zap.Field) {
	current().Fatal(msg, fields...)
}

func Sync() error {
	return current().Sync()
}

// StdLogger returns a *log.Logger writing to the package logger at error
// level, for libraries that only accept the standard logger.
func StdLogger() *log.Logger {
	l, err := zap.NewStdLogAt(current(), zap.ErrorLevel)
	if err != nil {
		return zap.NewStdLog(current())
	}
	return l
}
