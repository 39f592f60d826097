package logger

import (
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap.Logger to the ports.Logger interface.
type ZapLogger struct {
	base *zap.Logger
}

// New builds a production zap logger; verbose lowers the level to debug.
func New(verbose bool) (*ZapLogger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	base, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{base: base}, nil
}

// Wrap adapts an existing zap logger.
func Wrap(base *zap.Logger) *ZapLogger {
	return &ZapLogger{base: base}
}

// NewNop returns a logger that discards everything.
func NewNop() *ZapLogger {
	return &ZapLogger{base: zap.NewNop()}
}

// Zap exposes the underlying logger.
func (l *ZapLogger) Zap() *zap.Logger {
	return l.base
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.base.Sync()
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.base.Debug(msg, toFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.base.Info(msg, toFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.base.Warn(msg, toFields(fields)...)
}

func (l *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.base.Error(msg, append(toFields(fields), zap.Error(err))...)
}

// toFields converts the map in key order so output is stable.
func toFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}
