// Package log is a small structured logger built on zap. Diagnostics go to
// stderr so they never mix with report output on stdout.
package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a typed structured logging field.
type Field = zap.Field

// Logger wraps a zap.Logger with an adjustable level.
type Logger struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
}

// DefaultLevel hides everything below warnings.
const DefaultLevel = "warn"

// New creates a console logger writing to w at the named level
// (debug, info, warn, error).
func New(w io.Writer, level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	atomic := zap.NewAtomicLevelAt(lvl)

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), atomic)

	return &Logger{logger: zap.New(core), atomicLevel: atomic}, nil
}

// NewWithCore wraps an existing core, mainly for tests.
func NewWithCore(core zapcore.Core) *Logger {
	return &Logger{logger: zap.New(core), atomicLevel: zap.NewAtomicLevel()}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zap.NewNop(), atomicLevel: zap.NewAtomicLevel()}
}

func (l *Logger) must() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}
	return l.logger
}

// With returns a child logger with additional fields.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{logger: l.must().With(fields...), atomicLevel: l.atomicLevel}
}

// WithComponent returns a child logger tagged with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	return l.With(zap.String(FieldComponent, component))
}

// WithRunID tags the logger with a fresh run id so every line of one CLI
// invocation can be correlated.
func (l *Logger) WithRunID() *Logger {
	return l.With(zap.String(FieldRunID, uuid.NewString()))
}

func (l *Logger) Debug(msg string, fields ...Field) { l.must().Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.must().Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.must().Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.must().Error(msg, fields...) }

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level zapcore.Level) bool {
	return l.must().Core().Enabled(level)
}

// SetLevel changes the minimum level at runtime.
func (l *Logger) SetLevel(level zapcore.Level) {
	l.atomicLevel.SetLevel(level)
}

// Sync flushes buffered output.
func (l *Logger) Sync() error {
	return l.must().Sync()
}
