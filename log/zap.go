package log

import (
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is an exported type that embeds our logger.
type Log struct {
	logger *zap.Logger
	sugar  *zap.SugaredLogger
	lvl    *zap.AtomicLevel
}

// Info prints a formatted info level log message.
func (l Log) Info(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

// Debug prints a formatted debug level log message.
func (l Log) Debug(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

// Error prints a formatted error level log message.
func (l Log) Error(format string, args ...any) {
	l.sugar.Errorf(format, args...)
}

// Warning prints a formatted warning level log message.
func (l Log) Warning(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

// Panic prints the log message and then panics.
func (l Log) Panic(format string, args ...any) {
	l.sugar.Error("goroutine panicked, stacktrace: ", string(debug.Stack()))
	l.sugar.Panicf(format, args...)
}

// Zap returns the underlying zap logger for components that consume
// *zap.Logger directly.
func (l Log) Zap() *zap.Logger {
	return l.logger
}

// Field is a log field holding a name and value.
type Field zap.Field

// Field satisfies the loggable field interface.
func (f Field) Field() Field { return f }

// String returns a string Field.
func String(name, val string) Field {
	return Field(zap.String(name, val))
}

// Int returns an int Field.
func Int(name string, val int) Field {
	return Field(zap.Int(name, val))
}

// Uint64 returns a uint64 Field.
func Uint64(name string, val uint64) Field {
	return Field(zap.Uint64(name, val))
}

// Bool returns a bool Field.
func Bool(name string, val bool) Field {
	return Field(zap.Bool(name, val))
}

// Duration returns a duration Field.
func Duration(name string, val time.Duration) Field {
	return Field(zap.Duration(name, val))
}

// Stringer returns a Field for a fmt.Stringer.
func Stringer(name string, val fmt.Stringer) Field {
	return Field(zap.Stringer(name, val))
}

// TxID returns a String field (key "tx_id").
func TxID(val string) Field {
	return String("tx_id", val)
}

// BlockHash returns a String field (key "block_hash").
func BlockHash(val string) Field {
	return String("block_hash", val)
}

// Height returns a Uint64 field (key "height").
func Height(val uint64) Field {
	return Uint64("height", val)
}

// ProgramID returns a String field (key "program_id").
func ProgramID(val string) Field {
	return String("program_id", val)
}

// Address returns a String field (key "address").
func Address(val string) Field {
	return String("address", val)
}

// Endpoint returns a String field (key "endpoint").
func Endpoint(val string) Field {
	return String("endpoint", val)
}

// Err returns an error Field.
func Err(v error) Field {
	return Field(zap.NamedError("error", v))
}

// LoggableField is an interface that enables any type to be used as a log
// field.
type LoggableField interface {
	Field() Field
}

func unpack(fields []LoggableField) []zap.Field {
	flds := make([]zap.Field, len(fields))
	for i, f := range fields {
		flds[i] = zap.Field(f.Field())
	}
	return flds
}

// FieldLogger logs messages with typed fields only; it does not format.
type FieldLogger struct {
	l *zap.Logger
}

// With returns a FieldLogger derived from l.
func (l Log) With() FieldLogger {
	return FieldLogger{l.logger}
}

// SetLevel returns a logger with the log level replaced by level.
func (l Log) SetLevel(level *zap.AtomicLevel) Log {
	lgr := l.logger.WithOptions(addDynamicLevel(level))
	return Log{logger: lgr, sugar: lgr.Sugar(), lvl: level}
}

// WithName returns a named sub-logger.
func (l Log) WithName(prefix string) Log {
	lgr := l.logger.Named(prefix)
	if l.lvl != nil {
		lgr = lgr.WithOptions(addDynamicLevel(l.lvl))
	}
	return Log{logger: lgr, sugar: lgr.Sugar(), lvl: l.lvl}
}

func addDynamicLevel(level *zap.AtomicLevel) zap.Option {
	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &coreWithLevel{Core: core, lvl: level}
	})
}

type coreWithLevel struct {
	zapcore.Core
	lvl *zap.AtomicLevel
}

func (c *coreWithLevel) Enabled(level zapcore.Level) bool {
	return c.lvl.Enabled(level)
}

func (c *coreWithLevel) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.lvl.Enabled(e.Level) {
		return ce
	}
	return ce.AddCore(e, c.Core)
}

// WithFields returns a logger with fields permanently appended to it.
func (l Log) WithFields(fields ...LoggableField) Log {
	lgr := l.logger.With(unpack(fields)...)
	if l.lvl != nil {
		lgr = lgr.WithOptions(addDynamicLevel(l.lvl))
	}
	return Log{logger: lgr, sugar: lgr.Sugar(), lvl: l.lvl}
}

// WithOptions clones the current logger and applies the supplied zap options.
func (l Log) WithOptions(opts ...zap.Option) Log {
	lgr := l.logger.WithOptions(opts...)
	return Log{logger: lgr, sugar: lgr.Sugar(), lvl: l.lvl}
}

// Info prints a message with fields.
func (fl FieldLogger) Info(msg string, fields ...LoggableField) {
	fl.l.Info(msg, unpack(fields)...)
}

// Debug prints a message with fields.
func (fl FieldLogger) Debug(msg string, fields ...LoggableField) {
	fl.l.Debug(msg, unpack(fields)...)
}

// Error prints a message with fields.
func (fl FieldLogger) Error(msg string, fields ...LoggableField) {
	fl.l.Error(msg, unpack(fields)...)
}

// Warning prints a message with fields.
func (fl FieldLogger) Warning(msg string, fields ...LoggableField) {
	fl.l.Warn(msg, unpack(fields)...)
}
