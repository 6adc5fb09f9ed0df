// Package log provides logging for slingshot components. It wraps zap with a
// thin Log type so packages can log either printf-style or with typed fields.
package log

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// mainLoggerName is the name of the global logger.
const mainLoggerName = "slingshot"

// where logs go by default.
var logWriter io.Writer = os.Stdout

// jsonLog switches the encoder used by new loggers from console to JSON.
var jsonLog bool

// defaultEncoder is the encoder configuration used for console output.
var defaultEncoder = zap.NewDevelopmentEncoderConfig()

// Logger is the logging API consumed by components that do not hold a
// concrete Log.
type Logger interface {
	Info(format string, args ...any)
	Debug(format string, args ...any)
	Error(format string, args ...any)
	Warning(format string, args ...any)
	Panic(format string, args ...any)
	With() FieldLogger
	WithName(string) Log
}

// AppLog is the application singleton logger.
var (
	mu     sync.RWMutex
	AppLog Log
)

// GetLogger returns the global logger.
func GetLogger() Log {
	mu.RLock()
	defer mu.RUnlock()

	return AppLog
}

// SetupGlobal overwrites the global logger.
func SetupGlobal(logger Log) {
	mu.Lock()
	defer mu.Unlock()

	AppLog = logger
}

func init() {
	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	SetupGlobal(NewWithLevel(mainLoggerName, lvl))
}

// JSONLog sets logging to be in JSON format or not.
func JSONLog(b bool) {
	jsonLog = b
}

func encoder() zapcore.Encoder {
	if jsonLog {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	return zapcore.NewConsoleEncoder(defaultEncoder)
}

// NewNop creates a silent logger.
func NewNop() Log {
	return NewFromLog(zap.NewNop())
}

// NewDefault creates a console logger at info level.
func NewDefault(module string) Log {
	return NewWithLevel(module, zap.NewAtomicLevelAt(zapcore.InfoLevel))
}

// NewWithLevel creates a logger with a dynamic level and a set of (optional)
// hooks.
func NewWithLevel(module string, level zap.AtomicLevel, hooks ...func(zapcore.Entry) error) Log {
	core := zapcore.NewCore(encoder(), zapcore.AddSync(logWriter), level)
	log := zap.New(zapcore.RegisterHooks(core, hooks...)).Named(module)
	return Log{logger: log, sugar: log.Sugar(), lvl: &level}
}

// NewFromLog creates a Log from an existing zap logger.
func NewFromLog(l *zap.Logger) Log {
	return Log{logger: l, sugar: l.Sugar()}
}

// public wrappers abstracting away the logging implementation

// Info prints a formatted info level log message.
func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

// Debug prints a formatted debug level log message.
func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

// Warning prints a formatted warning level log message.
func Warning(msg string, args ...any) {
	GetLogger().Warning(msg, args...)
}

// Error prints a formatted error level log message.
func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Panic writes the log message and then panics.
func Panic(msg string, args ...any) {
	GetLogger().Panic(msg, args...)
}

// With returns a FieldLogger on the global logger.
func With() FieldLogger {
	return FieldLogger{l: GetLogger().logger}
}
