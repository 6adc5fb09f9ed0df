package config

import "go.uber.org/zap/zapcore"

// LogEncoder defines a log encoder kind.
type LogEncoder = string

const (
	defaultLoggingLevel = zapcore.InfoLevel
	// ConsoleLogEncoder represents logging with plain text.
	ConsoleLogEncoder LogEncoder = "console"
	// JSONLogEncoder represents logging with JSON.
	JSONLogEncoder LogEncoder = "json"
)

// LoggerConfig holds the logging level for each module.
type LoggerConfig struct {
	Encoder             LogEncoder `mapstructure:"log-encoder"`
	AppLoggerLevel      string     `mapstructure:"app"`
	APILoggerLevel      string     `mapstructure:"api"`
	ClientLoggerLevel   string     `mapstructure:"client"`
	LedgerLoggerLevel   string     `mapstructure:"ledger"`
	MempoolLoggerLevel  string     `mapstructure:"mempool"`
	ProducerLoggerLevel string     `mapstructure:"producer"`
	DatabaseLoggerLevel string     `mapstructure:"database"`
}

func defaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder:             ConsoleLogEncoder,
		AppLoggerLevel:      defaultLoggingLevel.String(),
		APILoggerLevel:      defaultLoggingLevel.String(),
		ClientLoggerLevel:   defaultLoggingLevel.String(),
		LedgerLoggerLevel:   defaultLoggingLevel.String(),
		MempoolLoggerLevel:  defaultLoggingLevel.String(),
		ProducerLoggerLevel: defaultLoggingLevel.String(),
		DatabaseLoggerLevel: defaultLoggingLevel.String(),
	}
}
