package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/time-tally/internal/config"
)

// LevelFromVerbosity maps the -v count to a zap level.
// zap has no trace level, so 5 and above log at debug.
func LevelFromVerbosity(verbose int) zapcore.Level {
	switch verbose {
	case 1:
		return zapcore.ErrorLevel
	case 2:
		return zapcore.WarnLevel
	case 3:
		return zapcore.InfoLevel
	default:
		if verbose <= 0 {
			return zapcore.InfoLevel
		}
		return zapcore.DebugLevel
	}
}

// New builds the logger for the configured subscriber
func New(cfg *config.Config) (*zap.Logger, error) {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter is New with the stdout subscriber writing to w instead.
// Commands that print results on stdout pass stderr here.
func NewWithWriter(cfg *config.Config, w io.Writer) (*zap.Logger, error) {
	level := LevelFromVerbosity(cfg.Verbose)

	switch cfg.Subscriber {
	case config.SubscriberStdout:
		return newWriterLogger(w, level, cfg.Env == "prod"), nil
	case config.SubscriberFile:
		return newFileLogger(cfg.LogFile, level), nil
	default:
		return nil, fmt.Errorf("unsupported log subscriber: %s", cfg.Subscriber)
	}
}

func encoderConfig() zapcore.EncoderConfig {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return encoderConfig
}

// newWriterLogger logs JSON in prod and colored console lines otherwise
func newWriterLogger(w io.Writer, level zapcore.Level, prod bool) *zap.Logger {
	var encoder zapcore.Encoder
	if prod {
		encoder = zapcore.NewJSONEncoder(encoderConfig())
	} else {
		ec := encoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(ec)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))
}

func newFileLogger(logFile string, level zapcore.Level) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig()),
		zapcore.AddSync(logWriter),
		level,
	)

	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))
}
