// Package logger builds the logrus logger used by com0comctl.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/sa6mwa/com0com/internal/config"
)

// TimestampFormat has millisecond precision and no zone.
const TimestampFormat = "2006-01-02 15:04:05.000"

// New returns a logger configured from cfg. File output rotates through
// lumberjack; release it with Close.
func New(cfg *config.LogConfig) (*logrus.Logger, error) {
	if cfg == nil {
		return nil, fmt.Errorf("log config cannot be nil")
	}

	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)

	if err := setLogFormatter(logger, cfg); err != nil {
		return nil, fmt.Errorf("failed to set log formatter: %w", err)
	}
	if err := setLogOutput(logger, cfg); err != nil {
		return nil, fmt.Errorf("failed to set log output: %w", err)
	}
	logger.SetReportCaller(cfg.Caller)

	return logger, nil
}

// Close releases a rotating log file opened by New. Loggers writing to the
// standard streams are left alone.
func Close(logger *logrus.Logger) error {
	if logger == nil {
		return nil
	}
	if lj, ok := logger.Out.(*lumberjack.Logger); ok {
		return lj.Close()
	}
	return nil
}

func setLogFormatter(logger *logrus.Logger, cfg *config.LogConfig) error {
	switch strings.ToLower(cfg.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: TimestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
				logrus.FieldKeyFunc: "function",
			},
		})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: TimestampFormat,
			FullTimestamp:   true,
		})
	default:
		return fmt.Errorf("unsupported log format: %s", cfg.Format)
	}
	return nil
}

func setLogOutput(logger *logrus.Logger, cfg *config.LogConfig) error {
	var out io.Writer
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		out = os.Stdout
	case "stderr", "":
		out = os.Stderr
	case "file":
		if cfg.FilePath == "" {
			return fmt.Errorf("file path is required when output is file")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		out = &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
	default:
		return fmt.Errorf("unsupported log output: %s", cfg.Output)
	}
	logger.SetOutput(out)
	return nil
}
