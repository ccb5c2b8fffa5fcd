// ABOUTME: Structured logger implementation on logrus with optional rotating file output
// ABOUTME: Satisfies core/interfaces.Logger and exposes an io.Writer for net/http error logs

package structured

import (
	"fmt"
	"io"
	"os"

	"recipe-finder-api/core/interfaces"
	"recipe-finder-api/pkg/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger implements the Logger interface using logrus
type Logger struct {
	entry  *logrus.Entry
	closer io.Closer
}

var _ interfaces.Logger = (*Logger)(nil)

// New builds a logger from configuration. When cfg.File is set output goes to a
// rotating file instead of stdout.
func New(cfg config.LogConfig) (*Logger, error) {
	base := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	base.SetLevel(level)

	switch cfg.Format {
	case "text":
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		base.SetFormatter(&logrus.JSONFormatter{})
	}

	l := &Logger{}
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		base.SetOutput(rotator)
		l.closer = rotator
	} else {
		base.SetOutput(os.Stdout)
	}

	l.entry = logrus.NewEntry(base)
	return l, nil
}

// NewFromLogrus wraps an existing logrus logger
func NewFromLogrus(base *logrus.Logger) *Logger {
	return &Logger{entry: logrus.NewEntry(base)}
}

// With returns a child logger that adds fields to every entry
func (l *Logger) With(fields map[string]interface{}) *Logger {
	return &Logger{entry: l.entry.WithFields(fields), closer: l.closer}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}

// ErrorWriter returns a writer whose lines are logged at error level.
// The caller closes it.
func (l *Logger) ErrorWriter() *io.PipeWriter {
	return l.entry.WriterLevel(logrus.ErrorLevel)
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
