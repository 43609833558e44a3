// Package logger configures the process-wide logrus logger.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, text
	Output io.Writer
}

var std = logrus.New()

// New builds a logrus logger from cfg. Unknown levels fall back to info.
func New(cfg Config) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	if cfg.Output != nil {
		l.SetOutput(cfg.Output)
	} else {
		l.SetOutput(os.Stdout)
	}
	return l
}

// Init replaces the shared logger and the logrus standard logger so that
// packages logging through either end up in the same place.
func Init(cfg Config) *logrus.Logger {
	std = New(cfg)

	logrus.SetLevel(std.GetLevel())
	logrus.SetFormatter(std.Formatter)
	logrus.SetOutput(std.Out)
	return std
}

func L() *logrus.Logger {
	return std
}

func WithField(key string, value interface{}) *logrus.Entry {
	return std.WithField(key, value)
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return std.WithFields(fields)
}

func WithError(err error) *logrus.Entry {
	return std.WithError(err)
}
