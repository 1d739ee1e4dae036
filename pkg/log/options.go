package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures the underlying logrus logger, shared by the loggers derived with WithField.
type Option func(base *logrus.Logger)

// WithLevel sets the log level.
func WithLevel(level Level) Option {
	return func(base *logrus.Logger) {
		base.SetLevel(level.ToLogrusLevel())
	}
}

// WithOutput sets where entries are written, stderr by default.
func WithOutput(output io.Writer) Option {
	return func(base *logrus.Logger) {
		base.SetOutput(output)
	}
}

// WithFormatter replaces the pretty formatter.
func WithFormatter(formatter logrus.Formatter) Option {
	return func(base *logrus.Logger) {
		base.SetFormatter(formatter)
	}
}
