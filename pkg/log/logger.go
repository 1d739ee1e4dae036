package log

import (
	"github.com/sirupsen/logrus"
)

// Logger is the leveled logger passed through mvnmin. Fields added with WithField are
// rendered by the formatter after the message.
type Logger interface {
	// Clone returns an independent copy whose level, output and formatter can be changed
	// without affecting the original.
	Clone() Logger

	SetOptions(opts ...Option)

	// Level returns the current log level.
	Level() Level

	// SetLevel parses and sets the log level.
	SetLevel(str string) error

	// WithField returns a logger adding the field to every entry.
	WithField(key string, value any) Logger

	// WithFields returns a logger adding the fields to every entry.
	WithFields(fields Fields) Logger

	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	Trace(args ...any)
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

type logrusLogger struct {
	entry *logrus.Entry
}

// New returns a new Logger instance.
// Without options it writes to stderr at info level through the pretty formatter.
func New(opts ...Option) Logger {
	base := logrus.New()
	base.SetLevel(InfoLevel.ToLogrusLevel())
	base.SetFormatter(NewPrettyFormatter())

	logger := &logrusLogger{entry: logrus.NewEntry(base)}
	logger.SetOptions(opts...)

	return logger
}

func (logger *logrusLogger) Clone() Logger {
	parent := logger.entry.Logger

	base := logrus.New()
	base.SetOutput(parent.Out)
	base.SetLevel(parent.Level)
	base.SetFormatter(parent.Formatter)
	base.ReplaceHooks(parent.Hooks)

	entry := logger.entry.Dup()
	entry.Logger = base

	return &logrusLogger{entry: entry}
}

func (logger *logrusLogger) SetOptions(opts ...Option) {
	for _, opt := range opts {
		opt(logger.entry.Logger)
	}
}

func (logger *logrusLogger) Level() Level {
	return FromLogrusLevel(logger.entry.Logger.GetLevel())
}

func (logger *logrusLogger) SetLevel(str string) error {
	level, err := ParseLevel(str)
	if err != nil {
		return err
	}

	logger.entry.Logger.SetLevel(level.ToLogrusLevel())

	return nil
}

func (logger *logrusLogger) WithField(key string, value any) Logger {
	return logger.WithFields(Fields{key: value})
}

func (logger *logrusLogger) WithFields(fields Fields) Logger {
	return &logrusLogger{entry: logger.entry.WithFields(logrus.Fields(fields))}
}

func (logger *logrusLogger) Tracef(format string, args ...any) { logger.logf(TraceLevel, format, args...) }
func (logger *logrusLogger) Debugf(format string, args ...any) { logger.logf(DebugLevel, format, args...) }
func (logger *logrusLogger) Infof(format string, args ...any)  { logger.logf(InfoLevel, format, args...) }
func (logger *logrusLogger) Warnf(format string, args ...any)  { logger.logf(WarnLevel, format, args...) }
func (logger *logrusLogger) Errorf(format string, args ...any) { logger.logf(ErrorLevel, format, args...) }

func (logger *logrusLogger) Trace(args ...any) { logger.log(TraceLevel, args...) }
func (logger *logrusLogger) Debug(args ...any) { logger.log(DebugLevel, args...) }
func (logger *logrusLogger) Info(args ...any)  { logger.log(InfoLevel, args...) }
func (logger *logrusLogger) Warn(args ...any)  { logger.log(WarnLevel, args...) }
func (logger *logrusLogger) Error(args ...any) { logger.log(ErrorLevel, args...) }

func (logger *logrusLogger) logf(level Level, format string, args ...any) {
	logger.entry.Logf(level.ToLogrusLevel(), format, args...)
}

func (logger *logrusLogger) log(level Level, args ...any) {
	logger.entry.Log(level.ToLogrusLevel(), args...)
}
