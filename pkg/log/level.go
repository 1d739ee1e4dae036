package log

import (
	"strings"

	"github.com/mvnmin/mvnmin/internal/errors"
	"github.com/sirupsen/logrus"
)

// Level is the severity of a log entry, ordered from the least to the most verbose.
type Level uint32

const (
	ErrorLevel Level = iota
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

// levels maps each Level to its name and logrus level, in Level order.
var levels = []struct {
	name   string
	logrus logrus.Level
}{
	ErrorLevel: {"error", logrus.ErrorLevel},
	WarnLevel:  {"warn", logrus.WarnLevel},
	InfoLevel:  {"info", logrus.InfoLevel},
	DebugLevel: {"debug", logrus.DebugLevel},
	TraceLevel: {"trace", logrus.TraceLevel},
}

// ParseLevel returns the Level named str, ignoring case.
func ParseLevel(str string) (Level, error) {
	names := make([]string, 0, len(levels))

	for level, def := range levels {
		if strings.EqualFold(def.name, str) {
			return Level(level), nil
		}

		names = append(names, def.name)
	}

	return ErrorLevel, errors.Errorf("invalid level %q, supported levels: %s", str, strings.Join(names, ", "))
}

func (level Level) String() string {
	if int(level) < len(levels) {
		return levels[level].name
	}

	return ""
}

// ToLogrusLevel converts the level, unknown levels become info.
func (level Level) ToLogrusLevel() logrus.Level {
	if int(level) < len(levels) {
		return levels[level].logrus
	}

	return logrus.InfoLevel
}

// FromLogrusLevel converts a logrus level. Panic and fatal are reported as errors.
func FromLogrusLevel(lvl logrus.Level) Level {
	for level, def := range levels {
		if def.logrus == lvl {
			return Level(level)
		}
	}

	return ErrorLevel
}
