package log

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const defaultTimestampFormat = "15:04:05.000"

// PrettyFormatter renders entries as a single human readable line:
// timestamp, level, optional prefix, message, then the remaining fields as key=value.
type PrettyFormatter struct {
	// DisableColors disables ANSI styling, used with --no-color or when stderr is not a terminal.
	DisableColors bool

	// DisableTimestamp omits the leading timestamp.
	DisableTimestamp bool

	TimestampFormat string

	colorScheme *colorScheme
}

// NewPrettyFormatter returns a formatter with the default color scheme.
func NewPrettyFormatter() *PrettyFormatter {
	return &PrettyFormatter{
		TimestampFormat: defaultTimestampFormat,
		colorScheme:     newColorScheme(),
	}
}

// Format implements logrus.Formatter.
func (formatter *PrettyFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	buf := entry.Buffer
	if buf == nil {
		buf = new(bytes.Buffer)
	}

	fields := Fields(entry.Data)
	level := FromLogrusLevel(entry.Level)

	if !formatter.DisableTimestamp {
		buf.WriteString(formatter.color(timestampStyle, entry.Time.Format(formatter.TimestampFormat)))
		buf.WriteString(" ")
	}

	levelName := fmt.Sprintf("%-6s", strings.ToUpper(level.String()))
	if formatter.DisableColors {
		buf.WriteString(levelName)
	} else {
		buf.WriteString(formatter.colorScheme.level(level, levelName))
	}

	if prefix, ok := fields[FieldKeyPrefix]; ok {
		buf.WriteString(formatter.color(prefixStyle, fmt.Sprintf("[%v] ", prefix)))
	}

	buf.WriteString(entry.Message)

	for _, key := range fields.Keys(FieldKeyPrefix) {
		fmt.Fprintf(buf, " %s=%v", key, fields[key])
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func (formatter *PrettyFormatter) color(style colorStyle, str string) string {
	if formatter.DisableColors {
		return str
	}

	return formatter.colorScheme.style(style, str)
}
