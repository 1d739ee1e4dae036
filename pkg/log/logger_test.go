package log_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mvnmin/mvnmin/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer, level log.Level) log.Logger {
	formatter := log.NewPrettyFormatter()
	formatter.DisableColors = true
	formatter.DisableTimestamp = true

	return log.New(log.WithOutput(buf), log.WithLevel(level), log.WithFormatter(formatter))
}

func TestLoggerLevels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		level    log.Level
		expected string
	}{
		{log.InfoLevel, "INFO  hello\n"},
		{log.ErrorLevel, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.level.String(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := newTestLogger(&buf, tc.level)
			logger.Infof("hello")
			logger.Debugf("never")

			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestLoggerFieldsAndPrefix(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := newTestLogger(&buf, log.DebugLevel).
		WithField(log.FieldKeyPrefix, "git").
		WithField("b", 2).
		WithField("a", 1)
	logger.Debug("running")

	assert.Equal(t, "DEBUG [git] running a=1 b=2\n", buf.String())
}

func TestSetLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := newTestLogger(&buf, log.InfoLevel)

	require.NoError(t, logger.SetLevel("TRACE"))
	assert.Equal(t, log.TraceLevel, logger.Level())

	err := logger.SetLevel("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid level "loud"`)
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := newTestLogger(&buf, log.InfoLevel)
	clone := logger.Clone()

	require.NoError(t, clone.SetLevel("debug"))

	assert.Equal(t, log.InfoLevel, logger.Level())
	assert.Equal(t, log.DebugLevel, clone.Level())
}

func TestLoggerFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := newTestLogger(&buf, log.InfoLevel)
	ctx := log.ContextWithLogger(context.Background(), logger)

	assert.Same(t, logger, log.LoggerFromContext(ctx))
	assert.Equal(t, log.Default(), log.LoggerFromContext(context.Background()))
}
