//go:build !windows

package shell_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mvnmin/mvnmin/internal/composer"
	"github.com/mvnmin/mvnmin/internal/shell"
	"github.com/mvnmin/mvnmin/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+body+"\n"), 0o755))
}

func TestExecRunner(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeScript(t, dir, "mvnw", `echo "args: $*"; echo "opts: $MAVEN_OPTS"; exit $EXIT_WITH`)

	testCases := []struct {
		name         string
		exitWith     string
		expectedCode int
	}{
		{"success", "0", 0},
		{"maven failure", "3", 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var stdout bytes.Buffer

			runner := shell.NewExecRunner(&shell.RunOptions{
				Stdout:     &stdout,
				Stderr:     io.Discard,
				WorkingDir: dir,
				Env: map[string]string{
					"PATH":       os.Getenv("PATH"),
					"EXIT_WITH":  tc.exitWith,
					"MAVEN_OPTS": "-Xmx1g",
				},
			})

			code, err := runner.Run(t.Context(), log.New(log.WithOutput(io.Discard)), &composer.Invocation{
				Executable: "./mvnw",
				Args:       []string{"install", "-f", "pom.xml"},
			})
			require.NoError(t, err)

			assert.Equal(t, tc.expectedCode, code)
			assert.Equal(t, "args: install -f pom.xml\nopts: -Xmx1g -Djansi.passthrough=true\n", stdout.String())
		})
	}
}

func TestExecRunnerExecutableNotFound(t *testing.T) {
	t.Parallel()

	runner := shell.NewExecRunner(&shell.RunOptions{
		Stdout:     io.Discard,
		Stderr:     io.Discard,
		WorkingDir: t.TempDir(),
	})

	code, err := runner.Run(t.Context(), log.New(log.WithOutput(io.Discard)), &composer.Invocation{
		Executable: "./no-such-mvn",
	})
	require.Error(t, err)
	assert.Equal(t, 1, code)

	var notFound *shell.ExecutableNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "./no-such-mvn", notFound.Executable)
	assert.Equal(t, "Failed to execute './no-such-mvn', either it couldn't be found, or it isn't executable.", notFound.Error())
}
