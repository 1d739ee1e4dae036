// Package shell runs the composed Maven invocations.
package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/mvnmin/mvnmin/internal/composer"
	"github.com/mvnmin/mvnmin/internal/errors"
	"github.com/mvnmin/mvnmin/pkg/log"
)

const (
	MavenOptsEnvName = "MAVEN_OPTS"

	// jansiPassthrough keeps Maven's ANSI colors when its output is not a terminal.
	jansiPassthrough = "-Djansi.passthrough=true"

	// InterruptWaitDelay is how long Maven gets to exit after an interrupt before it is killed.
	InterruptWaitDelay = 15 * time.Second
)

// Runner executes an invocation and reports the process exit code.
type Runner interface {
	Run(ctx context.Context, l log.Logger, invocation *composer.Invocation) (int, error)
}

// RunOptions contains the configuration needed to run Maven.
type RunOptions struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Env    map[string]string

	WorkingDir string
}

// ExecRunner runs invocations as child processes.
type ExecRunner struct {
	opts *RunOptions
}

// NewExecRunner returns a Runner starting processes with opts.
func NewExecRunner(opts *RunOptions) *ExecRunner {
	return &ExecRunner{opts: opts}
}

// Run starts the invocation, streams its output and waits for it. A non-zero exit is reported through the
// returned code, not as an error. An error is returned only when the process could not be started.
func (runner *ExecRunner) Run(ctx context.Context, l log.Logger, invocation *composer.Invocation) (int, error) {
	env := ChildEnv(runner.opts.Env)

	l.Debugf("Running command: %s", invocation)
	l.Debugf("Using %s=%q", MavenOptsEnvName, env[MavenOptsEnvName])

	cmd := exec.CommandContext(ctx, invocation.Executable, invocation.Args...)
	cmd.Dir = runner.opts.WorkingDir
	cmd.Env = envToList(env)
	cmd.Stdin = runner.opts.Stdin
	cmd.Stdout = runner.opts.Stdout
	cmd.Stderr = runner.opts.Stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = InterruptWaitDelay

	if err := cmd.Start(); err != nil {
		return 1, errors.New(&ExecutableNotFoundError{Executable: invocation.Executable, Err: err})
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return 1, errors.New(err)
		}

		// Killed by a signal.
		if exitErr.ExitCode() < 0 {
			return 1, nil
		}

		return exitErr.ExitCode(), nil
	}

	return 0, nil
}

// ChildEnv returns a copy of env with the jansi passthrough flag appended to MAVEN_OPTS.
func ChildEnv(env map[string]string) map[string]string {
	child := make(map[string]string, len(env)+1)
	for key, value := range env {
		child[key] = value
	}

	child[MavenOptsEnvName] = strings.TrimSpace(child[MavenOptsEnvName] + " " + jansiPassthrough)

	return child
}

func envToList(env map[string]string) []string {
	list := make([]string, 0, len(env))
	for key, value := range env {
		list = append(list, key+"="+value)
	}

	return list
}
