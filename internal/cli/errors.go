package cli

import (
	"fmt"

	"github.com/mvnmin/mvnmin/internal/errors"
	"github.com/urfave/cli/v2"
)

// ErrMsgFlagUndefined is the prefix of the error the standard flag set returns for an unknown flag.
const ErrMsgFlagUndefined = "flag provided but not defined:"

// exitError makes the app exit with exitCode, printing err first unless it is nil.
type exitError struct {
	err      error
	exitCode ExitCode
}

// NewExitError returns an ExitCoder. The message may be nil, an error, or any value formatted with `%+v`.
func NewExitError(message any, exitCode ExitCode) ExitCoder {
	exitErr := &exitError{exitCode: exitCode}

	switch msg := message.(type) {
	case nil:
	case error:
		exitErr.err = msg
	default:
		exitErr.err = fmt.Errorf("%+v", msg) //nolint:err113
	}

	return exitErr
}

func (exitErr *exitError) Error() string {
	if exitErr.err == nil {
		return ""
	}

	return exitErr.err.Error()
}

func (exitErr *exitError) Unwrap() error {
	return exitErr.err
}

func (exitErr *exitError) ExitCode() int {
	return int(exitErr.exitCode)
}

// handleExitCoder prints the message of an ExitCoder to the error writer and exits with its code.
// Other errors are returned.
func handleExitCoder(ctx *Context, err error, osExiter func(code int)) error {
	var exitCoder cli.ExitCoder
	if !errors.As(err, &exitCoder) {
		return err
	}

	if msg := err.Error(); msg != "" {
		_, _ = fmt.Fprintln(ctx.App.ErrWriter, msg)
	}

	osExiter(exitCoder.ExitCode())

	return nil
}

// InvalidValueError replaces a parse error with a message telling which values are accepted.
type InvalidValueError struct {
	underlyingError error
	msg             string
}

func (err InvalidValueError) Error() string {
	return err.msg
}

func (err InvalidValueError) Unwrap() error {
	return err.underlyingError
}
