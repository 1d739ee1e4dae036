// Package errors wraps errors with stack traces, so that `--log-level trace` can tell where a failure came from.
package errors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type stackTracer interface {
	ErrorStack() string
}

// New returns val as an error carrying a stack trace.
// Errors that already carry one are returned unchanged, nil stays nil.
func New(val any) error {
	if val == nil {
		return nil
	}

	if err, ok := val.(error); ok && ContainsStackTrace(err) {
		return err
	}

	return goerrors.Wrap(val, 1)
}

// Errorf formats like fmt.Errorf, `%w` included, and adds a stack trace unless a wrapped value has one.
func Errorf(format string, vals ...any) error {
	err := fmt.Errorf(format, vals...) //nolint:err113

	for _, val := range vals {
		if val, ok := val.(error); ok && ContainsStackTrace(val) {
			return err
		}
	}

	return goerrors.Wrap(err, 1)
}

// As is errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is is errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// ErrorStack returns the stack traces found in the error tree, joined by newlines.
func ErrorStack(err error) string {
	var stacks []string

	walk(err, func(err error) bool {
		if tracer, ok := err.(stackTracer); ok {
			stacks = append(stacks, tracer.ErrorStack())
		}

		return true
	})

	return joinLines(stacks)
}

// ContainsStackTrace reports whether an error in the tree already carries a stack trace.
func ContainsStackTrace(err error) bool {
	var found bool

	walk(err, func(err error) bool {
		_, found = err.(stackTracer)
		return !found
	})

	return found
}

// Recover calls onPanic with the recovered value as an error. It must be deferred.
func Recover(onPanic func(cause error)) {
	if rec := recover(); rec != nil {
		err, isError := rec.(error)
		if !isError {
			err = fmt.Errorf("%v", rec) //nolint:err113
		}

		onPanic(New(err))
	}
}

// walk visits err and everything it wraps, following both `Unwrap() error` and `Unwrap() []error`,
// until visit returns false.
func walk(err error, visit func(err error) bool) bool {
	if err == nil {
		return true
	}

	if !visit(err) {
		return false
	}

	switch wrapper := err.(type) {
	case interface{ Unwrap() []error }:
		for _, inner := range wrapper.Unwrap() {
			if !walk(inner, visit) {
				return false
			}
		}
	case interface{ Unwrap() error }:
		return walk(wrapper.Unwrap(), visit)
	}

	return true
}
