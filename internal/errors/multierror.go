package errors

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// MultiError collects the errors of concurrent tasks. The zero value is ready to use.
type MultiError struct {
	inner *multierror.Error
}

// Error lists the wrapped errors, one indented bullet each.
func (errs *MultiError) Error() string {
	wrapped := errs.WrappedErrors()

	var sb strings.Builder

	if len(wrapped) == 1 {
		sb.WriteString("error occurred:\n")
	} else {
		sb.WriteString(strconv.Itoa(len(wrapped)) + " errors occurred:\n")
	}

	for _, err := range wrapped {
		sb.WriteString("\n")
		sb.WriteString(bullet(err.Error()))
		sb.WriteString("\n")
	}

	return sb.String()
}

// WrappedErrors returns the collected errors.
func (errs *MultiError) WrappedErrors() []error {
	if errs == nil || errs.inner == nil {
		return nil
	}

	return errs.inner.WrappedErrors()
}

func (errs *MultiError) Unwrap() []error {
	return errs.WrappedErrors()
}

// ErrorOrNil returns nil when nothing was collected.
func (errs *MultiError) ErrorOrNil() error {
	if len(errs.WrappedErrors()) == 0 {
		return nil
	}

	return errs
}

// Append returns a MultiError holding the collected errors followed by appendErrs. Nil errors are skipped.
func (errs *MultiError) Append(appendErrs ...error) *MultiError {
	var inner *multierror.Error
	if errs != nil {
		inner = errs.inner
	}

	return &MultiError{inner: multierror.Append(inner, appendErrs...)}
}

func bullet(str string) string {
	lines := strings.Split(strings.ReplaceAll(str, "\r\n", "\n"), "\n")

	return "* " + strings.Join(lines, "\n  ")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
