package shell

import "fmt"

// ExecutableNotFoundError is returned when the Maven executable cannot be started.
type ExecutableNotFoundError struct {
	Err        error
	Executable string
}

func (err *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("Failed to execute '%s', either it couldn't be found, or it isn't executable.", err.Executable)
}

func (err *ExecutableNotFoundError) Unwrap() error {
	return err.Err
}
