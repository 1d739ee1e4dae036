package git

import (
	"fmt"

	"github.com/mvnmin/mvnmin/internal/errors"
)

var (
	ErrCommandSpawn = errors.New("failed to spawn git command")
	ErrNoWorkDir    = errors.New("working directory not set")
	ErrNotRepo      = errors.New("not a git repository")
)

// WrappedError carries the git operation that failed and the command output that explains it.
type WrappedError struct {
	Err     error
	Op      string
	Context string
}

func (e *WrappedError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s: %s: %v", e.Op, e.Context, e.Err)
}

func (e *WrappedError) Unwrap() error {
	return e.Err
}
