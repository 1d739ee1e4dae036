package pom

import (
	"fmt"

	"github.com/mvnmin/mvnmin/internal/errors"
)

var ErrMissingArtifactID = errors.New("artifactId is missing")

// ParseError is returned when a project descriptor cannot be read or decoded.
type ParseError struct {
	Err  error
	Path string
}

func (err ParseError) Error() string {
	return fmt.Sprintf("failed to parse project descriptor %s: %v", err.Path, err.Err)
}

func (err ParseError) Unwrap() error {
	return err.Err
}
