// Package diff combines change sources into the set of modules they touch.
package diff

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mvnmin/mvnmin/internal/module"
	"github.com/mvnmin/mvnmin/internal/util"
	"github.com/mvnmin/mvnmin/pkg/log"
)

const (
	// DefaultBranch is diffed against when a commit range is requested without a value.
	DefaultBranch = "master"

	rangeSeparator = ".."
)

// ProjectLocator finds changed paths and maps them to the modules owning them.
type ProjectLocator interface {
	DirtyPaths(ctx context.Context, l log.Logger) ([]string, error)
	DiffRange(ctx context.Context, l log.Logger, commitRange string) ([]string, error)
	AllProjects(ctx context.Context, l log.Logger, maxDepth int) ([]string, error)
	ResolveProjectIDs(ctx context.Context, l log.Logger, paths []string) (module.Set, error)
}

// Resolver collects changed paths from the enabled sources and resolves them to a module request.
type Resolver struct {
	locator          ProjectLocator
	commitRange      string
	ignoredFileNames []string
	maxDepth         int
	dirtyFiles       bool
	allProjects      bool
}

// Option enables a change source or tunes the resolver.
type Option func(*Resolver)

// WithDirtyFiles includes uncommitted changes.
func WithDirtyFiles() Option {
	return func(resolver *Resolver) {
		resolver.dirtyFiles = true
	}
}

// WithCommitRange includes the files changed in commitRange.
func WithCommitRange(commitRange string) Option {
	return func(resolver *Resolver) {
		resolver.commitRange = commitRange
	}
}

// WithAllProjects includes every project descriptor at most maxDepth levels deep.
func WithAllProjects(maxDepth int) Option {
	return func(resolver *Resolver) {
		resolver.allProjects = true
		resolver.maxDepth = maxDepth
	}
}

// WithIgnoredFileNames drops changed paths whose file name is one of names.
func WithIgnoredFileNames(names ...string) Option {
	return func(resolver *Resolver) {
		resolver.ignoredFileNames = append(resolver.ignoredFileNames, names...)
	}
}

// NewResolver returns a resolver with no sources enabled.
func NewResolver(locator ProjectLocator, opts ...Option) *Resolver {
	resolver := &Resolver{locator: locator}

	for _, opt := range opts {
		opt(resolver)
	}

	return resolver
}

// NormalizeCommitRange turns a `--diff` value into a range: empty means the default branch,
// a single commit becomes `<commit>..`.
func NormalizeCommitRange(value string) string {
	if value == "" {
		value = DefaultBranch
	}

	if !strings.Contains(value, rangeSeparator) {
		value += rangeSeparator
	}

	return value
}

// ChangedPaths returns the deduplicated union of the paths reported by the enabled sources,
// without ignored file names.
func (resolver *Resolver) ChangedPaths(ctx context.Context, l log.Logger) ([]string, error) {
	var paths []string

	if resolver.commitRange != "" {
		changed, err := resolver.locator.DiffRange(ctx, l, resolver.commitRange)
		if err != nil {
			return nil, err
		}

		l.Debugf("These changes found in a commitish (%s): %v", resolver.commitRange, changed)

		paths = append(paths, changed...)
	}

	if resolver.dirtyFiles {
		dirty, err := resolver.locator.DirtyPaths(ctx, l)
		if err != nil {
			return nil, err
		}

		l.Debugf("Git status found these files are changed: %v", dirty)

		paths = append(paths, dirty...)
	}

	if resolver.allProjects {
		poms, err := resolver.locator.AllProjects(ctx, l, resolver.maxDepth)
		if err != nil {
			return nil, err
		}

		l.Debugf("Adding all the pom files found (maxDepth=%d): %v", resolver.maxDepth, poms)

		paths = append(paths, poms...)
	}

	paths = slices.DeleteFunc(util.RemoveDuplicates(paths), func(path string) bool {
		if slices.Contains(resolver.ignoredFileNames, filepath.Base(path)) {
			l.Debugf("Change detected in %s, ignoring.", path)
			return true
		}

		return false
	})

	l.Debugf("Consolidated list of activated files: %v", paths)

	return paths, nil
}

// Resolve maps the changed paths to module ids and returns them as a request.
func (resolver *Resolver) Resolve(ctx context.Context, l log.Logger) (*module.Request, error) {
	paths, err := resolver.ChangedPaths(ctx, l)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		return module.NewRequest(), nil
	}

	ids, err := resolver.locator.ResolveProjectIDs(ctx, l, paths)
	if err != nil {
		return nil, err
	}

	l.Debugf("Projects activated from files (%d): %v", ids.Len(), ids.Sorted())

	return module.NewRequestFromSet(ids), nil
}
