// Package locator maps changed files to the Maven modules that own them, using git for change
// detection and the filesystem for descriptor lookup.
package locator

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/mvnmin/mvnmin/internal/errors"
	"github.com/mvnmin/mvnmin/internal/module"
	"github.com/mvnmin/mvnmin/internal/pom"
	"github.com/mvnmin/mvnmin/internal/util"
	"github.com/mvnmin/mvnmin/internal/worker"
	"github.com/mvnmin/mvnmin/pkg/log"
)

const (
	// DefaultCacheSize bounds the number of parsed descriptors kept in memory.
	DefaultCacheSize = 4096

	buildOutputDir = "target"
)

// GitClient reports changed files relative to the repository root.
type GitClient interface {
	TopLevel(ctx context.Context) (string, error)
	Status(ctx context.Context, l log.Logger) ([]string, error)
	Diff(ctx context.Context, l log.Logger, commitRange string) ([]string, error)
}

// Locator finds changed paths and resolves them to module ids below a root directory.
// It is safe for concurrent use.
type Locator struct {
	git         GitClient
	ids         *lru.Cache[string, string]
	root        string
	parallelism int
}

// Option configures a Locator.
type Option func(*Locator)

// WithParallelism sets the number of descriptors parsed concurrently.
func WithParallelism(parallelism int) Option {
	return func(locator *Locator) {
		locator.parallelism = parallelism
	}
}

// New returns a locator rooted at root, normally the working directory.
func New(root string, git GitClient, opts ...Option) (*Locator, error) {
	ids, err := lru.New[string, string](DefaultCacheSize)
	if err != nil {
		return nil, errors.New(err)
	}

	root, err = filepath.Abs(root)
	if err != nil {
		return nil, errors.New(err)
	}

	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	locator := &Locator{
		git:         git,
		ids:         ids,
		root:        root,
		parallelism: runtime.NumCPU(),
	}

	for _, opt := range opts {
		opt(locator)
	}

	return locator, nil
}

// DirtyPaths returns the absolute paths of uncommitted changes.
func (locator *Locator) DirtyPaths(ctx context.Context, l log.Logger) ([]string, error) {
	paths, err := locator.git.Status(ctx, l)
	if err != nil {
		return nil, err
	}

	return locator.absGitPaths(ctx, paths)
}

// DiffRange returns the absolute paths changed in commitRange.
func (locator *Locator) DiffRange(ctx context.Context, l log.Logger, commitRange string) ([]string, error) {
	paths, err := locator.git.Diff(ctx, l, commitRange)
	if err != nil {
		return nil, err
	}

	return locator.absGitPaths(ctx, paths)
}

// AllProjects returns every pom.xml at most maxDepth levels below the root, `./pom.xml` being level one.
// Build output directories are not entered.
func (locator *Locator) AllProjects(ctx context.Context, l log.Logger, maxDepth int) ([]string, error) {
	var poms []string

	err := filepath.WalkDir(locator.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		depth := locator.depth(path)

		if d.IsDir() {
			if path != locator.root && (d.Name() == buildOutputDir || depth >= maxDepth) {
				return filepath.SkipDir
			}

			return nil
		}

		if d.Name() == pom.FileName && depth <= maxDepth {
			poms = append(poms, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.New(err)
	}

	l.Debugf("Found %d project descriptors within depth %d", len(poms), maxDepth)

	return poms, nil
}

// ResolveProjectIDs maps every path to the id of its nearest enclosing pom.xml. Paths outside the root
// or without an enclosing descriptor contribute nothing. Any descriptor that cannot be parsed fails the
// whole resolution.
func (locator *Locator) ResolveProjectIDs(ctx context.Context, l log.Logger, paths []string) (module.Set, error) {
	found := xsync.NewMapOf[string, string]()
	pool := worker.NewWorkerPool(ctx, locator.parallelism, worker.WithFailFast())

	for _, path := range paths {
		pool.Submit(func(ctx context.Context) error {
			id, ok, err := locator.resolve(path)
			if err != nil || !ok {
				return err
			}

			found.Store(path, id)

			return nil
		})
	}

	if err := pool.Wait(); err != nil {
		return nil, err
	}

	ids := module.NewSet()

	found.Range(func(path, id string) bool {
		l.Tracef("%s belongs to %s", path, id)
		ids.Add(id)

		return true
	})

	l.Debugf("Found %d projects for %d paths", ids.Len(), len(paths))

	return ids, nil
}

func (locator *Locator) resolve(path string) (string, bool, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(locator.root, path)
	}

	if !locator.contains(path) {
		return "", false, nil
	}

	dir, ok := util.FindUp(path, pom.FileName, locator.root)
	if !ok {
		return "", false, nil
	}

	if id, ok := locator.ids.Get(dir); ok {
		return id, true, nil
	}

	project, err := pom.ParseFile(filepath.Join(dir, pom.FileName))
	if err != nil {
		return "", false, err
	}

	id := project.ID()
	locator.ids.Add(dir, id)

	return id, true, nil
}

func (locator *Locator) absGitPaths(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	topLevel, err := locator.git.TopLevel(ctx)
	if err != nil {
		return nil, err
	}

	abs := make([]string, 0, len(paths))
	for _, path := range paths {
		abs = append(abs, filepath.Join(topLevel, path))
	}

	return abs, nil
}

func (locator *Locator) contains(path string) bool {
	rel, err := filepath.Rel(locator.root, path)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (locator *Locator) depth(path string) int {
	rel, err := filepath.Rel(locator.root, path)
	if err != nil || rel == "." {
		return 0
	}

	return len(strings.Split(rel, string(filepath.Separator)))
}
