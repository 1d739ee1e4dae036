// Package git runs the git commands that report changed files.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mvnmin/mvnmin/pkg/log"
)

const (
	// porcelainStatusWidth is the width of the `XY ` prefix of a porcelain status entry.
	porcelainStatusWidth = 3
)

// GitRunner handles git command execution
type GitRunner struct {
	GitPath string
	WorkDir string
}

// NewGitRunner creates a new GitRunner instance
func NewGitRunner() (*GitRunner, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil, &WrappedError{
			Op:      "git",
			Context: "git not found",
			Err:     ErrCommandSpawn,
		}
	}

	return &GitRunner{
		GitPath: gitPath,
	}, nil
}

// WithWorkDir returns a new GitRunner with the specified working directory
func (g *GitRunner) WithWorkDir(workDir string) *GitRunner {
	copy := *g
	copy.WorkDir = workDir

	return &copy
}

// RequiresWorkDir returns an error if no working directory is set
func (g *GitRunner) RequiresWorkDir() error {
	if g.WorkDir == "" {
		return &WrappedError{
			Op:      "git",
			Context: "no working directory set",
			Err:     ErrNoWorkDir,
		}
	}

	return nil
}

// TopLevel returns the absolute path of the repository root containing the working directory.
func (g *GitRunner) TopLevel(ctx context.Context) (string, error) {
	out, err := g.run(ctx, "git_rev_parse", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}

	topLevel := strings.TrimSpace(out)
	if topLevel == "" {
		return "", &WrappedError{Op: "git_rev_parse", Err: ErrNotRepo}
	}

	return filepath.FromSlash(topLevel), nil
}

// Status returns the repository-relative paths of every uncommitted change, untracked files included.
// Renamed and copied entries contribute their new path.
func (g *GitRunner) Status(ctx context.Context, l log.Logger) ([]string, error) {
	out, err := g.run(ctx, "git_status", "status", "--porcelain", "-z", "--untracked-files=all")
	if err != nil {
		return nil, err
	}

	paths := ParseStatus(out)

	l.Debugf("git status reported %d changed files", len(paths))

	return paths, nil
}

// ParseStatus parses the NUL separated output of `git status --porcelain -z`.
func ParseStatus(output string) []string {
	var paths []string

	entries := strings.Split(output, "\x00")

	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if len(entry) <= porcelainStatusWidth {
			continue
		}

		paths = append(paths, filepath.FromSlash(entry[porcelainStatusWidth:]))

		// The source path of a rename or copy follows as its own entry.
		if entry[0] == 'R' || entry[0] == 'C' {
			i++
		}
	}

	return paths
}

// Diff returns the repository-relative paths changed in the given commit range, e.g. `master..`.
func (g *GitRunner) Diff(ctx context.Context, l log.Logger, commitRange string) ([]string, error) {
	out, err := g.run(ctx, "git_diff", "diff", "--name-only", "-z", commitRange, "--")
	if err != nil {
		return nil, err
	}

	paths := ParseNameOnly(out)

	l.Debugf("git diff %s reported %d changed files", commitRange, len(paths))

	return paths, nil
}

// ParseNameOnly parses the NUL separated output of `git diff --name-only -z`. Paths are never quoted in this form.
func ParseNameOnly(output string) []string {
	var paths []string

	for entry := range strings.SplitSeq(output, "\x00") {
		if entry == "" {
			continue
		}

		paths = append(paths, filepath.FromSlash(entry))
	}

	return paths
}

func (g *GitRunner) run(ctx context.Context, op, name string, args ...string) (string, error) {
	if err := g.RequiresWorkDir(); err != nil {
		return "", err
	}

	cmd := g.prepareCommand(ctx, name, args...)
	cmd.Dir = g.WorkDir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &WrappedError{
			Op:      op,
			Context: strings.TrimSpace(stderr.String()),
			Err:     ErrCommandSpawn,
		}
	}

	return stdout.String(), nil
}

func (g *GitRunner) prepareCommand(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, g.GitPath, append([]string{name}, args...)...)
}
