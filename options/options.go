// Package options provides the set of options that configure a mvnmin run.
package options

import (
	"io"
	"os"
	"runtime"

	"github.com/mvnmin/mvnmin/internal/diff"
	"github.com/mvnmin/mvnmin/pkg/log"
)

const (
	// DefaultMaxDepth bounds the directory walk of `--all`.
	DefaultMaxDepth = 6

	defaultLogLevel = log.InfoLevel
)

// DefaultParallelism bounds the concurrent project descriptor reads.
var DefaultParallelism = runtime.NumCPU() //nolint:gochecknoglobals

// MvnMinOptions represents options that configure the behavior of the mvnmin program.
type MvnMinOptions struct {
	Writer    io.Writer
	ErrWriter io.Writer
	Reader    io.Reader
	Logger    log.Logger

	// Env is the environment of the process, also passed on to Maven.
	Env map[string]string

	WorkingDir string
	Version    string

	// CommitRange is the `git diff` range whose changed files activate projects, empty when not requested.
	CommitRange string
	ResumeFrom  string
	LogLevel    string

	// Projects are the `-pl` tokens, a leading `!` or `-` deactivates the project.
	Projects []string

	// MavenArgs are the arguments forwarded to every Maven invocation.
	MavenArgs []string

	MaxDepth    int
	Parallelism int

	AllProjects bool
	DryRun      bool
	PrintOnly   bool
	NoBuildIf   bool
	NoColor     bool

	// StdinIsTerminal disables reading project ids from the standard input.
	StdinIsTerminal bool
	// StdoutIsTerminal enables the hint printed when no project is activated.
	StdoutIsTerminal bool
}

// NewMvnMinOptions returns options writing to the standard streams.
func NewMvnMinOptions() *MvnMinOptions {
	return NewMvnMinOptionsWithWriters(os.Stdout, os.Stderr)
}

// NewMvnMinOptionsWithWriters returns options with default values writing to the given writers.
func NewMvnMinOptionsWithWriters(stdout, stderr io.Writer) *MvnMinOptions {
	return &MvnMinOptions{
		Writer:      stdout,
		ErrWriter:   stderr,
		Reader:      os.Stdin,
		Logger:      log.New(log.WithOutput(stderr), log.WithLevel(defaultLogLevel)),
		Env:         map[string]string{},
		LogLevel:    defaultLogLevel.String(),
		MaxDepth:    DefaultMaxDepth,
		Parallelism: DefaultParallelism,
		Projects:    []string{},
		MavenArgs:   []string{},
	}
}

// DiffOptions returns the change sources selected by the options. `--all` replaces every other source.
func (opts *MvnMinOptions) DiffOptions() []diff.Option {
	if opts.AllProjects {
		return []diff.Option{diff.WithAllProjects(opts.MaxDepth)}
	}

	diffOpts := []diff.Option{diff.WithDirtyFiles()}

	if opts.CommitRange != "" {
		diffOpts = append(diffOpts, diff.WithCommitRange(opts.CommitRange))
	}

	return diffOpts
}
