// Package runner orchestrates one mvnmin run: it collects the module requests, activates the modules,
// partitions them into reactors and builds the reactors one after another.
package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvnmin/mvnmin/internal/composer"
	"github.com/mvnmin/mvnmin/internal/config"
	"github.com/mvnmin/mvnmin/internal/diff"
	"github.com/mvnmin/mvnmin/internal/errors"
	"github.com/mvnmin/mvnmin/internal/module"
	"github.com/mvnmin/mvnmin/internal/reactor"
	"github.com/mvnmin/mvnmin/internal/report"
	"github.com/mvnmin/mvnmin/internal/shell"
	"github.com/mvnmin/mvnmin/options"
	"github.com/mvnmin/mvnmin/pkg/log"
)

// NoModulesMessage is printed on a terminal when nothing is activated.
const NoModulesMessage = "No modified project files detected. This usually means that you don't have any" +
	" uncommitted changes in the repo."

// Runner runs mvnmin with the given options.
type Runner struct {
	opts    *options.MvnMinOptions
	locator diff.ProjectLocator
	maven   shell.Runner
}

// New returns a Runner finding changed projects with locator and starting Maven with maven.
func New(opts *options.MvnMinOptions, locator diff.ProjectLocator, maven shell.Runner) *Runner {
	return &Runner{
		opts:    opts,
		locator: locator,
		maven:   maven,
	}
}

// Run returns the exit code of the run. In print mode the activated modules are printed and nothing is built.
// When no module is activated the exit code is 1. Otherwise it is the exit code of the first failing
// reactor build, or 0. Errors are returned only for failures preventing the resolution.
func (runner *Runner) Run(ctx context.Context, l log.Logger) (int, error) {
	opts := runner.opts

	cfg, err := config.Load(l, opts.WorkingDir, opts.Env)
	if err != nil {
		return 1, err
	}

	reqs, err := runner.requests(ctx, l)
	if err != nil {
		return 1, err
	}

	activated := Activate(l, cfg, !opts.NoBuildIf, reqs...)

	if opts.PrintOnly {
		_, _ = fmt.Fprintln(opts.Writer, strings.Join(activated.Sorted(), "\n"))
		return 0, nil
	}

	if activated.Len() == 0 {
		if opts.StdoutIsTerminal {
			_, _ = fmt.Fprintln(opts.Writer, NoModulesMessage)
		}

		return 1, nil
	}

	reactors := cfg.Engine().Resolve(l, activated)

	return runner.build(ctx, l, cfg, reactors), nil
}

// requests gathers the module requests of the standard input, the `-pl` flags and the changed files.
func (runner *Runner) requests(ctx context.Context, l log.Logger) ([]*module.Request, error) {
	opts := runner.opts

	var reqs []*module.Request

	if !opts.StdinIsTerminal && opts.Reader != nil {
		req, err := ReadRequest(opts.Reader)
		if err != nil {
			return nil, err
		}

		l.Debugf("Projects from stdin: enabled %v, disabled %v", req.Enabled().Sorted(), req.Disabled().Sorted())

		reqs = append(reqs, req)
	}

	req := module.NewRequest(opts.Projects...)
	l.Debugf("Projects from args: enabled %v, disabled %v", req.Enabled().Sorted(), req.Disabled().Sorted())

	reqs = append(reqs, req)

	diffOpts := append(opts.DiffOptions(), diff.WithIgnoredFileNames(config.FileNames...))

	changed, err := diff.NewResolver(runner.locator, diffOpts...).Resolve(ctx, l)
	if err != nil {
		return nil, err
	}

	return append(reqs, changed), nil
}

// build runs the reactors in order, stopping at the first failure.
func (runner *Runner) build(ctx context.Context, l log.Logger, cfg *config.Config, reactors []*reactor.Reactor) int {
	opts := runner.opts
	executable := composer.ResolveExecutable(opts.Env, cfg.MavenCommand, opts.WorkingDir)

	printer := report.NewPrinter(opts.Writer, reactor.MaxNameLength(reactors), opts.StdoutIsTerminal && !opts.NoColor)
	printer.Newline()

	reactor.ApplyResumePoint(l, reactors, opts.ResumeFrom)
	reactor.ApplySkipConditions(l, reactors, opts.MavenArgs)

	var exitCode int

	for _, r := range reactors {
		if exitCode != 0 {
			printer.MavenFailed()
			break
		}

		exitCode = runner.buildReactor(ctx, l.WithField(log.FieldKeyReactor, r.Name), printer, r, executable)
		printer.Newline()
	}

	return exitCode
}

func (runner *Runner) buildReactor(ctx context.Context, l log.Logger, printer *report.Printer, r *reactor.Reactor, executable string) int {
	opts := runner.opts

	invocation := composer.Compose(r, opts.MavenArgs, executable, opts.ResumeFrom)
	printer.CommandSummary(r, invocation)

	if r.Skip() {
		l.Debugf("Reactor skipped")
		return 0
	}

	if opts.DryRun || !r.ShouldBuild() {
		return 0
	}

	exitCode, err := runner.maven.Run(ctx, l, invocation)
	if err != nil {
		var notFound *shell.ExecutableNotFoundError
		if errors.As(err, &notFound) {
			printer.CommandNotExecutable(notFound.Executable)
		}

		l.Debugf("Failed to execute maven: %v", err)

		return 1
	}

	return exitCode
}
