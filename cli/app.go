// Package cli wires the mvnmin flags and the run action into the CLI app.
package cli

import (
	"os"
	"path/filepath"

	"github.com/gruntwork-io/go-commons/version"
	"github.com/mattn/go-isatty"

	"github.com/mvnmin/mvnmin/cli/flags"
	"github.com/mvnmin/mvnmin/internal/cli"
	"github.com/mvnmin/mvnmin/internal/errors"
	"github.com/mvnmin/mvnmin/internal/git"
	"github.com/mvnmin/mvnmin/internal/locator"
	"github.com/mvnmin/mvnmin/internal/runner"
	"github.com/mvnmin/mvnmin/internal/shell"
	"github.com/mvnmin/mvnmin/options"
	"github.com/mvnmin/mvnmin/pkg/env"
	"github.com/mvnmin/mvnmin/pkg/log"
)

const (
	AppName = "mvnmin"

	// DebugEnvName enables debug logging when set to true, unless a log level is given.
	DebugEnvName = "DEBUG"

	unknownVersion = "version unknown"
)

func init() {
	cli.AppHelpTemplate = AppHelpTemplate
	cli.AppVersionTemplate = AppVersionTemplate
}

// NewApp creates the mvnmin CLI App.
func NewApp(opts *options.MvnMinOptions) *cli.App {
	app := cli.NewApp()
	app.Name = AppName
	app.Usage = "Runs Maven on the projects changed in the git working tree, split into the configured reactors."
	app.UsageText = "mvnmin [options] [<maven goal(s)>] [<maven phase(s)>] [<maven arg(s)>]"
	app.Version = opts.Version
	app.Writer = opts.Writer
	app.ErrWriter = opts.ErrWriter
	app.LookupEnv = env.Env(opts.Env).Lookup
	app.Flags = flags.NewFlags(opts)
	app.Before = initialSetup(opts)
	app.Action = runAction(opts)

	if app.Version == "" {
		if app.Version = version.GetVersion(); app.Version == "" {
			app.Version = unknownVersion
		}
	}

	return app
}

// initialSetup completes the options with what the flags do not carry.
func initialSetup(opts *options.MvnMinOptions) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		opts.MavenArgs = ctx.Args().Slice()

		if !ctx.App.Flags.Get(flags.LogLevelFlagName).IsSet() && env.Env(opts.Env).GetBool(DebugEnvName, false) {
			opts.LogLevel = log.DebugLevel.String()
		}

		if err := opts.Logger.SetLevel(opts.LogLevel); err != nil {
			return cli.NewExitError(err, cli.ExitCodeGeneralError)
		}

		if opts.WorkingDir == "" {
			currentDir, err := os.Getwd()
			if err != nil {
				return errors.New(err)
			}

			opts.WorkingDir = currentDir
		}

		workingDir, err := filepath.Abs(opts.WorkingDir)
		if err != nil {
			return errors.New(err)
		}

		opts.WorkingDir = workingDir

		opts.StdinIsTerminal = isTerminal(opts.Reader)
		opts.StdoutIsTerminal = isTerminal(opts.Writer)

		if opts.NoColor || !isTerminal(opts.ErrWriter) {
			formatter := log.NewPrettyFormatter()
			formatter.DisableColors = true

			opts.Logger.SetOptions(log.WithFormatter(formatter))
		}

		opts.Logger.Debugf("Maven arguments: %v", opts.MavenArgs)

		return nil
	}
}

func runAction(opts *options.MvnMinOptions) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		gitRunner, err := git.NewGitRunner()
		if err != nil {
			return err
		}

		projectLocator, err := locator.New(opts.WorkingDir, gitRunner.WithWorkDir(opts.WorkingDir),
			locator.WithParallelism(opts.Parallelism))
		if err != nil {
			return err
		}

		maven := shell.NewExecRunner(&shell.RunOptions{
			Stdin:      opts.Reader,
			Stdout:     opts.Writer,
			Stderr:     opts.ErrWriter,
			Env:        opts.Env,
			WorkingDir: opts.WorkingDir,
		})

		exitCode, err := runner.New(opts, projectLocator, maven).Run(ctx, opts.Logger)
		if err != nil {
			return err
		}

		if exitCode != 0 {
			return cli.NewExitError(nil, cli.ExitCode(exitCode))
		}

		return nil
	}
}

// isTerminal reports whether the stream is an *os.File attached to a terminal.
func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
