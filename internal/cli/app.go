// Package cli provides the command line layer of mvnmin.
package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v2"
)

// App is a wrapper for `urfave`'s `cli.App` struct. It should be created with the cli.NewApp() function.
// The main purpose of this wrapper is to parse flags in the way a Maven wrapper needs, namely,
// if during parsing we find undefined flags, instead of returning an error, we consider them as arguments,
// regardless of their position among the registered flags.
//
// For example, CLI command:
// `mvnmin clean install -pl core -DskipTests --dry-run -T4`
// The `App` defines the registered flags `-pl` and `--dry-run`, and keeps `clean install -DskipTests -T4`
// as args which can be obtained from the App context, ctx.Args().Slice()
type App struct {
	*cli.App

	// Before is an action to execute after the flags are parsed and before the Action.
	Before ActionFunc

	// Action is the action to execute with the args left after parsing the flags.
	Action ActionFunc

	// OsExiter is the function used when the app exits. If not set defaults to os.Exit.
	OsExiter func(code int)

	// LookupEnv resolves the env vars of the flags. Defaults to os.LookupEnv.
	LookupEnv LookupEnvFunc

	// CustomAppVersionTemplate is a text template for app version topic.
	CustomAppVersionTemplate string

	// Flags is a list of flags to parse.
	Flags Flags
}

// NewApp returns app new App instance.
func NewApp() *App {
	cliApp := cli.NewApp()
	cliApp.ExitErrHandler = func(_ *cli.Context, _ error) {}
	cliApp.HideHelp = true
	cliApp.HideHelpCommand = true
	cliApp.HideVersion = true

	return &App{
		App:       cliApp,
		OsExiter:  os.Exit,
		LookupEnv: os.LookupEnv,
	}
}

// Run is the entry point to the cli app. Parses the arguments slice and routes to the proper flag/args combination.
func (app *App) Run(arguments []string) error {
	return app.RunContext(context.Background(), arguments)
}

// RunContext is like Run except it takes a Context that will be
// passed to the action. Through this, you can
// propagate timeouts and cancellation requests
func (app *App) RunContext(ctx context.Context, arguments []string) error {
	app.SkipFlagParsing = true
	app.App.Action = func(parentCtx *cli.Context) error {
		args := Args(parentCtx.Args().Slice())
		ctx := NewAppContext(parentCtx.Context, app, args)

		return handleExitCoder(ctx, app.run(ctx, args), app.OsExiter)
	}

	return app.App.RunContext(ctx, arguments)
}

// VisibleFlags returns a slice of the Flags used for help.
func (app *App) VisibleFlags() Flags {
	return app.Flags.VisibleFlags()
}

func (app *App) run(ctx *Context, args Args) error {
	undefArgs, err := app.Flags.Parse(args, app.LookupEnv)
	if err != nil {
		return NewExitError(err, ExitCodeGeneralError)
	}

	ctx.args = undefArgs

	if err := app.Flags.RunActions(ctx); err != nil {
		return err
	}

	if app.Before != nil {
		if err := app.Before(ctx); err != nil {
			return err
		}
	}

	if app.Action != nil {
		return app.Action(ctx)
	}

	return nil
}
