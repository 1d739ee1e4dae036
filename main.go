package main

import (
	"context"
	"os"

	"github.com/mvnmin/mvnmin/cli"
	"github.com/mvnmin/mvnmin/internal/errors"
	"github.com/mvnmin/mvnmin/options"
	"github.com/mvnmin/mvnmin/pkg/env"
	"github.com/mvnmin/mvnmin/pkg/log"

	internalcli "github.com/mvnmin/mvnmin/internal/cli"
)

// The main entrypoint for mvnmin
func main() {
	opts := options.NewMvnMinOptions()
	opts.Env = env.ParseEnvs(os.Environ())

	defer errors.Recover(checkForErrorsAndExit(opts.Logger))

	app := cli.NewApp(opts)

	ctx := log.ContextWithLogger(context.Background(), opts.Logger)
	err := app.RunContext(ctx, os.Args)

	checkForErrorsAndExit(opts.Logger)(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(logger log.Logger) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(0)
		}

		logger.Error(err.Error())

		if errStack := errors.ErrorStack(err); errStack != "" {
			logger.Trace(errStack)
		}

		// exit with the underlying error code
		var exitCoder internalcli.ExitCoder
		if errors.As(err, &exitCoder) {
			os.Exit(exitCoder.ExitCode())
		}

		os.Exit(1)
	}
}
