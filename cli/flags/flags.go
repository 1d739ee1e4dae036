// Package flags defines the mvnmin command line flags.
package flags

import (
	"fmt"

	"github.com/mvnmin/mvnmin/internal/cli"
	"github.com/mvnmin/mvnmin/internal/diff"
	"github.com/mvnmin/mvnmin/options"
)

const (
	// Project activation flags.

	AllFlagName        = "all"
	DiffFlagName       = "diff"
	ProjectsFlagName   = "projects"
	ProjectsFlagAlias  = "pl"
	NoBuildIfFlagName  = "nbi"
	MaxDepthFlagName   = "max-depth"
	ParallelismFlag    = "parallelism"
	ResumeFromFlagName = "resume-from"
	ResumeFromAlias    = "rf"
	FileFlagName       = "file"
	FileFlagAlias      = "f"

	// Scripting and debug flags.

	PrintFlagName   = "p"
	DryRunFlagName  = "dry-run"
	DryRunFlagAlias = "d"

	// App flags.

	LogLevelFlagName = "log-level"
	NoColorFlagName  = "no-color"
	HelpFlagName     = "help"
	HelpFlagAlias    = "h"
	VersionFlagName  = "version"

	// LegacyMaxDepthEnvName is the env var bounding the `--all` walk before the flag existed.
	LegacyMaxDepthEnvName = "MVNMIN_MAXDEPTHS"

	// FileNotSupportedMessage is printed when Maven's working file flag is given.
	FileNotSupportedMessage = "The options '-f' and '--file' are not supported by mvnmin, exiting."
)

// NewFlags returns the mvnmin flags assigning their values to opts.
func NewFlags(opts *options.MvnMinOptions) cli.Flags {
	return cli.Flags{
		NewHelpFlag(),
		NewVersionFlag(),
		&cli.BoolFlag{
			Name:        AllFlagName,
			Usage:       "Activate all `pom.xml` files in all sub directories.",
			Destination: &opts.AllProjects,
		},
		&cli.OptionalValueFlag{
			Name:        DiffFlagName,
			Placeholder: "[=commit[..commit]]",
			Usage:       "Activate all projects changed since the specified commit, or range of commits (default: 'master').",
			Action: func(_ *cli.Context, value string) error {
				opts.CommitRange = diff.NormalizeCommitRange(value)
				return nil
			},
		},
		&cli.SliceFlag{
			Name:        ProjectsFlagName,
			Aliases:     []string{ProjectsFlagAlias},
			Placeholder: "<arg>",
			Usage:       "Comma-delimited list of projects to build as well as those otherwise activated. Lead with `!` or `-` to deactivate.",
			Destination: &opts.Projects,
		},
		&cli.BoolFlag{
			Name:        NoBuildIfFlagName,
			Usage:       "No build-if dependencies are considered, just changed modules.",
			Destination: &opts.NoBuildIf,
		},
		&cli.GenericFlag[int]{
			Name:        MaxDepthFlagName,
			Placeholder: "<depth>",
			EnvVars:     append(EnvVars(MaxDepthFlagName), LegacyMaxDepthEnvName),
			Usage:       fmt.Sprintf("Max directory depth searched by --all (default: %d).", options.DefaultMaxDepth),
			Destination: &opts.MaxDepth,
		},
		&cli.GenericFlag[int]{
			Name:        ParallelismFlag,
			EnvVars:     EnvVars(ParallelismFlag),
			Usage:       "Number of project descriptors read in parallel.",
			Destination: &opts.Parallelism,
			Hidden:      true,
		},
		&cli.GenericFlag[string]{
			Name:        ResumeFromFlagName,
			Aliases:     []string{ResumeFromAlias},
			Placeholder: "<arg>",
			Usage:       "Resume reactor from specified project (and sub-reactor).",
			Destination: &opts.ResumeFrom,
		},
		&cli.OptionalValueFlag{
			Name:        FileFlagName,
			Aliases:     []string{FileFlagAlias},
			Placeholder: "<arg>",
			Usage:       "Not supported, mvnmin will exit.",
			Action: func(ctx *cli.Context, _ string) error {
				_, _ = fmt.Fprintln(ctx.App.Writer, FileNotSupportedMessage)
				return cli.NewExitError(nil, cli.ExitCodeGeneralError)
			},
		},
		&cli.BoolFlag{
			Name:        PrintFlagName,
			Usage:       "Don't invoke maven, print out activated projects, sorted, newline separated.",
			Destination: &opts.PrintOnly,
		},
		&cli.BoolFlag{
			Name:        DryRunFlagName,
			Aliases:     []string{DryRunFlagAlias},
			Usage:       "Don't invoke maven, print out the commands that would have been executed.",
			Destination: &opts.DryRun,
		},
		&cli.GenericFlag[string]{
			Name:        LogLevelFlagName,
			Placeholder: "<level>",
			EnvVars:     EnvVars(LogLevelFlagName),
			Usage:       "Sets the logging level: error, warn, info, debug, trace.",
			Destination: &opts.LogLevel,
		},
		&cli.BoolFlag{
			Name:        NoColorFlagName,
			EnvVars:     EnvVars(NoColorFlagName),
			Usage:       "Disables colored output.",
			Destination: &opts.NoColor,
		},
	}
}

// NewHelpFlag creates a flag for showing help.
func NewHelpFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    HelpFlagName,
		Aliases: []string{HelpFlagAlias},
		Usage:   "Show help.",
		Action: func(ctx *cli.Context, _ bool) error {
			return cli.ShowAppHelp(ctx)
		},
	}
}

// NewVersionFlag creates a flag for showing the version.
func NewVersionFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  VersionFlagName,
		Usage: "Print the version number of mvnmin and exit.",
		Action: func(ctx *cli.Context, _ bool) error {
			return cli.ShowVersion(ctx)
		},
	}
}
