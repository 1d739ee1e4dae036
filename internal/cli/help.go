package cli

import (
	"github.com/mvnmin/mvnmin/internal/errors"
	"github.com/urfave/cli/v2"
)

var (
	// AppHelpTemplate renders `--help` unless the app sets CustomAppHelpTemplate.
	AppHelpTemplate = "" //nolint:gochecknoglobals

	// AppVersionTemplate renders `--version` unless the app sets CustomAppVersionTemplate.
	AppVersionTemplate = "{{.App.Name}} {{.App.Version}}\n" //nolint:gochecknoglobals
)

// ShowAppHelp prints the app help and exits with code 0.
func ShowAppHelp(ctx *Context) error {
	tpl := firstTemplate(ctx.App.CustomAppHelpTemplate, AppHelpTemplate)
	if tpl == "" {
		return errors.Errorf("app help template not defined")
	}

	return printTemplate(ctx, tpl)
}

// ShowVersion prints the app version and exits with code 0.
func ShowVersion(ctx *Context) error {
	return printTemplate(ctx, firstTemplate(ctx.App.CustomAppVersionTemplate, AppVersionTemplate))
}

func printTemplate(ctx *Context, tpl string) error {
	if ctx.App.HelpName == "" {
		ctx.App.HelpName = ctx.App.Name
	}

	cli.HelpPrinterCustom(ctx.App.Writer, tpl, ctx, nil)

	return NewExitError(nil, ExitCodeSuccess)
}

func firstTemplate(templates ...string) string {
	for _, tpl := range templates {
		if tpl != "" {
			return tpl
		}
	}

	return ""
}
