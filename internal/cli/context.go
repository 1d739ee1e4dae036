package cli

import (
	"context"
)

// Context can be used to retrieve context-specific args and parsed command-line options.
type Context struct {
	context.Context
	App  *App
	args Args
}

// NewAppContext returns a Context bound to the given app.
func NewAppContext(ctx context.Context, app *App, args Args) *Context {
	return &Context{
		Context: ctx,
		App:     app,
		args:    args,
	}
}

// Args returns the command line arguments left after the defined flags were taken out.
func (ctx *Context) Args() Args {
	return ctx.args
}
