package cli

// ActionFunc is the action to execute once the flags are parsed.
type ActionFunc func(ctx *Context) error

// FlagActionFunc represents function type that is called when the flag is specified.
// Executed after all flags have been parsed and assigned to their `Destination` fields.
type FlagActionFunc[T any] func(ctx *Context, value T) error

// SplitterFunc is used to parse flags containing multiple values.
type SplitterFunc func(s, sep string) []string

// LookupEnvFunc resolves an environment variable, reporting whether it is present.
type LookupEnvFunc func(key string) (string, bool)
