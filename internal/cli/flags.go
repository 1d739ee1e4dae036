package cli

import (
	libflag "flag"
	"io"
	"strings"

	"github.com/gruntwork-io/go-commons/collections"
)

type Flags []Flag

// NewFlagSet returns a silent flag set holding all the flags, the env var values are applied on the way.
func (flags Flags) NewFlagSet(name string, lookupEnv LookupEnvFunc) (*libflag.FlagSet, error) {
	flagSet := libflag.NewFlagSet(name, libflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	for _, flag := range flags {
		if err := flag.Apply(flagSet, lookupEnv); err != nil {
			return nil, err
		}
	}

	return flagSet, nil
}

// Parse assigns the defined flags found in `args` and returns the rest of the args in their original order.
// Undefined flags, positional args and everything after `--` are kept as args instead of failing the parsing.
func (flags Flags) Parse(args Args, lookupEnv LookupEnvFunc) (Args, error) {
	flagSet, err := flags.NewFlagSet("", lookupEnv)
	if err != nil {
		return nil, err
	}

	undefArgs := Args{}

	for len(args) > 0 {
		err := flagSet.Parse(args)
		rest := flagSet.Args()
		consumed := len(args) - len(rest)

		if err != nil {
			if !strings.HasPrefix(err.Error(), ErrMsgFlagUndefined) {
				return nil, err
			}

			// the flag set drops the undefined arg before it fails.
			undefArgs = append(undefArgs, args[consumed-1])
			args = rest

			continue
		}

		if len(rest) == 0 {
			break
		}

		if consumed > 0 && args[consumed-1] == ArgsTerminator {
			undefArgs = append(undefArgs, ArgsTerminator)
			undefArgs = append(undefArgs, rest...)

			break
		}

		undefArgs = append(undefArgs, rest[0])
		args = rest[1:]
	}

	return undefArgs, nil
}

// Get returns a Flag by the given name.
func (flags Flags) Get(name string) Flag {
	for _, flag := range flags {
		if collections.ListContainsElement(flag.Names(), name) {
			return flag
		}
	}

	return nil
}

// VisibleFlags returns a slice of the Flags not hidden from the help.
func (flags Flags) VisibleFlags() Flags {
	var visibleFlags = make(Flags, 0, len(flags))

	for _, flag := range flags {
		if !flag.GetHidden() && len(flag.Names()) > 0 {
			visibleFlags = append(visibleFlags, flag)
		}
	}

	return visibleFlags
}

// RunActions runs the actions of the flags that have been set, in the order the flags are defined.
// A non-nil error stops the run.
func (flags Flags) RunActions(ctx *Context) error {
	for _, flag := range flags {
		if flag.IsSet() {
			if err := flag.RunAction(ctx); err != nil {
				return err
			}
		}
	}

	return nil
}
