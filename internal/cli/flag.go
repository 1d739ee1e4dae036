package cli

import (
	libflag "flag"
	"fmt"
	"strings"

	"github.com/mvnmin/mvnmin/internal/errors"
)

// FlagSplitter uses to separate arguments and env vars with multiple values.
var FlagSplitter = strings.Split //nolint:gochecknoglobals

// Flag is the interface implemented by every flag the App can parse.
type Flag interface {
	fmt.Stringer

	// Names returns the name and the aliases of the flag.
	Names() []string

	// GetUsage returns the usage string for the flag.
	GetUsage() string

	// GetEnvVars returns the env vars for this flag.
	GetEnvVars() []string

	// GetHidden returns true if the flag is hidden from the help.
	GetHidden() bool

	// TakesValue returns true if the flag needs to be given a value.
	TakesValue() bool

	// IsSet returns true if the flag was set either by env var or CLI arg.
	IsSet() bool

	// Apply assigns the env var values and registers the flag names in the given flag set.
	Apply(set *libflag.FlagSet, lookupEnv LookupEnvFunc) error

	// RunAction runs the flag action.
	RunAction(ctx *Context) error
}

// flagValue adapts a typed destination to the `flag.Value` interface and tracks where its value came from.
type flagValue struct {
	setter    func(str string) error
	stringer  func() string
	reset     func()
	boolFlag  bool
	argSet    bool
	envSet    bool
	multiples bool
}

// Set implements `flag.Value` interface.
// The first CLI assignment replaces any value previously taken from an env var.
func (val *flagValue) Set(str string) error {
	if !val.argSet && val.reset != nil {
		val.reset()
	}

	val.argSet = true

	return val.setter(str)
}

func (val *flagValue) envSetValue(str string) error {
	val.envSet = true

	return val.setter(str)
}

// String implements `flag.Value` interface.
func (val *flagValue) String() string {
	if val == nil || val.stringer == nil {
		return ""
	}

	return val.stringer()
}

// IsBoolFlag is checked by the standard flag set to allow the flag without a value.
func (val *flagValue) IsBoolFlag() bool {
	return val.boolFlag
}

// IsSet returns true if the flag was set either by env var or CLI arg.
func (val *flagValue) IsSet() bool {
	return val != nil && (val.argSet || val.envSet)
}

// applyFlag reads the env vars of the flag, first non-empty wins unless the flag accepts multiple values,
// and registers every flag name in the given set.
func applyFlag(flag Flag, val *flagValue, set *libflag.FlagSet, lookupEnv LookupEnvFunc) error {
	if lookupEnv != nil {
		for _, name := range flag.GetEnvVars() {
			str, ok := lookupEnv(name)
			if !ok || str == "" || (val.envSet && !val.multiples) {
				continue
			}

			if err := val.envSetValue(str); err != nil {
				return errors.Errorf("invalid value %q for env var %s: %w", str, name, err)
			}
		}
	}

	for _, name := range flag.Names() {
		if name != "" {
			set.Var(val, name, flag.GetUsage())
		}
	}

	return nil
}

// flagHelpLine renders the names, the value placeholder and env vars of a flag for the help output.
func flagHelpLine(flag Flag, placeholder string) string {
	names := make([]string, 0, len(flag.Names()))

	for _, name := range flag.Names() {
		if name == "" {
			continue
		}

		if len(name) > 2 { //nolint:mnd
			names = append(names, "--"+name)
		} else {
			names = append(names, "-"+name)
		}
	}

	line := strings.Join(names, ", ")
	switch {
	case !flag.TakesValue() || placeholder == "":
	case strings.HasPrefix(placeholder, "["):
		line += placeholder
	default:
		line += " " + placeholder
	}

	line = fmt.Sprintf("%-30s %s", line, flag.GetUsage())

	if envVars := flag.GetEnvVars(); len(envVars) > 0 {
		line += " [$" + strings.Join(envVars, ", $") + "]"
	}

	return line
}
