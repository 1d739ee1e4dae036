package cli

import (
	libflag "flag"
	"strconv"
)

// BoolFlag implements Flag
var _ Flag = new(BoolFlag)

type BoolFlag struct {
	value *flagValue
	// Action is a function that is called when the flag is specified. It is executed only after all flags have been parsed.
	Action FlagActionFunc[bool]
	// Destination is a pointer to which the value of the flag or env var is assigned.
	Destination *bool
	// The name of the flag.
	Name string
	// A short usage description to display in help.
	Usage string
	// Aliases are usually used for the short flag name, like `-h`.
	Aliases []string
	// The names of the env variables that are parsed and assigned to `Destination` before the flag value.
	EnvVars []string
	// Hidden hides the flag from the help, if set to true.
	Hidden bool
}

// Apply applies Flag settings to the given flag set.
func (flag *BoolFlag) Apply(set *libflag.FlagSet, lookupEnv LookupEnvFunc) error {
	if flag.Destination == nil {
		flag.Destination = new(bool)
	}

	dest := flag.Destination

	flag.value = &flagValue{
		boolFlag: true,
		setter: func(str string) error {
			val, err := strconv.ParseBool(str)
			if err != nil {
				return InvalidValueError{underlyingError: err, msg: "must be one of: `0`, `1`, `f`, `t`, `false`, `true`"}
			}

			*dest = val

			return nil
		},
		stringer: func() string { return strconv.FormatBool(*dest) },
	}

	return applyFlag(flag, flag.value, set, lookupEnv)
}

// GetHidden returns true if the flag should be hidden from the help.
func (flag *BoolFlag) GetHidden() bool {
	return flag.Hidden
}

// GetUsage returns the usage string for the flag.
func (flag *BoolFlag) GetUsage() string {
	return flag.Usage
}

// GetEnvVars returns the env vars for this flag.
func (flag *BoolFlag) GetEnvVars() []string {
	return flag.EnvVars
}

// TakesValue returns false, boolean flags are specified without a value.
func (flag *BoolFlag) TakesValue() bool {
	return false
}

// IsSet returns true if the flag was set either by env var or CLI arg.
func (flag *BoolFlag) IsSet() bool {
	return flag.value.IsSet()
}

// String returns a readable representation of this flag for the help.
func (flag *BoolFlag) String() string {
	return flagHelpLine(flag, "")
}

// Names returns the names of the flag.
func (flag *BoolFlag) Names() []string {
	return append([]string{flag.Name}, flag.Aliases...)
}

// RunAction implements Flag.RunAction
func (flag *BoolFlag) RunAction(ctx *Context) error {
	if flag.Action != nil && flag.Destination != nil {
		return flag.Action(ctx, *flag.Destination)
	}

	return nil
}
