package cli

import (
	libflag "flag"
	"strconv"
)

// OptionalValueFlag implements Flag
var _ Flag = new(OptionalValueFlag)

// OptionalValueFlag is a string flag whose value may be omitted, `--diff` or `--diff=develop`.
// Without a value the `ImplicitValue` is assigned. The value can only be given after `=`,
// a following separate argument is never consumed.
type OptionalValueFlag struct {
	value *flagValue
	// Action is a function that is called when the flag is specified. It is executed only after all flags have been parsed.
	Action FlagActionFunc[string]
	// Destination is a pointer to which the value of the flag or env var is assigned.
	Destination *string
	// ImplicitValue is assigned when the flag is given without a value.
	ImplicitValue string
	// The name of the flag.
	Name string
	// A short usage description to display in help.
	Usage string
	// Placeholder is the value name displayed in the help, like `[=commit]`.
	Placeholder string
	// Aliases are alternative names of the flag.
	Aliases []string
	// The names of the env variables that are parsed and assigned to `Destination` before the flag value.
	EnvVars []string
	// Hidden hides the flag from the help, if set to true.
	Hidden bool
}

// Apply applies Flag settings to the given flag set.
func (flag *OptionalValueFlag) Apply(set *libflag.FlagSet, lookupEnv LookupEnvFunc) error {
	if flag.Destination == nil {
		flag.Destination = new(string)
	}

	dest := flag.Destination

	flag.value = &flagValue{
		// reported as boolean so the standard flag set does not consume the next argument.
		boolFlag: true,
		setter: func(str string) error {
			// A bare flag is reported by the flag set as "true".
			if val, err := strconv.ParseBool(str); str == "" || (err == nil && val) {
				str = flag.ImplicitValue
			}

			*dest = str

			return nil
		},
		stringer: func() string { return *dest },
	}

	return applyFlag(flag, flag.value, set, lookupEnv)
}

// GetHidden returns true if the flag should be hidden from the help.
func (flag *OptionalValueFlag) GetHidden() bool {
	return flag.Hidden
}

// GetUsage returns the usage string for the flag.
func (flag *OptionalValueFlag) GetUsage() string {
	return flag.Usage
}

// GetEnvVars returns the env vars for this flag.
func (flag *OptionalValueFlag) GetEnvVars() []string {
	return flag.EnvVars
}

// TakesValue returns true so the placeholder is shown in the help.
func (flag *OptionalValueFlag) TakesValue() bool {
	return true
}

// IsSet returns true if the flag was set either by env var or CLI arg.
func (flag *OptionalValueFlag) IsSet() bool {
	return flag.value.IsSet()
}

// String returns a readable representation of this flag for the help.
func (flag *OptionalValueFlag) String() string {
	return flagHelpLine(flag, flag.Placeholder)
}

// Names returns the names of the flag.
func (flag *OptionalValueFlag) Names() []string {
	return append([]string{flag.Name}, flag.Aliases...)
}

// RunAction implements Flag.RunAction
func (flag *OptionalValueFlag) RunAction(ctx *Context) error {
	if flag.Action != nil && flag.Destination != nil {
		return flag.Action(ctx, *flag.Destination)
	}

	return nil
}
