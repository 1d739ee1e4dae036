package cli

import (
	libflag "flag"
	"strings"
)

// SliceFlag implements Flag
var _ Flag = new(SliceFlag)

// SliceFlagValueSep is the default separator of the values within a single flag or env var.
const SliceFlagValueSep = ","

// SliceFlag is a string flag that may be given multiple times, each value split by `ValueSep`.
type SliceFlag struct {
	value *flagValue
	// Action is a function that is called when the flag is specified. It is executed only after all flags have been parsed.
	Action FlagActionFunc[[]string]
	// Destination is a pointer to which the values of the flag or env var are appended.
	Destination *[]string
	// Splitter splits a single value into multiple ones, defaults to `FlagSplitter`.
	Splitter SplitterFunc
	// Name is the name of the flag.
	Name string
	// Usage is a short usage description to display in help.
	Usage string
	// Placeholder is the value name displayed in the help, like `<arg>`.
	Placeholder string
	// ValueSep is the separator used to split the values.
	ValueSep string
	// Aliases are usually used for the short flag name, like `-pl`.
	Aliases []string
	// EnvVars are the names of the env variables that are parsed and assigned to `Destination` before the flag value.
	EnvVars []string
	// Hidden hides the flag from the help.
	Hidden bool
}

// Apply applies Flag settings to the given flag set.
func (flag *SliceFlag) Apply(set *libflag.FlagSet, lookupEnv LookupEnvFunc) error {
	if flag.Destination == nil {
		flag.Destination = new([]string)
	}

	if flag.Splitter == nil {
		flag.Splitter = FlagSplitter
	}

	if flag.ValueSep == "" {
		flag.ValueSep = SliceFlagValueSep
	}

	dest := flag.Destination

	flag.value = &flagValue{
		multiples: true,
		setter: func(str string) error {
			for _, val := range flag.Splitter(str, flag.ValueSep) {
				if val = strings.TrimSpace(val); val != "" {
					*dest = append(*dest, val)
				}
			}

			return nil
		},
		stringer: func() string { return strings.Join(*dest, flag.ValueSep) },
		reset:    func() { *dest = []string{} },
	}

	return applyFlag(flag, flag.value, set, lookupEnv)
}

// GetHidden returns true if the flag should be hidden from the help.
func (flag *SliceFlag) GetHidden() bool {
	return flag.Hidden
}

// GetUsage returns the usage string for the flag.
func (flag *SliceFlag) GetUsage() string {
	return flag.Usage
}

// GetEnvVars implements `cli.Flag` interface.
func (flag *SliceFlag) GetEnvVars() []string {
	return flag.EnvVars
}

// TakesValue returns true, the flag must be given a value.
func (flag *SliceFlag) TakesValue() bool {
	return true
}

// IsSet returns true if the flag was set either by env var or CLI arg.
func (flag *SliceFlag) IsSet() bool {
	return flag.value.IsSet()
}

// String returns a readable representation of this flag for the help.
func (flag *SliceFlag) String() string {
	return flagHelpLine(flag, flag.Placeholder)
}

// Names returns the names of the flag.
func (flag *SliceFlag) Names() []string {
	if flag.Name == "" {
		return flag.Aliases
	}

	return append([]string{flag.Name}, flag.Aliases...)
}

// RunAction implements Flag.RunAction
func (flag *SliceFlag) RunAction(ctx *Context) error {
	if flag.Action != nil && flag.Destination != nil {
		return flag.Action(ctx, *flag.Destination)
	}

	return nil
}
