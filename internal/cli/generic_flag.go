package cli

import (
	libflag "flag"
	"fmt"
	"strconv"
)

// GenericFlag implements Flag
var _ Flag = new(GenericFlag[string])

// GenericType is the set of value types a GenericFlag can hold.
type GenericType interface {
	string | int
}

// GenericFlag is a single value flag.
type GenericFlag[T GenericType] struct {
	value *flagValue
	// Action is a function that is called when the flag is specified. It is executed only after all flags have been parsed.
	Action FlagActionFunc[T]
	// Destination is a pointer to which the value of the flag or env var is assigned.
	// It also uses as the default value displayed in the help.
	Destination *T
	// The name of the flag.
	Name string
	// A short usage description to display in help.
	Usage string
	// Placeholder is the value name displayed in the help, like `<arg>`.
	Placeholder string
	// Aliases are usually used for the short flag name, like `-pl`.
	Aliases []string
	// The names of the env variables that are parsed and assigned to `Destination` before the flag value.
	EnvVars []string
	// Hidden hides the flag from the help, if set to true.
	Hidden bool
}

// Apply applies Flag settings to the given flag set.
func (flag *GenericFlag[T]) Apply(set *libflag.FlagSet, lookupEnv LookupEnvFunc) error {
	if flag.Destination == nil {
		flag.Destination = new(T)
	}

	dest := flag.Destination

	flag.value = &flagValue{
		setter: func(str string) error {
			val, err := parseGeneric[T](str)
			if err != nil {
				return err
			}

			*dest = val

			return nil
		},
		stringer: func() string { return fmt.Sprint(*dest) },
	}

	return applyFlag(flag, flag.value, set, lookupEnv)
}

// GetHidden returns true if the flag should be hidden from the help.
func (flag *GenericFlag[T]) GetHidden() bool {
	return flag.Hidden
}

// GetUsage returns the usage string for the flag.
func (flag *GenericFlag[T]) GetUsage() string {
	return flag.Usage
}

// GetEnvVars returns the env vars for this flag.
func (flag *GenericFlag[T]) GetEnvVars() []string {
	return flag.EnvVars
}

// TakesValue returns true, the flag must be given a value.
func (flag *GenericFlag[T]) TakesValue() bool {
	return true
}

// IsSet returns true if the flag was set either by env var or CLI arg.
func (flag *GenericFlag[T]) IsSet() bool {
	return flag.value.IsSet()
}

// String returns a readable representation of this flag for the help.
func (flag *GenericFlag[T]) String() string {
	return flagHelpLine(flag, flag.Placeholder)
}

// Names returns the names of the flag.
func (flag *GenericFlag[T]) Names() []string {
	return append([]string{flag.Name}, flag.Aliases...)
}

// RunAction implements Flag.RunAction
func (flag *GenericFlag[T]) RunAction(ctx *Context) error {
	if flag.Action != nil && flag.Destination != nil {
		return flag.Action(ctx, *flag.Destination)
	}

	return nil
}

func parseGeneric[T GenericType](str string) (T, error) {
	var val T

	switch dest := any(&val).(type) {
	case *string:
		*dest = str
	case *int:
		num, err := strconv.Atoi(str)
		if err != nil {
			return val, InvalidValueError{underlyingError: err, msg: "must be an integer"}
		}

		*dest = num
	}

	return val, nil
}
