package cli

import (
	"slices"
	"strings"
)

// ArgsTerminator ends the flag parsing, everything after it is passed through untouched.
const ArgsTerminator = "--"

// Args are the command line arguments not taken by a defined flag, kept in their original order.
type Args []string

func (args Args) String() string {
	return strings.Join(args, " ")
}

// Len returns the number of arguments.
func (args Args) Len() int {
	return len(args)
}

// Slice returns a copy of the arguments, never nil.
func (args Args) Slice() []string {
	if args == nil {
		return []string{}
	}

	return slices.Clone(args)
}
