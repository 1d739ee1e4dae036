// Package reactor partitions activated modules across ordered build groups.
package reactor

import (
	"strings"

	"github.com/mvnmin/mvnmin/internal/module"
)

// PrimaryNumber is the ordinal of the catch-all reactor.
const PrimaryNumber = 0

// Definition is the static configuration of a reactor.
type Definition struct {
	// SkipIf skips the reactor when any incoming build argument matches it. Nil means never.
	SkipIf *module.Pattern

	Name string
	Pom  string

	// ExtraParams are appended to every Maven invocation of the reactor.
	ExtraParams []string

	// Patterns select the modules the reactor owns.
	Patterns []*module.Pattern

	SingleThread bool
}

// Reactor is one build group for a single run: a definition plus the modules it claimed.
type Reactor struct {
	*Definition

	claimed module.Set
	Number  int
	skip    bool
}

// New returns a reactor at ordinal number owning claimed.
func New(number int, def *Definition, claimed module.Set) *Reactor {
	return &Reactor{
		Definition: def,
		Number:     number,
		claimed:    claimed.Clone(),
	}
}

// Claimed returns the sorted module ids owned by the reactor.
func (reactor *Reactor) Claimed() []string {
	return reactor.claimed.Sorted()
}

// HasActiveModules reports whether the reactor claimed anything.
func (reactor *Reactor) HasActiveModules() bool {
	return reactor.claimed.Len() > 0
}

func (reactor *Reactor) Skip() bool {
	return reactor.skip
}

func (reactor *Reactor) SetSkip(skip bool) {
	reactor.skip = skip
}

// ShouldBuild reports whether the reactor is invoked: not skipped and owning at least one module.
func (reactor *Reactor) ShouldBuild() bool {
	return !reactor.skip && reactor.HasActiveModules()
}

// ApplySkipCondition marks the reactor skipped when any of args matches its skip-if pattern.
func (reactor *Reactor) ApplySkipCondition(args []string) bool {
	if reactor.SkipIf == nil {
		return false
	}

	for _, arg := range args {
		if reactor.SkipIf.Matches(arg) {
			reactor.skip = true
			return true
		}
	}

	return false
}

// HoldsResumePoint reports whether resumeFrom is a substring of one of the claimed ids.
// Substrings let users pass abbreviated artifact names.
func (reactor *Reactor) HoldsResumePoint(resumeFrom string) bool {
	if resumeFrom == "" {
		return false
	}

	for id := range reactor.claimed {
		if strings.Contains(id, resumeFrom) {
			return true
		}
	}

	return false
}

// Claim splits pool into the ids matching any of patterns and the rest. The pool itself is not modified.
func Claim(pool module.Set, patterns []*module.Pattern) (claimed, remaining module.Set) {
	claimed, remaining = module.NewSet(), module.NewSet()

	for id := range pool {
		if module.MatchesAny(patterns, id) {
			claimed.Add(id)
		} else {
			remaining.Add(id)
		}
	}

	return claimed, remaining
}
