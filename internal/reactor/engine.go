package reactor

import (
	"github.com/mvnmin/mvnmin/internal/module"
	"github.com/mvnmin/mvnmin/pkg/log"
)

// Default primary reactor settings.
const (
	DefaultPrimaryName = "Main reactor"
	DefaultPrimaryPom  = "pom.xml"
	CatchAllPattern    = ".*"
)

// DefaultPrimary returns the primary reactor definition used when nothing overrides it.
func DefaultPrimary() *Definition {
	return &Definition{
		Name:     DefaultPrimaryName,
		Pom:      DefaultPrimaryPom,
		Patterns: []*module.Pattern{module.MustCompilePattern(CatchAllPattern)},
	}
}

// Engine resolves an activated module set into an ordered list of reactors.
type Engine struct {
	Primary  *Definition
	Reactors []*Definition
}

// NewEngine returns an engine with the given configured reactors in priority order.
// A nil primary falls back to DefaultPrimary.
func NewEngine(primary *Definition, reactors []*Definition) *Engine {
	if primary == nil {
		primary = DefaultPrimary()
	}

	return &Engine{
		Primary:  primary,
		Reactors: reactors,
	}
}

// Resolve has each configured reactor claim its modules in declaration order, then gives the primary
// reactor whatever remains. The primary reactor comes first in the result and is skipped when it claims nothing.
func (engine *Engine) Resolve(l log.Logger, activated module.Set) []*Reactor {
	pool := activated.Clone()
	configured := make([]*Reactor, 0, len(engine.Reactors))

	for i, def := range engine.Reactors {
		var claimed module.Set

		claimed, pool = Claim(pool, def.Patterns)
		configured = append(configured, New(i+1, def, claimed))

		l.Debugf("Reactor %q claimed %v", def.Name, claimed.Sorted())
	}

	claimed, unclaimed := Claim(pool, engine.Primary.Patterns)
	if unclaimed.Len() > 0 {
		l.Debugf("Modules not claimed by any reactor: %v", unclaimed.Sorted())
	}

	primary := New(PrimaryNumber, engine.Primary, claimed)
	if !primary.HasActiveModules() {
		primary.SetSkip(true)
	}

	l.Debugf("Reactor %q claimed %v", engine.Primary.Name, claimed.Sorted())

	return append([]*Reactor{primary}, configured...)
}

// ApplySkipConditions evaluates every reactor's skip-if pattern against the incoming build arguments.
func ApplySkipConditions(l log.Logger, reactors []*Reactor, args []string) {
	for _, reactor := range reactors {
		if reactor.ApplySkipCondition(args) {
			l.Debugf("Skipping %q, arguments match %q", reactor.Name, reactor.SkipIf)
		}
	}
}

// ApplyResumePoint skips every reactor preceding the first one that claimed a module containing resumeFrom.
// When no reactor holds the resume point every reactor is skipped and false is returned.
func ApplyResumePoint(l log.Logger, reactors []*Reactor, resumeFrom string) bool {
	if resumeFrom == "" {
		return false
	}

	for i, reactor := range reactors {
		if !reactor.HoldsResumePoint(resumeFrom) {
			continue
		}

		for _, preceding := range reactors[:i] {
			l.Debugf("Skipping %q looking for resume-from module: %s", preceding.Name, resumeFrom)
			preceding.SetSkip(true)
		}

		return true
	}

	l.Warnf("Resume-from module %q is not activated in any reactor", resumeFrom)

	for _, reactor := range reactors {
		reactor.SetSkip(true)
	}

	return false
}

// MaxNameLength returns the length of the longest reactor name.
func MaxNameLength(reactors []*Reactor) int {
	var length int

	for _, reactor := range reactors {
		length = max(length, len(reactor.Name))
	}

	return length
}
