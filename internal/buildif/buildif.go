// Package buildif expands an activated module set with the dependents declared by build-if rules.
package buildif

import (
	"github.com/mvnmin/mvnmin/internal/module"
	"github.com/mvnmin/mvnmin/pkg/log"
)

// MaxPasses bounds the number of expansion passes. Rule chains deeper than this are under-expanded,
// cyclic rules terminate.
const MaxPasses = 4

// Rule activates Modules whenever an activated module matches Pattern.
type Rule struct {
	Pattern *module.Pattern
	Modules []string
}

// Expand returns a superset of activated holding the dependents of every matching rule.
// The input set is not modified.
func Expand(l log.Logger, activated module.Set, rules []*Rule) module.Set {
	result := activated.Clone()

	if len(rules) == 0 {
		return result
	}

	for pass := 1; pass <= MaxPasses; pass++ {
		added := module.NewSet()

		for id := range result {
			for _, rule := range rules {
				if !rule.Pattern.Matches(id) {
					continue
				}

				for _, dependent := range rule.Modules {
					if !result.Contains(dependent) {
						added.Add(dependent)
					}
				}
			}
		}

		if added.Len() == 0 {
			break
		}

		l.Debugf("Build-if pass %d activated %v", pass, added.Sorted())
		result.AddSet(added)
	}

	return result
}
