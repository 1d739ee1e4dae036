package runner

import (
	"bufio"
	"io"

	"github.com/mvnmin/mvnmin/internal/buildif"
	"github.com/mvnmin/mvnmin/internal/config"
	"github.com/mvnmin/mvnmin/internal/errors"
	"github.com/mvnmin/mvnmin/internal/module"
	"github.com/mvnmin/mvnmin/pkg/log"
)

// ReadRequest reads one module token per line.
func ReadRequest(reader io.Reader) (*module.Request, error) {
	var tokens []string

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Errorf("failed to read projects from stdin: %w", err)
	}

	return module.NewRequest(tokens...), nil
}

// Activate computes the activated modules: the union of the enabled ids minus the disabled ones,
// expanded by the build-if rules unless expandBuildIfs is false, then stripped of the ignored modules.
// Disabled ids stay out even when a build-if rule would add them back.
func Activate(l log.Logger, cfg *config.Config, expandBuildIfs bool, reqs ...*module.Request) module.Set {
	activated := module.Combine(reqs...)

	if expandBuildIfs {
		activated = buildif.Expand(l, activated, cfg.BuildIfRules)
	}

	for _, req := range reqs {
		if req != nil {
			activated.RemoveSet(req.Disabled())
		}
	}

	activated.Remove(cfg.IgnoredModules...)

	l.Debugf("Modules to build: %v", activated.Sorted())

	return activated
}
