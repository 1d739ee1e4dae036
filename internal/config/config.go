// Package config loads the mvnmin configuration file: ignored modules, build-if rules,
// reactor definitions and the Maven command override.
package config

import (
	"path/filepath"
	"strings"

	"dario.cat/mergo"

	"github.com/mvnmin/mvnmin/internal/buildif"
	"github.com/mvnmin/mvnmin/internal/errors"
	"github.com/mvnmin/mvnmin/internal/module"
	"github.com/mvnmin/mvnmin/internal/reactor"
	"github.com/mvnmin/mvnmin/internal/util"
	"github.com/mvnmin/mvnmin/pkg/log"
)

const (
	HCLFileName  = "mvnmin.hcl"
	TOMLFileName = "mvnmin.toml"
	XMLFileName  = "mvnmin.xml"
)

// FileNames lists the configuration file names in lookup order. Changes to these files never activate modules.
var FileNames = []string{HCLFileName, TOMLFileName, XMLFileName}

// File is the decoded configuration file, before patterns are compiled.
type File struct {
	MavenCommand   string          `hcl:"maven_command,optional" toml:"maven_command"`
	IgnoredModules []string        `hcl:"ignored_modules,optional" toml:"ignored_modules"`
	BuildIfs       []*BuildIfBlock `hcl:"build_if,block" toml:"build_if"`
	Reactors       []*ReactorBlock `hcl:"reactor,block" toml:"reactor"`
}

// BuildIfBlock activates Modules whenever an activated module matches any of Match.
type BuildIfBlock struct {
	Match   []string `hcl:"match" toml:"match"`
	Modules []string `hcl:"modules" toml:"modules"`
}

// ReactorBlock declares one reactor. At most one block may be flagged primary; it overrides the
// catch-all reactor instead of adding a new one.
type ReactorBlock struct {
	Name         string   `hcl:"name,label" toml:"name"`
	Pom          string   `hcl:"pom,optional" toml:"pom"`
	ExtraParams  string   `hcl:"extra_params,optional" toml:"extra_params"`
	SkipIf       string   `hcl:"skip_if,optional" toml:"skip_if"`
	Patterns     []string `hcl:"patterns,optional" toml:"patterns"`
	Primary      bool     `hcl:"primary,optional" toml:"primary"`
	SingleThread bool     `hcl:"single_thread,optional" toml:"single_thread"`
}

// Config is the resolved configuration of a run.
type Config struct {
	Primary *reactor.Definition

	// Path is the file the configuration was loaded from, empty when none exists.
	Path string

	MavenCommand   string
	IgnoredModules []string
	BuildIfRules   []*buildif.Rule

	// Reactors are the non-primary reactors in declaration order.
	Reactors []*reactor.Definition
}

// Engine returns a reactor engine for the configured reactors.
func (cfg *Config) Engine() *reactor.Engine {
	return reactor.NewEngine(cfg.Primary, cfg.Reactors)
}

// Load reads the first configuration file found in dir. Without one it returns the defaults:
// nothing ignored, no build-if rules and only the catch-all primary reactor.
// env is exposed to HCL files through get_env().
func Load(l log.Logger, dir string, env map[string]string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if !util.FileExists(path) {
			continue
		}

		file, err := decodeFile(path, env)
		if err != nil {
			return nil, err
		}

		cfg, err := file.resolve()
		if err != nil {
			return nil, errors.New(NewDecodeError(path, err))
		}

		cfg.Path = path

		l.Debugf("Loaded configuration from %s: %d reactors, %d build-if rules, %d ignored modules",
			path, len(cfg.Reactors), len(cfg.BuildIfRules), len(cfg.IgnoredModules))

		return cfg, nil
	}

	l.Debugf("No configuration file (%v) in %s, using defaults", FileNames, dir)

	return &Config{Primary: reactor.DefaultPrimary()}, nil
}

func decodeFile(path string, env map[string]string) (*File, error) {
	switch filepath.Ext(path) {
	case ".hcl":
		return decodeHCL(path, env)
	case ".toml":
		return decodeTOML(path)
	default:
		return decodeXML(path)
	}
}

// resolve compiles every pattern and merges the primary override with its defaults.
func (file *File) resolve() (*Config, error) {
	cfg := &Config{
		MavenCommand:   file.MavenCommand,
		IgnoredModules: file.IgnoredModules,
	}

	for _, block := range file.BuildIfs {
		for _, expr := range block.Match {
			pattern, err := module.CompilePattern(expr)
			if err != nil {
				return nil, err
			}

			cfg.BuildIfRules = append(cfg.BuildIfRules, &buildif.Rule{Pattern: pattern, Modules: block.Modules})
		}
	}

	var override *ReactorBlock

	for _, block := range file.Reactors {
		if block.Primary {
			if override != nil {
				return nil, errors.Errorf("reactor %q is marked primary, but %q already is", block.Name, override.Name)
			}

			override = block

			continue
		}

		def, err := block.definition()
		if err != nil {
			return nil, err
		}

		cfg.Reactors = append(cfg.Reactors, def)
	}

	primary, err := mergePrimary(override)
	if err != nil {
		return nil, err
	}

	if cfg.Primary, err = primary.definition(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultPrimaryBlock() ReactorBlock {
	return ReactorBlock{
		Name:     reactor.DefaultPrimaryName,
		Pom:      reactor.DefaultPrimaryPom,
		Patterns: []string{reactor.CatchAllPattern},
		Primary:  true,
	}
}

// mergePrimary fills every empty field of override from the defaults. Patterns always come from the
// defaults, single_thread always from the override.
func mergePrimary(override *ReactorBlock) (*ReactorBlock, error) {
	var merged ReactorBlock

	if override != nil {
		merged = *override
	}

	merged.Patterns = nil

	if err := mergo.Merge(&merged, defaultPrimaryBlock()); err != nil {
		return nil, errors.New(err)
	}

	return &merged, nil
}

func (block *ReactorBlock) definition() (*reactor.Definition, error) {
	def := &reactor.Definition{
		Name:         block.Name,
		Pom:          block.Pom,
		ExtraParams:  strings.Fields(block.ExtraParams),
		SingleThread: block.SingleThread,
	}

	if def.Pom == "" {
		return nil, errors.Errorf("reactor %q: pom is required", block.Name)
	}

	for _, expr := range block.Patterns {
		pattern, err := module.CompilePattern(expr)
		if err != nil {
			return nil, errors.Errorf("reactor %q: %w", block.Name, err)
		}

		def.Patterns = append(def.Patterns, pattern)
	}

	if block.SkipIf != "" {
		pattern, err := module.CompilePattern(block.SkipIf)
		if err != nil {
			return nil, errors.Errorf("reactor %q: skip-if: %w", block.Name, err)
		}

		def.SkipIf = pattern
	}

	return def, nil
}
