// Package env reads settings from a snapshot of the process environment.
package env

import (
	"strconv"
	"strings"
)

// Env is a snapshot of environment variables.
type Env map[string]string

// ParseEnvs converts the `KEY=value` pairs of `os.Environ()` into a map.
// Entries without `=` are dropped, keys are trimmed, values are kept as is.
func ParseEnvs(envs []string) map[string]string {
	parsed := make(map[string]string, len(envs))

	for _, env := range envs {
		key, val, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		parsed[strings.TrimSpace(key)] = val
	}

	return parsed
}

// Lookup returns the trimmed value of key, reporting whether it is present and not blank.
func (env Env) Lookup(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	val, ok := env[key]
	val = strings.TrimSpace(val)

	return val, ok && val != ""
}

// GetBool returns the value converted to boolean type, or the fallback value if the variable is not present
// or not a boolean.
func (env Env) GetBool(key string, fallback bool) bool {
	if strVal, ok := env.Lookup(key); ok {
		if val, err := strconv.ParseBool(strVal); err == nil {
			return val
		}
	}

	return fallback
}

// GetString returns the value of key, or the fallback value if the variable is not present.
func (env Env) GetString(key string, fallback string) string {
	if val, ok := env.Lookup(key); ok {
		return val
	}

	return fallback
}
