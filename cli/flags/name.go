package flags

import (
	"strings"
)

// EnvPrefix is prepended to the env var names of the mvnmin flags.
const EnvPrefix = "MVNMIN"

var envVarReplacer = strings.NewReplacer("-", "_")

// EnvVar returns the env var of the flag name, e.g. `max-depth` is read from MVNMIN_MAX_DEPTH.
func EnvVar(name string) string {
	return EnvPrefix + "_" + strings.ToUpper(envVarReplacer.Replace(name))
}

// EnvVars returns the env vars of the flag names.
func EnvVars(names ...string) []string {
	envVars := make([]string, 0, len(names))

	for _, name := range names {
		envVars = append(envVars, EnvVar(name))
	}

	return envVars
}
