package composer

import (
	"path/filepath"

	"github.com/mvnmin/mvnmin/internal/util"
	"github.com/mvnmin/mvnmin/pkg/env"
)

const (
	// MvnCommandEnvName overrides every other executable setting.
	MvnCommandEnvName = "MVN_COMMAND"

	DefaultExecutable = "mvn"
	WrapperScript     = "mvnw"
)

// ResolveExecutable picks the Maven executable. The MVN_COMMAND environment variable wins over the
// configured command, which wins over an executable Maven wrapper in workingDir, which wins over plain `mvn`.
func ResolveExecutable(vars map[string]string, configured, workingDir string) string {
	if cmd := env.Env(vars).GetString(MvnCommandEnvName, configured); cmd != "" {
		return cmd
	}

	if util.IsExecutableFile(filepath.Join(workingDir, WrapperScript)) {
		return "./" + WrapperScript
	}

	return DefaultExecutable
}
