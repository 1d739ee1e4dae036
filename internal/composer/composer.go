// Package composer turns a resolved reactor and the pass-through arguments into a Maven invocation.
package composer

import (
	"regexp"
	"strings"

	"github.com/mvnmin/mvnmin/internal/reactor"
)

const (
	debugSurefireFlag = "--debugsurefire"
	debugFailsafeFlag = "--debugfailsafe"

	remoteDebugOptions = `"-Xdebug -Xrunjdwp:transport=dt_socket,server=y,suspend=y,address=8000 -Xnoagent -Djava.compiler=NONE"`

	FileFlag         = "-f"
	ProjectsFlag     = "--projects"
	ResumeFromFlag   = "-rf"
	SingleThreadFlag = "-T1"
)

// argumentSubstitutions rewrite convenience flags in place.
var argumentSubstitutions = map[string]string{
	debugSurefireFlag: "-Dmaven.surefire.debug=" + remoteDebugOptions,
	debugFailsafeFlag: "-Dmaven.failsafe.debug=" + remoteDebugOptions,
}

// goalSubstitutions force a goal, emitted before every other argument, when the flag is present.
var goalSubstitutions = map[string]string{
	debugSurefireFlag: "test",
	debugFailsafeFlag: "test",
}

var (
	combinedThreadsRe = regexp.MustCompile(`^(?:-T.+|--threads=.*)$`)
	separateThreadsRe = regexp.MustCompile(`^(?:-T|--threads)$`)
)

// Invocation is a concrete command to run for one reactor.
type Invocation struct {
	Executable string
	Args       []string
}

// String renders the invocation as a single command line.
func (invocation *Invocation) String() string {
	return strings.Join(append([]string{invocation.Executable}, invocation.Args...), " ")
}

// Compose builds the invocation for r. args are the pass-through Maven arguments, already stripped of
// mvnmin's own flags. The arguments are not modified.
func Compose(r *reactor.Reactor, args []string, executable, resumeFrom string) *Invocation {
	var goal string

	mavenArgs := make([]string, 0, len(args)+8)

	for _, arg := range args {
		if substitute, ok := argumentSubstitutions[arg]; ok {
			mavenArgs = append(mavenArgs, substitute)
		} else {
			mavenArgs = append(mavenArgs, arg)
		}

		if forced, ok := goalSubstitutions[arg]; ok {
			goal = forced
		}
	}

	mavenArgs = append(mavenArgs, FileFlag, r.Pom)

	mavenArgs = append(mavenArgs, r.ExtraParams...)

	if r.SingleThread {
		mavenArgs = append(RemoveThreadingFlags(mavenArgs), SingleThreadFlag)
	}

	if r.HasActiveModules() {
		mavenArgs = append(mavenArgs, ProjectsFlag, strings.Join(r.Claimed(), ","))
	}

	if r.HoldsResumePoint(resumeFrom) {
		mavenArgs = append(mavenArgs, ResumeFromFlag, resumeFrom)
	}

	if goal != "" {
		mavenArgs = append([]string{goal}, mavenArgs...)
	}

	return &Invocation{
		Executable: executable,
		Args:       mavenArgs,
	}
}

// RemoveThreadingFlags drops every thread-count flag, both the combined `-T4`/`--threads=4` forms and
// the separated `-T 4`/`--threads 4` pairs.
func RemoveThreadingFlags(args []string) []string {
	result := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if combinedThreadsRe.MatchString(arg) {
			continue
		}

		if separateThreadsRe.MatchString(arg) {
			i++
			continue
		}

		result = append(result, arg)
	}

	return result
}
