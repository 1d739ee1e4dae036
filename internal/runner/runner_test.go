package runner_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/mvnmin/mvnmin/internal/composer"
	"github.com/mvnmin/mvnmin/internal/config"
	"github.com/mvnmin/mvnmin/internal/module"
	"github.com/mvnmin/mvnmin/internal/report"
	"github.com/mvnmin/mvnmin/internal/runner"
	"github.com/mvnmin/mvnmin/internal/shell"
	"github.com/mvnmin/mvnmin/options"
	"github.com/mvnmin/mvnmin/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
ignored_modules = ["com.acme:broken"]

build_if {
  match   = ["com\\.acme:api"]
  modules = ["com.acme:it"]
}

reactor "extensions" {
  pom      = "extensions/pom.xml"
  patterns = ["com\\.acme\\.ext:.*"]
}
`

// fakeLocator reports every changed path as the id of its project.
type fakeLocator struct {
	dirty []string
	diffs map[string][]string
	all   []string
}

func (locator *fakeLocator) DirtyPaths(context.Context, log.Logger) ([]string, error) {
	return locator.dirty, nil
}

func (locator *fakeLocator) DiffRange(_ context.Context, _ log.Logger, commitRange string) ([]string, error) {
	return locator.diffs[commitRange], nil
}

func (locator *fakeLocator) AllProjects(context.Context, log.Logger, int) ([]string, error) {
	return locator.all, nil
}

func (locator *fakeLocator) ResolveProjectIDs(_ context.Context, _ log.Logger, paths []string) (module.Set, error) {
	ids := module.NewSet()

	ids.Add(paths...)

	return ids, nil
}

// fakeMaven records the invocations and fails the ones whose pom is listed in exitCodes.
type fakeMaven struct {
	err         error
	exitCodes   map[string]int
	invocations []string
}

func (maven *fakeMaven) Run(_ context.Context, _ log.Logger, invocation *composer.Invocation) (int, error) {
	maven.invocations = append(maven.invocations, invocation.String())

	if maven.err != nil {
		return 1, maven.err
	}

	pom := invocation.Args[slices.Index(invocation.Args, composer.FileFlag)+1]

	return maven.exitCodes[pom], nil
}

type testRun struct {
	opts    *options.MvnMinOptions
	locator *fakeLocator
	maven   *fakeMaven
	out     *bytes.Buffer
}

func newTestRun(t *testing.T, dirty ...string) *testRun {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.HCLFileName), []byte(testConfig), 0644))

	out := new(bytes.Buffer)

	opts := options.NewMvnMinOptionsWithWriters(out, io.Discard)
	opts.WorkingDir = dir
	opts.Reader = strings.NewReader("")
	opts.MavenArgs = []string{"install"}

	return &testRun{
		opts:    opts,
		locator: &fakeLocator{dirty: dirty},
		maven:   &fakeMaven{exitCodes: map[string]int{}},
		out:     out,
	}
}

func (run *testRun) run(t *testing.T) int {
	t.Helper()

	l := log.New(log.WithOutput(io.Discard))

	exitCode, err := runner.New(run.opts, run.locator, run.maven).Run(t.Context(), l)
	require.NoError(t, err)

	return exitCode
}

func TestRunBuildsReactorsInOrder(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, "com.acme:core", "com.acme.ext:a", "com.acme:broken")

	assert.Equal(t, 0, run.run(t))
	assert.Equal(t, []string{
		"mvn install -f pom.xml --projects com.acme:core",
		"mvn install -f extensions/pom.xml --projects com.acme.ext:a",
	}, run.maven.invocations)

	assert.Equal(t, "\n"+
		"RUN  0 Main reactor : mvn install -f pom.xml --projects com.acme:core\n\n"+
		"RUN  1 extensions   : mvn install -f extensions/pom.xml --projects com.acme.ext:a\n\n", run.out.String())
}

func TestRunPrintOnly(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, "com.acme:api", "com.acme.ext:a")
	run.opts.PrintOnly = true

	assert.Equal(t, 0, run.run(t))
	assert.Equal(t, "com.acme.ext:a\ncom.acme:api\ncom.acme:it\n", run.out.String())
	assert.Empty(t, run.maven.invocations)
}

func TestRunRequests(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		stdin     string
		projects  []string
		dirty     []string
		expected  string
		noBuildIf bool
	}{
		{
			name:     "stdin and args are added",
			stdin:    "com.acme:web\n\ncom.acme:cli\n",
			projects: []string{"com.acme:lib"},
			dirty:    []string{"com.acme:core"},
			expected: "com.acme:cli\ncom.acme:core\ncom.acme:lib\ncom.acme:web\n",
		},
		{
			name:     "disabled projects win over build-ifs",
			projects: []string{"!com.acme:it"},
			dirty:    []string{"com.acme:api"},
			expected: "com.acme:api\n",
		},
		{
			name:     "disabled from stdin",
			stdin:    "-com.acme:core\n",
			dirty:    []string{"com.acme:core", "com.acme:web"},
			expected: "com.acme:web\n",
		},
		{
			name:      "no build-ifs",
			dirty:     []string{"com.acme:api"},
			noBuildIf: true,
			expected:  "com.acme:api\n",
		},
		{
			name:     "configuration files are not changes",
			dirty:    []string{"mvnmin.hcl", "com.acme:core"},
			expected: "com.acme:core\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			run := newTestRun(t, tc.dirty...)
			run.opts.PrintOnly = true
			run.opts.NoBuildIf = tc.noBuildIf
			run.opts.Projects = tc.projects
			run.opts.Reader = strings.NewReader(tc.stdin)

			assert.Equal(t, 0, run.run(t))
			assert.Equal(t, tc.expected, run.out.String())
		})
	}
}

func TestRunStdinIgnoredOnTerminal(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, "com.acme:core")
	run.opts.PrintOnly = true
	run.opts.StdinIsTerminal = true
	run.opts.Reader = strings.NewReader("com.acme:web\n")

	assert.Equal(t, 0, run.run(t))
	assert.Equal(t, "com.acme:core\n", run.out.String())
}

func TestRunCommitRange(t *testing.T) {
	t.Parallel()

	run := newTestRun(t)
	run.locator.diffs = map[string][]string{"develop..": {"com.acme:web"}}
	run.opts.PrintOnly = true
	run.opts.CommitRange = "develop.."

	assert.Equal(t, 0, run.run(t))
	assert.Equal(t, "com.acme:web\n", run.out.String())
}

func TestRunAllProjectsIgnoresDirtyFiles(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, "com.acme:core")
	run.locator.all = []string{"com.acme:web"}
	run.opts.PrintOnly = true
	run.opts.AllProjects = true

	assert.Equal(t, 0, run.run(t))
	assert.Equal(t, "com.acme:web\n", run.out.String())
}

func TestRunNothingActivated(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		expected string
		terminal bool
	}{
		{name: "piped", expected: ""},
		{name: "terminal", terminal: true, expected: runner.NoModulesMessage + "\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			run := newTestRun(t, "com.acme:broken")
			run.opts.StdoutIsTerminal = tc.terminal

			assert.Equal(t, 1, run.run(t))
			assert.Equal(t, tc.expected, run.out.String())
			assert.Empty(t, run.maven.invocations)
		})
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, "com.acme:core", "com.acme.ext:a")
	run.maven.exitCodes["pom.xml"] = 2

	assert.Equal(t, 2, run.run(t))
	assert.Equal(t, []string{"mvn install -f pom.xml --projects com.acme:core"}, run.maven.invocations)
	assert.Contains(t, run.out.String(), report.MavenFailedMessage)
	assert.NotContains(t, run.out.String(), "extensions")
}

func TestRunLastReactorFailure(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, "com.acme:core", "com.acme.ext:a")
	run.maven.exitCodes["extensions/pom.xml"] = 3

	assert.Equal(t, 3, run.run(t))
	assert.Len(t, run.maven.invocations, 2)
	assert.NotContains(t, run.out.String(), report.MavenFailedMessage)
}

func TestRunDryRun(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, "com.acme:core", "com.acme.ext:a")
	run.opts.DryRun = true

	assert.Equal(t, 0, run.run(t))
	assert.Empty(t, run.maven.invocations)
	assert.Contains(t, run.out.String(), "RUN  1 extensions   : mvn install -f extensions/pom.xml --projects com.acme.ext:a")
}

func TestRunSkipsPrimaryWithoutModules(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, "com.acme.ext:a")

	assert.Equal(t, 0, run.run(t))
	assert.Equal(t, []string{"mvn install -f extensions/pom.xml --projects com.acme.ext:a"}, run.maven.invocations)
	assert.Contains(t, run.out.String(), "SKIP 0 Main reactor : mvn install -f pom.xml\n")
}

func TestRunLogsSkippedReactors(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, "com.acme.ext:a")

	logs := new(bytes.Buffer)
	l := log.New(log.WithOutput(logs), log.WithLevel(log.DebugLevel))

	exitCode, err := runner.New(run.opts, run.locator, run.maven).Run(t.Context(), l)
	require.NoError(t, err)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, logs.String(), "Reactor skipped")
	assert.Len(t, run.maven.invocations, 1)
}

func TestRunResumeFrom(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, "com.acme:core", "com.acme.ext:a")
	run.opts.ResumeFrom = "ext:a"

	assert.Equal(t, 0, run.run(t))
	assert.Equal(t, []string{"mvn install -f extensions/pom.xml --projects com.acme.ext:a -rf ext:a"}, run.maven.invocations)
}

func TestRunExecutableNotFound(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, "com.acme:core", "com.acme.ext:a")
	run.opts.Env = map[string]string{composer.MvnCommandEnvName: "mvn-missing"}
	run.maven.err = &shell.ExecutableNotFoundError{Executable: "mvn-missing", Err: os.ErrNotExist}

	assert.Equal(t, 1, run.run(t))
	assert.Len(t, run.maven.invocations, 1)
	assert.Contains(t, run.out.String(), "Failed to execute 'mvn-missing', either it couldn't be found, or it isn't executable.")
	assert.Contains(t, run.out.String(), report.MavenFailedMessage)
}

func TestRunInvalidConfig(t *testing.T) {
	t.Parallel()

	run := newTestRun(t, "com.acme:core")
	require.NoError(t, os.WriteFile(filepath.Join(run.opts.WorkingDir, config.HCLFileName), []byte(`reactor {`), 0644))

	l := log.New(log.WithOutput(io.Discard))

	_, err := runner.New(run.opts, run.locator, run.maven).Run(t.Context(), l)
	require.Error(t, err)
	assert.Empty(t, run.maven.invocations)
}
