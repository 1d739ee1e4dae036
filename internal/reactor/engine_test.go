package reactor_test

import (
	"io"
	"testing"

	"github.com/mvnmin/mvnmin/internal/module"
	"github.com/mvnmin/mvnmin/internal/reactor"
	"github.com/mvnmin/mvnmin/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *reactor.Engine {
	return reactor.NewEngine(nil, []*reactor.Definition{
		{Name: "extensions", Pom: "extensions/pom.xml", Patterns: patterns("com\\.acme\\.ext:.*")},
		{Name: "all-acme", Pom: "acme/pom.xml", Patterns: patterns("com\\.acme.*:.*")},
		{Name: "tools", Pom: "tools/pom.xml", Patterns: patterns("org\\.tools:.*")},
	})
}

func claimedByName(reactors []*reactor.Reactor) map[string][]string {
	result := make(map[string][]string, len(reactors))
	for _, r := range reactors {
		result[r.Name] = r.Claimed()
	}

	return result
}

func TestResolve(t *testing.T) {
	t.Parallel()

	l := log.New(log.WithOutput(io.Discard))
	activated := module.NewSet("com.acme.ext:plugin", "com.acme:api", "net.other:lib")

	reactors := newEngine().Resolve(l, activated)
	require.Len(t, reactors, 4)

	assert.Equal(t, 0, reactors[0].Number)
	assert.Equal(t, reactor.PrimaryNumber, reactors[0].Number)
	assert.Equal(t, reactor.DefaultPrimaryName, reactors[0].Name)
	assert.Equal(t, []int{1, 2, 3}, []int{reactors[1].Number, reactors[2].Number, reactors[3].Number})

	assert.Equal(t, map[string][]string{
		reactor.DefaultPrimaryName: {"net.other:lib"},
		"extensions":               {"com.acme.ext:plugin"},
		"all-acme":                 {"com.acme:api"},
		"tools":                    {},
	}, claimedByName(reactors))

	assert.True(t, reactors[0].ShouldBuild())
	assert.False(t, reactors[3].Skip(), "configured reactors are not skipped for being empty")
	assert.False(t, reactors[3].ShouldBuild())
}

func TestResolveEarlierReactorWins(t *testing.T) {
	t.Parallel()

	l := log.New(log.WithOutput(io.Discard))

	reactors := newEngine().Resolve(l, module.NewSet("com.acme.ext:plugin"))

	claimed := claimedByName(reactors)
	assert.Equal(t, []string{"com.acme.ext:plugin"}, claimed["extensions"])
	assert.Empty(t, claimed["all-acme"])
}

func TestResolvePrimarySkippedWhenEmpty(t *testing.T) {
	t.Parallel()

	l := log.New(log.WithOutput(io.Discard))

	reactors := newEngine().Resolve(l, module.NewSet("org.tools:cli"))

	assert.True(t, reactors[0].Skip())
	assert.True(t, reactors[3].ShouldBuild())
}

func TestResolveNothingActivated(t *testing.T) {
	t.Parallel()

	l := log.New(log.WithOutput(io.Discard))

	for _, r := range newEngine().Resolve(l, module.NewSet()) {
		assert.False(t, r.ShouldBuild(), r.Name)
	}
}

func TestApplyResumePoint(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		resumeFrom    string
		expectedFound bool
		expectedSkips []bool
	}{
		{
			name:          "no resume point",
			expectedSkips: []bool{false, false, false, false},
		},
		{
			name:          "resume in third reactor",
			resumeFrom:    "api",
			expectedFound: true,
			expectedSkips: []bool{true, true, false, false},
		},
		{
			name:          "resume in primary",
			resumeFrom:    "net.other",
			expectedFound: true,
			expectedSkips: []bool{false, false, false, false},
		},
		{
			name:          "unknown resume point skips everything",
			resumeFrom:    "missing",
			expectedSkips: []bool{true, true, true, true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l := log.New(log.WithOutput(io.Discard))
			reactors := newEngine().Resolve(l, module.NewSet("com.acme.ext:plugin", "com.acme:api", "net.other:lib"))

			found := reactor.ApplyResumePoint(l, reactors, tc.resumeFrom)

			assert.Equal(t, tc.expectedFound, found)

			skips := make([]bool, 0, len(reactors))
			for _, r := range reactors {
				skips = append(skips, r.Skip())
			}

			assert.Equal(t, tc.expectedSkips, skips)
		})
	}
}

func TestApplySkipConditions(t *testing.T) {
	t.Parallel()

	l := log.New(log.WithOutput(io.Discard))
	engine := reactor.NewEngine(nil, []*reactor.Definition{
		{Name: "ext", Patterns: patterns(".*"), SkipIf: module.MustCompilePattern("-P!ext")},
	})

	reactors := engine.Resolve(l, module.NewSet("g:a"))
	reactor.ApplySkipConditions(l, reactors, []string{"install", "-P!ext"})

	assert.True(t, reactors[1].Skip())
	assert.False(t, reactors[1].ShouldBuild())
}

func TestMaxNameLength(t *testing.T) {
	t.Parallel()

	l := log.New(log.WithOutput(io.Discard))

	assert.Equal(t, len(reactor.DefaultPrimaryName), reactor.MaxNameLength(newEngine().Resolve(l, module.NewSet())))
	assert.Equal(t, 0, reactor.MaxNameLength(nil))
}
