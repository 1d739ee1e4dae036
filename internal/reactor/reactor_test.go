package reactor_test

import (
	"testing"

	"github.com/mvnmin/mvnmin/internal/module"
	"github.com/mvnmin/mvnmin/internal/reactor"
	"github.com/stretchr/testify/assert"
)

func patterns(exprs ...string) []*module.Pattern {
	compiled := make([]*module.Pattern, 0, len(exprs))
	for _, expr := range exprs {
		compiled = append(compiled, module.MustCompilePattern(expr))
	}

	return compiled
}

func TestClaim(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name              string
		pool              []string
		patterns          []string
		expectedClaimed   []string
		expectedRemaining []string
	}{
		{
			name:              "full string match only",
			pool:              []string{"com.acme:api", "org.acme:api", "com.acme.ext:plugin"},
			patterns:          []string{"com\\.acme:.*"},
			expectedClaimed:   []string{"com.acme:api"},
			expectedRemaining: []string{"com.acme.ext:plugin", "org.acme:api"},
		},
		{
			name:              "any pattern claims",
			pool:              []string{"g:a", "g:b", "g:c"},
			patterns:          []string{"g:a", "g:c"},
			expectedClaimed:   []string{"g:a", "g:c"},
			expectedRemaining: []string{"g:b"},
		},
		{
			name:              "no patterns claim nothing",
			pool:              []string{"g:a"},
			expectedClaimed:   []string{},
			expectedRemaining: []string{"g:a"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pool := module.NewSet(tc.pool...)

			claimed, remaining := reactor.Claim(pool, patterns(tc.patterns...))

			assert.Equal(t, tc.expectedClaimed, claimed.Sorted())
			assert.Equal(t, tc.expectedRemaining, remaining.Sorted())
			assert.Equal(t, module.NewSet(tc.pool...), pool)
		})
	}
}

func TestShouldBuild(t *testing.T) {
	t.Parallel()

	def := &reactor.Definition{Name: "ext", Pom: "ext/pom.xml"}

	empty := reactor.New(1, def, module.NewSet())
	assert.False(t, empty.ShouldBuild())

	active := reactor.New(1, def, module.NewSet("g:a"))
	assert.True(t, active.ShouldBuild())

	active.SetSkip(true)
	assert.False(t, active.ShouldBuild())
}

func TestApplySkipCondition(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		skipIf   string
		args     []string
		expected bool
	}{
		{name: "no condition", args: []string{"-P!ext"}},
		{name: "matching arg", skipIf: "-P!ext", args: []string{"clean", "-P!ext"}, expected: true},
		{name: "partial arg does not match", skipIf: "-P!ext", args: []string{"-P!ext,fast"}},
		{name: "regex arg", skipIf: "-P.*!ext.*", args: []string{"-Pfast,!ext"}, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			def := &reactor.Definition{Name: "ext"}
			if tc.skipIf != "" {
				def.SkipIf = module.MustCompilePattern(tc.skipIf)
			}

			r := reactor.New(1, def, module.NewSet("g:a"))

			assert.Equal(t, tc.expected, r.ApplySkipCondition(tc.args))
			assert.Equal(t, tc.expected, r.Skip())
		})
	}
}

func TestHoldsResumePoint(t *testing.T) {
	t.Parallel()

	r := reactor.New(1, &reactor.Definition{Name: "ext"}, module.NewSet("com.acme:ext-api"))

	assert.True(t, r.HoldsResumePoint("ext-api"))
	assert.True(t, r.HoldsResumePoint("com.acme:ext-api"))
	assert.False(t, r.HoldsResumePoint("web"))
	assert.False(t, r.HoldsResumePoint(""))
}
