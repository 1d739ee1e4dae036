package module_test

import (
	"testing"

	"github.com/mvnmin/mvnmin/internal/module"
	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name             string
		tokens           []string
		expectedEnabled  []string
		expectedDisabled []string
	}{
		{
			name:             "empty",
			expectedEnabled:  []string{},
			expectedDisabled: []string{},
		},
		{
			name:             "enabled only",
			tokens:           []string{"g:a", "g:b", "g:a"},
			expectedEnabled:  []string{"g:a", "g:b"},
			expectedDisabled: []string{},
		},
		{
			name:             "bang and dash prefixes",
			tokens:           []string{"!g:a", "-g:b", "g:c"},
			expectedEnabled:  []string{"g:c"},
			expectedDisabled: []string{"g:a", "g:b"},
		},
		{
			name:             "disable wins in either order",
			tokens:           []string{"g:a", "!g:a", "-g:b", "g:b"},
			expectedEnabled:  []string{},
			expectedDisabled: []string{"g:a", "g:b"},
		},
		{
			name:             "blank tokens ignored",
			tokens:           []string{"", "  ", " g:a "},
			expectedEnabled:  []string{"g:a"},
			expectedDisabled: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := module.NewRequest(tc.tokens...)

			assert.Equal(t, tc.expectedEnabled, req.Enabled().Sorted())
			assert.Equal(t, tc.expectedDisabled, req.Disabled().Sorted())

			for id := range req.Enabled() {
				assert.False(t, req.Disabled().Contains(id), "%s is both enabled and disabled", id)
			}
		})
	}
}

func TestRequestViewsAreCopies(t *testing.T) {
	t.Parallel()

	req := module.NewRequest("g:a")
	req.Enabled().Add("g:b")

	assert.Equal(t, []string{"g:a"}, req.Enabled().Sorted())
}

func TestCombine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		requests []*module.Request
		expected []string
	}{
		{
			name:     "union of sources",
			requests: []*module.Request{module.NewRequest("g:x"), module.NewRequest("g:y")},
			expected: []string{"g:x", "g:y"},
		},
		{
			name:     "disable from another source wins",
			requests: []*module.Request{module.NewRequest("g:x"), module.NewRequest("!g:x")},
			expected: []string{},
		},
		{
			name:     "nil requests skipped",
			requests: []*module.Request{nil, module.NewRequestFromSet(module.NewSet("g:z"))},
			expected: []string{"g:z"},
		},
		{
			name:     "nothing",
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, module.Combine(tc.requests...).Sorted())
		})
	}
}
