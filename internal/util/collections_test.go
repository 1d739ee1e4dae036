package util_test

import (
	"testing"

	"github.com/mvnmin/mvnmin/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestRemoveDuplicates(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		list     []string
		expected []string
	}{
		{nil, []string{}},
		{[]string{"foo"}, []string{"foo"}},
		{[]string{"foo", "bar", "foo"}, []string{"bar", "foo"}},
		{[]string{"b/pom.xml", "a/pom.xml", "b/pom.xml"}, []string{"a/pom.xml", "b/pom.xml"}},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, util.RemoveDuplicates(tc.list))
	}
}
