package shell_test

import (
	"testing"

	"github.com/mvnmin/mvnmin/internal/shell"
	"github.com/stretchr/testify/assert"
)

func TestChildEnv(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		env      map[string]string
		expected string
	}{
		{"unset", map[string]string{}, "-Djansi.passthrough=true"},
		{"empty", map[string]string{"MAVEN_OPTS": ""}, "-Djansi.passthrough=true"},
		{"existing", map[string]string{"MAVEN_OPTS": "-Xmx2g"}, "-Xmx2g -Djansi.passthrough=true"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			child := shell.ChildEnv(tc.env)

			assert.Equal(t, tc.expected, child["MAVEN_OPTS"])
			assert.NotEqual(t, tc.expected, tc.env["MAVEN_OPTS"], "parent env must not be modified")
		})
	}
}
