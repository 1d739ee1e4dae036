package module

import (
	"github.com/dlclark/regexp2"

	"github.com/mvnmin/mvnmin/internal/errors"
)

// Pattern is a backtracking regular expression that must match a whole string.
// Lookarounds and backreferences are supported.
type Pattern struct {
	re   *regexp2.Regexp
	expr string
}

// CompilePattern compiles expr so that it only matches complete strings.
func CompilePattern(expr string) (*Pattern, error) {
	re, err := regexp2.Compile(`\A(?:`+expr+`)\z`, regexp2.None)
	if err != nil {
		return nil, errors.Errorf("invalid pattern %q: %w", expr, err)
	}

	return &Pattern{re: re, expr: expr}, nil
}

// MustCompilePattern is like CompilePattern but panics if the expression cannot be parsed.
func MustCompilePattern(expr string) *Pattern {
	pattern, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}

	return pattern
}

// Matches reports whether the whole of s matches the pattern.
func (pattern *Pattern) Matches(s string) bool {
	matched, err := pattern.re.MatchString(s)

	return err == nil && matched
}

// MatchesAny reports whether s fully matches at least one of patterns.
func MatchesAny(patterns []*Pattern, s string) bool {
	for _, pattern := range patterns {
		if pattern.Matches(s) {
			return true
		}
	}

	return false
}

// String returns the expression as written.
func (pattern *Pattern) String() string {
	return pattern.expr
}
