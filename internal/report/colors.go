package report

import (
	"github.com/mgutz/ansi"
)

// Colorizer is a colorizer for the reactor summary output.
type Colorizer struct {
	runColorizer     func(string) string
	skipColorizer    func(string) string
	failureColorizer func(string) string
	nameColorizer    func(string) string
}

// NewColorizer creates a new Colorizer. Without color every colorizer returns its input.
func NewColorizer(shouldColor bool) *Colorizer {
	if !shouldColor {
		plain := func(s string) string { return s }

		return &Colorizer{
			runColorizer:     plain,
			skipColorizer:    plain,
			failureColorizer: plain,
			nameColorizer:    plain,
		}
	}

	return &Colorizer{
		runColorizer:     ansi.ColorFunc("green+bh"),
		skipColorizer:    ansi.ColorFunc("yellow+bh"),
		failureColorizer: ansi.ColorFunc("red+bh"),
		nameColorizer:    ansi.ColorFunc("white+bh"),
	}
}

func (c *Colorizer) colorizeAction(run bool, action string) string {
	if run {
		return c.runColorizer(action)
	}

	return c.skipColorizer(action)
}
