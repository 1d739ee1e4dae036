package log

import (
	"github.com/mgutz/ansi"
)

type colorStyle byte

const (
	timestampStyle colorStyle = iota
	prefixStyle
)

// colorScheme holds the ansi color functions of the pretty formatter.
type colorScheme struct {
	levels map[Level]func(string) string
	styles map[colorStyle]func(string) string
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		levels: map[Level]func(string) string{
			ErrorLevel: ansi.ColorFunc("red"),
			WarnLevel:  ansi.ColorFunc("yellow"),
			InfoLevel:  ansi.ColorFunc("green"),
			DebugLevel: ansi.ColorFunc("blue+h"),
			TraceLevel: ansi.ColorFunc("white"),
		},
		styles: map[colorStyle]func(string) string{
			timestampStyle: ansi.ColorFunc("black+h"),
			prefixStyle:    ansi.ColorFunc("cyan"),
		},
	}
}

func (scheme *colorScheme) level(level Level, str string) string {
	if colorize, ok := scheme.levels[level]; ok {
		return colorize(str)
	}

	return str
}

func (scheme *colorScheme) style(style colorStyle, str string) string {
	if colorize, ok := scheme.styles[style]; ok {
		return colorize(str)
	}

	return str
}
