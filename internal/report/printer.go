// Package report prints what mvnmin does for each reactor.
package report

import (
	"fmt"
	"io"

	"github.com/mvnmin/mvnmin/internal/composer"
	"github.com/mvnmin/mvnmin/internal/reactor"
)

const (
	actionRun  = "RUN"
	actionSkip = "SKIP"

	MavenFailedMessage = "mvnmin: Maven failed to run successfully."
)

// Printer writes the per reactor summary lines.
type Printer struct {
	out           io.Writer
	colorizer     *Colorizer
	maxNameLength int
}

// NewPrinter returns a printer aligning reactor names to maxNameLength characters.
func NewPrinter(out io.Writer, maxNameLength int, shouldColor bool) *Printer {
	return &Printer{
		out:           out,
		colorizer:     NewColorizer(shouldColor),
		maxNameLength: maxNameLength,
	}
}

// Newline prints an empty line.
func (printer *Printer) Newline() {
	fmt.Fprintln(printer.out)
}

// CommandSummary prints `RUN |SKIP <ordinal> <name> : <command>`.
func (printer *Printer) CommandSummary(r *reactor.Reactor, invocation *composer.Invocation) {
	action := actionSkip
	if r.ShouldBuild() {
		action = actionRun
	}

	action = printer.colorizer.colorizeAction(r.ShouldBuild(), fmt.Sprintf("%-4.4s", action))
	name := printer.colorizer.nameColorizer(fmt.Sprintf("%-*s", printer.maxNameLength, printer.trim(r.Name)))

	fmt.Fprintf(printer.out, "%s %d %s : %s\n", action, r.Number, name, invocation)
}

// CommandNotExecutable reports an executable that could not be started.
func (printer *Printer) CommandNotExecutable(executable string) {
	fmt.Fprintln(printer.out, printer.colorizer.failureColorizer(
		fmt.Sprintf("Failed to execute '%s', either it couldn't be found, or it isn't executable.", executable)))
}

// MavenFailed reports that a reactor build failed and the remaining reactors are abandoned.
func (printer *Printer) MavenFailed() {
	fmt.Fprintln(printer.out, printer.colorizer.failureColorizer(MavenFailedMessage))
}

func (printer *Printer) trim(name string) string {
	if len(name) > printer.maxNameLength {
		return name[:printer.maxNameLength]
	}

	return name
}
