package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/roach88/falsify/runner"
)

// ConsoleReporter writes one-look pass/fail summaries for interactive
// runs. Colors are enabled only when the destination is a terminal.
type ConsoleReporter struct {
	out  io.Writer
	pass func(a ...any) string
	fail func(a ...any) string
	name func(a ...any) string
}

// NewConsoleReporter builds a reporter for out, detecting TTY support.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	colored := false
	if f, ok := out.(*os.File); ok {
		colored = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return newConsoleReporter(out, colored)
}

func newConsoleReporter(out io.Writer, colored bool) *ConsoleReporter {
	plain := fmt.Sprint
	r := &ConsoleReporter{out: out, pass: plain, fail: plain, name: plain}
	if colored {
		r.pass = color.New(color.FgGreen).SprintFunc()
		r.fail = color.New(color.FgRed).SprintFunc()
		r.name = color.New(color.FgCyan).SprintFunc()
	}
	return r
}

// Report prints the outcome of one run. Passing runs get a single green
// line; failing runs get a red header followed by the full report text.
func (r *ConsoleReporter) Report(name string, stats *runner.Statistics) {
	rep := FromStatistics(stats)
	if !stats.Failed {
		fmt.Fprintf(r.out, "%s %s: %s\n", r.pass(glyphSuccess), r.name(name), rep.Message)
		return
	}
	fmt.Fprintf(r.out, "%s %s\n%s\n", r.fail(glyphFailure), r.name(name), rep.String())
}
