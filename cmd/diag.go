package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dzjyyds666/strtable/parse"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// diagPrinter writes one line per skipped input line.
type diagPrinter struct {
	w     io.Writer
	quiet bool
	paint *color.Color
	count int
}

func newDiagPrinter(w io.Writer, noColor, quiet bool) *diagPrinter {
	p := &diagPrinter{w: w, quiet: quiet}
	if useColor(noColor, isTerminal(w)) {
		p.paint = color.New(color.FgYellow)
		p.paint.EnableColor()
	}
	return p
}

func (p *diagPrinter) report(d *parse.Diagnostic) {
	p.count++
	if p.quiet {
		return
	}
	msg := d.Error()
	if p.paint != nil {
		msg = p.paint.Sprint(msg)
	}
	fmt.Fprintln(p.w, msg)
}

// useColor reports whether diagnostics on a stream are painted. NO_COLOR and
// TERM=dumb win over a terminal, as they do for fatih/color on stdout.
func useColor(noColor, tty bool) bool {
	if noColor || !tty {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
