package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"cidl/internal/diag"
)

// Pretty writes diagnostics in a human-readable form, one per line:
//
//	<severity>[<CODE>] <subject>: <message>
//	    note <subject>: <message>
//
// bag is expected to be sorted already.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	if bag == nil {
		return
	}
	paint := newPalette(opts.Color)

	shown := 0
	for _, d := range bag.Items() {
		if d.Severity == diag.SevInfo && !opts.ShowInfo {
			continue
		}
		if opts.Max > 0 && shown == opts.Max {
			fmt.Fprintf(w, "... %d more diagnostics not shown\n", remaining(bag, opts, shown))
			return
		}
		shown++

		sev := strings.ToLower(d.Severity.String())
		fmt.Fprintf(w, "%s[%s]", paint.severity(d.Severity).Sprint(sev), d.Code.ID())
		if d.Subject != "" {
			fmt.Fprintf(w, " %s", paint.subject.Sprint(d.Subject))
		}
		fmt.Fprintf(w, ": %s\n", d.Message)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "    %s", paint.note.Sprint("note"))
			if n.Subject != "" {
				fmt.Fprintf(w, " %s", n.Subject)
			}
			fmt.Fprintf(w, ": %s\n", n.Msg)
		}
	}
}

func remaining(bag *diag.Bag, opts PrettyOpts, shown int) int {
	total := 0
	for _, d := range bag.Items() {
		if d.Severity != diag.SevInfo || opts.ShowInfo {
			total++
		}
	}
	return total - shown
}

type palette struct {
	err, warn, info, subject, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:     color.New(color.FgRed, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		info:    color.New(color.FgCyan),
		subject: color.New(color.Bold),
		note:    color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.subject, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}
