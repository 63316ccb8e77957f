package text

import "strings"

// DefaultIndent is used when Options.Indent is empty.
const DefaultIndent = "    "

// Options controls rendering.
type Options struct {
	// Indent is repeated once per nesting level.
	Indent string
}

func (o Options) withDefaults() Options {
	if o.Indent == "" {
		o.Indent = DefaultIndent
	}
	return o
}

// IndentOf builds an indent string the way formatter flags describe it:
// a width in spaces, or a single tab.
func IndentOf(width int, useTabs bool) string {
	if useTabs {
		return "\t"
	}
	if width <= 0 {
		width = len(DefaultIndent)
	}
	return strings.Repeat(" ", width)
}

type renderer struct {
	sink        Sink
	opt         Options
	indentLevel int
	prefix      []string
}

// Render writes items into sink. Top-level items are at depth zero.
func Render(items []Item, opt Options, sink Sink) {
	if sink == nil {
		return
	}
	r := renderer{sink: sink, opt: opt.withDefaults()}
	r.items(items)
}

// Text renders items into a fresh slice of lines.
func Text(items []Item, opt Options) []string {
	var c Collector
	Render(items, opt, &c)
	return c.Lines()
}

func (r *renderer) items(items []Item) {
	for _, it := range items {
		switch it := it.(type) {
		case Line:
			r.sink.WriteLine(r.indent() + string(it))
		case Block:
			r.indentPush()
			r.items(it)
			r.indentPop()
		}
	}
}

func (r *renderer) indent() string {
	for len(r.prefix) <= r.indentLevel {
		r.prefix = append(r.prefix, strings.Repeat(r.opt.Indent, len(r.prefix)))
	}
	return r.prefix[r.indentLevel]
}

func (r *renderer) indentPush() {
	r.indentLevel++
}

func (r *renderer) indentPop() {
	if r.indentLevel > 0 {
		r.indentLevel--
	}
}
