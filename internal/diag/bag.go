package diag

import (
	"fmt"
	"sort"
	"strings"
)

type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag creates a bag that keeps at most max diagnostics.
func NewBag(max int) *Bag {
	if max < 0 {
		max = 0
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(max, 64)),
		max:   max,
	}
}

// Add appends d unless the limit is reached.
// Returns false if the diagnostic was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() int {
	return b.max
}

// HasErrors reports whether any diagnostic has Severity >= Error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic has Severity >= Warning.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the diagnostics. Do not modify the returned slice; it aliases
// the bag's storage.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends the diagnostics of other, growing the limit if needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	newTotal := len(b.items) + len(other.items)
	if newTotal > b.max {
		b.max = newTotal
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by severity (desc), code (asc), subject (asc).
// The sort is stable, so discovery order breaks the remaining ties.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Subject < dj.Subject
	})
}

// Dedup drops diagnostics that repeat an earlier Code+Subject+Message.
func (b *Bag) Dedup() {
	seen := make(map[string]bool)
	newitems := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%s:%s", d.Code.ID(), d.Subject, d.Message)
		if seen[key] {
			continue
		}
		seen[key] = true
		newitems = append(newitems, d)
	}
	b.items = newitems
}

// Format renders d as a single line:
//
//	warning DEF2001 IMy: duplicate definition overwritten
func Format(d Diagnostic) string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(d.Severity.String()))
	sb.WriteByte(' ')
	sb.WriteString(d.Code.ID())
	if d.Subject != "" {
		sb.WriteByte(' ')
		sb.WriteString(d.Subject)
		sb.WriteByte(':')
	}
	sb.WriteByte(' ')
	sb.WriteString(strings.ReplaceAll(d.Message, "\n", " "))
	for _, n := range d.Notes {
		sb.WriteString("; note")
		if n.Subject != "" {
			sb.WriteByte(' ')
			sb.WriteString(n.Subject)
		}
		sb.WriteString(": ")
		sb.WriteString(n.Msg)
	}
	return sb.String()
}
