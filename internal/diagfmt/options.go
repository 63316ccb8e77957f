package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	// ShowInfo includes SevInfo diagnostics.
	ShowInfo bool
	// Max truncates the output, not the Bag. 0 means unlimited.
	Max int
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	Max          int // truncates the output, not the Bag
	IncludeNotes bool
	IncludeInfo  bool
}
