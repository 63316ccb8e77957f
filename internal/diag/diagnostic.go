package diag

// Note adds secondary context to a diagnostic.
type Note struct {
	Subject string
	Msg     string
}

// Diagnostic is a single finding. Subject names what it is about, e.g. a
// definition ("IMy") or a member ("IMy.B").
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Subject  string
	Notes    []Note
}
