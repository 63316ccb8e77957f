package diagfmt

import (
	"encoding/json"
	"io"

	"cidl/internal/diag"
)

// NoteJSON is a secondary note in JSON output.
type NoteJSON struct {
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// DiagnosticJSON is one diagnostic in JSON output.
type DiagnosticJSON struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Title    string     `json:"title"`
	Subject  string     `json:"subject,omitempty"`
	Message  string     `json:"message"`
	Notes    []NoteJSON `json:"notes,omitempty"`
}

// DiagnosticsOutput is the root of the JSON output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildDiagnosticsOutput builds the JSON payload without encoding it.
func BuildDiagnosticsOutput(bag *diag.Bag, opts JSONOpts) DiagnosticsOutput {
	diagnostics := make([]DiagnosticJSON, 0, bag.Len())
	for _, d := range bag.Items() {
		if opts.Max > 0 && len(diagnostics) == opts.Max {
			break
		}
		if d.Severity == diag.SevInfo && !opts.IncludeInfo {
			continue
		}
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Subject:  d.Subject,
			Message:  d.Message,
		}
		if opts.IncludeNotes && len(d.Notes) > 0 {
			dj.Notes = make([]NoteJSON, len(d.Notes))
			for j, n := range d.Notes {
				dj.Notes[j] = NoteJSON{Subject: n.Subject, Message: n.Msg}
			}
		}
		diagnostics = append(diagnostics, dj)
	}
	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
	}
}

// JSON writes the diagnostics as an indented JSON document.
func JSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag, opts))
}
