package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cidl/internal/diag"
)

func sampleBag() *diag.Bag {
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.EmitUnresolvedName, "Gone", "unresolved type").WithNote("T.f", "referenced here"))
	bag.Add(diag.NewWarning(diag.DefDuplicate, "IMy", "duplicate definition overwritten"))
	bag.Add(diag.New(diag.SevInfo, diag.MetaSkippedKind, "Color", "skipped enum"))
	bag.Sort()
	return bag
}

func TestPrettyPlain(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, sampleBag(), PrettyOpts{ShowNotes: true})

	want := "error[EMT3001] Gone: unresolved type\n" +
		"    note T.f: referenced here\n" +
		"warning[DEF2001] IMy: duplicate definition overwritten\n"
	if got := buf.String(); got != want {
		t.Errorf("Pretty:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyShowInfoAndMax(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, sampleBag(), PrettyOpts{ShowInfo: true, Max: 1})
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", lines)
	}
	if lines[1] != "... 2 more diagnostics not shown" {
		t.Errorf("truncation line = %q", lines[1])
	}
}

func TestPrettyColor(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, sampleBag(), PrettyOpts{Color: true})
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected ANSI escapes, got %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleBag(), JSONOpts{IncludeNotes: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	first := out.Diagnostics[0]
	if first.Severity != "ERROR" || first.Code != "EMT3001" || first.Subject != "Gone" {
		t.Errorf("first = %+v", first)
	}
	if len(first.Notes) != 1 || first.Notes[0].Subject != "T.f" {
		t.Errorf("notes = %+v", first.Notes)
	}
}

func TestJSONMax(t *testing.T) {
	out := BuildDiagnosticsOutput(sampleBag(), JSONOpts{Max: 1, IncludeInfo: true})
	if out.Count != 1 || out.Diagnostics[0].Code != "EMT3001" {
		t.Errorf("out = %+v", out)
	}
}
