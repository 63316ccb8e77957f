package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"Error", LevelError, false},
		{"PHASE", LevelPhase, false},
		{"detail", LevelDetail, false},
		{"debug", LevelDebug, false},
		{"loud", LevelOff, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShouldEmit(t *testing.T) {
	if LevelPhase.ShouldEmit(ScopeDef) {
		t.Error("phase level must not emit def scope")
	}
	if !LevelPhase.ShouldEmit(ScopePass) {
		t.Error("phase level must emit pass scope")
	}
	if !LevelDetail.ShouldEmit(ScopeDef) {
		t.Error("detail level must emit def scope")
	}
	if LevelError.ShouldEmit(ScopeDriver) {
		t.Error("error level streams nothing")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	ctx := WithTracer(context.Background(), tr)

	ctx, root := Start(ctx, ScopeDriver, "build")
	_, pass := Start(ctx, ScopePass, "emit:cpp")
	if pass.ID() == 0 || pass.ID() == root.ID() {
		t.Fatalf("unexpected span ids root=%d pass=%d", root.ID(), pass.ID())
	}
	Point(tr, ScopeDef, "def:IMy", "", pass.ID())
	pass.WithExtra("lines", "12").WithExtra("defs", "3").End("")
	root.End("ok")

	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (def point filtered), got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "→ driver build") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[2], "← pass emit:cpp {defs=3, lines=12}") {
		t.Errorf("line 2 = %q", lines[2])
	}
	if !strings.Contains(lines[3], "← driver build (ok)") {
		t.Errorf("line 3 = %q", lines[3])
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeDef, "def:S", "struct", 0)

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got["kind"] != "point" || got["scope"] != "def" || got["name"] != "def:S" || got["detail"] != "struct" {
		t.Errorf("unexpected event %v", got)
	}
}

func TestRingTracerWraps(t *testing.T) {
	r := NewRingTracer(3, LevelError)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(r, ScopeDef, name, "", 0)
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 events, got %d", len(snap))
	}
	for i, want := range []string{"c", "d", "e"} {
		if snap[i].Name != want {
			t.Errorf("snap[%d] = %q, want %q", i, snap[i].Name, want)
		}
	}

	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Errorf("dump = %q", buf.String())
	}
}

func TestNewModes(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr != Nop {
		t.Fatalf("off level should give Nop, got %v %v", tr, err)
	}

	var buf bytes.Buffer
	tr, err = New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := FindRing(tr); !ok {
		t.Fatal("both mode should contain a ring")
	}
	Begin(tr, ScopeDriver, "x", 0).End("")
	if buf.Len() == 0 {
		t.Error("stream half wrote nothing")
	}

	if _, err := ParseMode("disk"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestNopSpan(t *testing.T) {
	ctx, span := Start(context.Background(), ScopeDriver, "noop")
	if span.ID() != 0 || CurrentSpan(ctx) != 0 {
		t.Error("nop tracer should not allocate spans")
	}
	if d := span.WithExtra("k", "v").End(""); d != 0 {
		t.Errorf("nop span duration = %v", d)
	}
}
