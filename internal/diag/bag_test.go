package diag

import "testing"

func TestBagRespectsLimit(t *testing.T) {
	b := NewBag(1)
	if !b.Add(NewWarning(DefDuplicate, "A", "first")) {
		t.Fatal("first add should succeed")
	}
	if b.Add(NewWarning(DefDuplicate, "B", "second")) {
		t.Fatal("second add should be dropped")
	}
	if b.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", b.Len())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevInfo, MetaSkippedKind, "E", "skipped"))
	if b.HasWarnings() || b.HasErrors() {
		t.Fatal("info should not count as warning or error")
	}
	b.Add(NewWarning(DefUnknownScalar, "S.F", "opaque"))
	if !b.HasWarnings() || b.HasErrors() {
		t.Fatal("expected warnings only")
	}
	b.Add(NewError(EmitUnresolvedName, "S.F", "missing"))
	if !b.HasErrors() {
		t.Fatal("expected errors")
	}
}

func TestBagSortIsStable(t *testing.T) {
	b := NewBag(10)
	b.Add(NewWarning(DefUnknownScalar, "B", "x"))
	b.Add(New(SevInfo, MetaSkippedKind, "A", "x"))
	b.Add(NewWarning(DefDuplicate, "Z", "x"))
	b.Add(NewWarning(DefDuplicate, "C", "x"))
	b.Sort()
	got := []string{}
	for _, d := range b.Items() {
		got = append(got, d.Subject)
	}
	want := []string{"C", "Z", "B", "A"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(10)
	b.Add(NewWarning(DefDuplicate, "S", "overwritten"))
	b.Add(NewWarning(DefDuplicate, "S", "overwritten"))
	b.Add(NewWarning(DefDuplicate, "T", "overwritten"))
	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("expected 2 items after dedup, got %d", b.Len())
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewWarning(DefDuplicate, "A", "x"))
	other := NewBag(2)
	other.Add(NewWarning(DefDuplicate, "B", "x"))
	other.Add(NewWarning(DefDuplicate, "C", "x"))
	a.Merge(other)
	if a.Len() != 3 || a.Cap() != 3 {
		t.Fatalf("len=%d cap=%d, want 3/3", a.Len(), a.Cap())
	}
}

func TestFormat(t *testing.T) {
	d := NewWarning(DefDuplicate, "IMy", "definition overwritten\nby later descriptor").
		WithNote("IMy", "first seen at index 0")
	want := "warning DEF2001 IMy: definition overwritten by later descriptor; note IMy: first seen at index 0"
	if got := Format(d); got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestDedupReporter(t *testing.T) {
	b := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: b})
	r.Report(NewWarning(DefDuplicate, "S", "x"))
	r.Report(NewWarning(DefDuplicate, "S", "x"))
	r.Report(NewWarning(DefDuplicate, "S", "y"))
	if b.Len() != 2 {
		t.Fatalf("expected 2 forwarded diagnostics, got %d", b.Len())
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		MetaSkippedKind:    "MET1001",
		DefDuplicate:       "DEF2001",
		EmitUnresolvedName: "EMT3001",
		IOWriteFailed:      "IO4001",
		UnknownCode:        "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
}
