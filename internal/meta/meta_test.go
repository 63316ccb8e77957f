package meta

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestParseTypeRef(t *testing.T) {
	cases := []struct {
		in   string
		want TypeRefDesc
	}{
		{"int32", Scalar("int32")},
		{"int", Scalar("int")},
		{"byte", Scalar("byte")},
		{"uint16*", PointerTo(Scalar("uint16"))},
		{"IMy", Named("IMy")},
		{"S **", PointerTo(PointerTo(Named("S")))},
		{"float", Scalar("float")},
		{"Byte", Named("Byte")},
		{"Long*", PointerTo(Named("Long"))},
		{"Decimal", Named("Decimal")},
	}
	for _, tc := range cases {
		got, err := ParseTypeRef(tc.in)
		if err != nil {
			t.Fatalf("ParseTypeRef(%q): %v", tc.in, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseTypeRef(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalScalarIsCaseSensitive(t *testing.T) {
	cases := []struct {
		tag  string
		want string
		ok   bool
	}{
		{"long", "int64", true},
		{"double", "float64", true},
		{"Long", "", false},
		{"DOUBLE", "", false},
		{"Decimal", "", false},
	}
	for _, tc := range cases {
		got, ok := CanonicalScalar(tc.tag)
		if got != tc.want || ok != tc.ok {
			t.Errorf("CanonicalScalar(%q) = %q, %v; want %q, %v", tc.tag, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseTypeRefRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "*", "a b", "a*b"} {
		if _, err := ParseTypeRef(in); err == nil {
			t.Errorf("ParseTypeRef(%q) should fail", in)
		}
	}
}

func TestTypeRefDescValidate(t *testing.T) {
	if err := PointerTo(Named("S")).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (TypeRefDesc{}).Validate(); err == nil {
		t.Fatal("empty descriptor should be invalid")
	}
	if err := (TypeRefDesc{Scalar: "int32", Name: "S"}).Validate(); err == nil {
		t.Fatal("descriptor with two variants should be invalid")
	}
	if err := PointerTo(TypeRefDesc{}).Validate(); err == nil {
		t.Fatal("pointer to empty descriptor should be invalid")
	}
}

func TestReadTOML(t *testing.T) {
	snap, err := ReadTOML(strings.NewReader(exampleTOML))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	if snap.Name() != "CidlExample" {
		t.Fatalf("library name = %q", snap.Name())
	}
	descs, _ := snap.Types()
	if len(descs) != 3 {
		t.Fatalf("expected 3 descriptors, got %d", len(descs))
	}
	s := descs[0]
	if s.Kind != KindStruct || s.Name != "S" || len(s.Fields) != 3 {
		t.Fatalf("unexpected struct descriptor: %+v", s)
	}
	if s.Fields[1].Type != Scalar("int") || s.Fields[2].Type != Named("IMy") {
		t.Fatalf("unexpected field types: %+v", s.Fields)
	}
	if descs[1].Kind != KindOther {
		t.Fatalf("enum should map to KindOther, got %v", descs[1].Kind)
	}
	i := descs[2]
	if i.Kind != KindInterface || i.GUID != "6b29fc40-ca47-1067-b31d-00dd010662da" {
		t.Fatalf("unexpected interface descriptor: %+v", i)
	}
	if len(i.Methods) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(i.Methods))
	}
	if i.Methods[0].Return != nil || !i.Methods[0].PreserveSig {
		t.Fatalf("method A: %+v", i.Methods[0])
	}
	b := i.Methods[1]
	if b.Return == nil || *b.Return != Scalar("int32") {
		t.Fatalf("method B return: %+v", b.Return)
	}
	wantParams := []ParamDesc{
		{Name: "x", Type: Scalar("byte")},
		{Name: "p", Type: PointerTo(Scalar("uint16"))},
	}
	if !reflect.DeepEqual(b.Params, wantParams) {
		t.Fatalf("method B params = %+v, want %+v", b.Params, wantParams)
	}
}

func TestReadTOMLMissingPreserveSigIsKept(t *testing.T) {
	doc := `
[[type]]
kind = "interface"
name = "I"
guid = "6b29fc40-ca47-1067-b31d-00dd010662da"
  [[type.method]]
  name = "M"
`
	snap, err := ReadTOML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	if snap.Descs[0].Methods[0].PreserveSig {
		t.Fatal("preserve_sig should default to false")
	}
}

func TestReadTOMLErrors(t *testing.T) {
	docs := map[string]string{
		"no name":      "[[type]]\nkind = \"struct\"\n",
		"bad field":    "[[type]]\nkind = \"struct\"\nname = \"S\"\n[[type.field]]\nname = \"A\"\ntype = \"a b\"\n",
		"nameless arg": "[[type]]\nkind = \"interface\"\nname = \"I\"\n[[type.method]]\nname = \"M\"\nparams = [{ type = \"int32\" }]\n",
		"bad syntax":   "[[type]\n",
	}
	for name, doc := range docs {
		if _, err := ReadTOML(strings.NewReader(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestWriteTOMLReadsBack(t *testing.T) {
	snap, err := ReadTOML(strings.NewReader(exampleTOML))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteTOML(&buf, snap); err != nil {
		t.Fatalf("WriteTOML: %v", err)
	}
	back, err := ReadTOML(&buf)
	if err != nil {
		t.Fatalf("ReadTOML(WriteTOML): %v\n%s", err, buf.String())
	}
	if !reflect.DeepEqual(back, snap) {
		t.Fatalf("snapshot changed:\n got %+v\nwant %+v", back, snap)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap, err := ReadTOML(strings.NewReader(exampleTOML))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, snap); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	back, err := ReadSnapshot(&buf)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	if !reflect.DeepEqual(back, snap) {
		t.Fatalf("snapshot changed:\n got %+v\nwant %+v", back, snap)
	}
}

func TestReadSnapshotRejectsOtherSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(&wireSnapshot{Schema: snapshotSchemaVersion + 1, Library: "L"}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	_, err := ReadSnapshot(&buf)
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestReadSnapshotRejectsUnknownTag(t *testing.T) {
	ws := wireSnapshot{
		Schema: snapshotSchemaVersion,
		Types: []wireType{{
			Kind:   int64(KindStruct),
			Name:   "S",
			Fields: []wireParam{{Name: "A", Type: wireRef{Tag: 42}}},
		}},
	}
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(&ws); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := ReadSnapshot(&buf); err == nil {
		t.Fatal("expected unknown tag error")
	}
}

func TestReadSnapshotRejectsOversizedKind(t *testing.T) {
	ws := wireSnapshot{
		Schema: snapshotSchemaVersion,
		Types:  []wireType{{Kind: 1 << 20, Name: "S"}},
	}
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(&ws); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := ReadSnapshot(&buf); err == nil {
		t.Fatal("expected kind overflow error")
	}
}

func TestOpenByExtension(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "Example.toml")
	if err := os.WriteFile(tomlPath, []byte(exampleTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	fromTOML, err := Open(tomlPath)
	if err != nil {
		t.Fatalf("Open(toml): %v", err)
	}

	mpPath := filepath.Join(dir, "nested", "Example.mp")
	if err := WriteSnapshotFile(mpPath, fromTOML); err != nil {
		t.Fatalf("WriteSnapshotFile: %v", err)
	}
	fromMP, err := Open(mpPath)
	if err != nil {
		t.Fatalf("Open(mp): %v", err)
	}
	if !reflect.DeepEqual(fromMP, fromTOML) {
		t.Fatalf("formats disagree:\n mp %+v\ntoml %+v", fromMP, fromTOML)
	}

	if _, err := Open(filepath.Join(dir, "Example.json")); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestReadTOMLFileDefaultsLibraryName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Widgets.toml")
	if err := os.WriteFile(path, []byte("[[type]]\nkind = \"struct\"\nname = \"W\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	snap, err := ReadTOMLFile(path)
	if err != nil {
		t.Fatalf("ReadTOMLFile: %v", err)
	}
	if snap.Library != "Widgets" {
		t.Fatalf("library = %q, want Widgets", snap.Library)
	}
}
