package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cidl/internal/meta"
	"cidl/internal/types"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), `
[library]
name = "CidlExample"
input = "desc/example.toml"

[output]
dir = "out"
indent = "  "

[abi]
namespace = "Native"
bool_type = "bool"

[policy]
unknown_scalar = "strict"
duplicates = "error"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	m, ok, err := Load(nested)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if m.Root != root {
		t.Errorf("Root = %q, want %q", m.Root, root)
	}
	if got, want := m.InputPath(), filepath.Join(root, "desc", "example.toml"); got != want {
		t.Errorf("InputPath = %q, want %q", got, want)
	}
	if got, want := m.OutputDir(), filepath.Join(root, "out"); got != want {
		t.Errorf("OutputDir = %q, want %q", got, want)
	}
	if m.Config.Output.Indent != "  " {
		t.Errorf("Indent = %q", m.Config.Output.Indent)
	}
	opts := m.Config.HeaderOptions()
	if opts.Namespace != "Native" || opts.BoolType != "bool" || opts.DispatchRoot != "" {
		t.Errorf("HeaderOptions = %+v", opts)
	}
	scalars, dups := m.Config.Policies()
	if scalars != types.ScalarStrict || dups != types.DuplicateReject {
		t.Errorf("Policies = %v, %v", scalars, dups)
	}
}

func TestLoadMissingManifest(t *testing.T) {
	m, ok, err := Load(t.TempDir())
	if err != nil || ok || m != nil {
		t.Fatalf("expected no manifest, got m=%v ok=%v err=%v", m, ok, err)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"no library", "[output]\ndir = \"x\"\n", "missing [library]"},
		{"no input", "[library]\nname = \"L\"\n", "missing [library].input"},
		{"bad indent", "[library]\ninput = \"a.toml\"\n[output]\nindent = \"x\"\n", "[output].indent"},
		{"bad ext", "[library]\ninput = \"a.toml\"\n[output]\nheader_ext = \"h\"\n", "header_ext"},
		{"bad scalar policy", "[library]\ninput = \"a.toml\"\n[policy]\nunknown_scalar = \"loose\"\n", "unknown_scalar"},
		{"bad dup policy", "[library]\ninput = \"a.toml\"\n[policy]\nduplicates = \"merge\"\n", "duplicates"},
		{"unknown key", "[library]\ninput = \"a.toml\"\ncolour = \"red\"\n", "unknown key"},
		{"syntax", "[library\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ManifestName)
			writeFile(t, path, tt.content)
			_, err := LoadFile(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("LoadFile err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestOutputDirDefaultsToRoot(t *testing.T) {
	m := &Manifest{Root: "/proj"}
	if got := m.OutputDir(); got != "/proj" {
		t.Errorf("OutputDir = %q", got)
	}
}

func TestInitWritesLoadableProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-lib")
	res, err := Init(dir)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !res.CreatedDescriptor {
		t.Error("expected descriptor to be created")
	}

	m, err := LoadFile(res.Manifest)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if m.Config.Library.Name != "mylib" {
		t.Errorf("library name = %q", m.Config.Library.Name)
	}

	snap, err := meta.Open(m.InputPath())
	if err != nil {
		t.Fatalf("Open descriptor: %v", err)
	}
	if len(snap.Descs) != 2 || snap.Descs[1].Name != "IShape" {
		t.Errorf("unexpected starter descriptors %+v", snap.Descs)
	}

	if _, err := Init(dir); err == nil || !strings.Contains(err.Error(), "already initialized") {
		t.Errorf("second Init err = %v", err)
	}
}

func TestLibraryNameFromDir(t *testing.T) {
	tests := map[string]string{
		"/x/CidlExample": "CidlExample",
		"/x/my-lib":      "mylib",
		"/x/2fast":       "fast",
		"/x/---":         "Library",
	}
	for in, want := range tests {
		if got := LibraryNameFromDir(in); got != want {
			t.Errorf("LibraryNameFromDir(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDigest(t *testing.T) {
	a := DigestBytes([]byte("a"))
	if a == DigestBytes([]byte("b")) {
		t.Fatal("distinct inputs share a digest")
	}
	if Combine(a) == Combine(a, a) {
		t.Error("Combine ignores parts")
	}
	if len(a.Short()) != 12 {
		t.Errorf("Short = %q", a.Short())
	}

	path := filepath.Join(t.TempDir(), "f")
	if _, ok, err := DigestFile(path); ok || err != nil {
		t.Fatalf("missing file: ok=%v err=%v", ok, err)
	}
	writeFile(t, path, "a")
	d, ok, err := DigestFile(path)
	if err != nil || !ok || d != a {
		t.Errorf("DigestFile = %x ok=%v err=%v", d, ok, err)
	}
}
