package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cidl/internal/meta"
)

// InitResult lists what Init wrote.
type InitResult struct {
	Dir               string
	Manifest          string
	Descriptor        string
	CreatedDescriptor bool
}

// Init writes a starter cidl.toml and, if missing, a starter descriptor
// file into dir. It refuses to overwrite an existing manifest.
func Init(dir string) (*InitResult, error) {
	if st, err := os.Stat(dir); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	} else if !st.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", dir)
	}

	name := LibraryNameFromDir(dir)
	manifestPath := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return nil, fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	input := name + ".toml"
	if err := os.WriteFile(manifestPath, []byte(DefaultManifest(name, input)), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	res := &InitResult{Dir: dir, Manifest: manifestPath, Descriptor: filepath.Join(dir, input)}
	if _, err := os.Stat(res.Descriptor); errors.Is(err, os.ErrNotExist) {
		if err := writeStarterDescriptor(res.Descriptor, name); err != nil {
			return nil, err
		}
		res.CreatedDescriptor = true
	}
	return res, nil
}

// LibraryNameFromDir derives a library name from a directory basename,
// keeping only identifier characters.
func LibraryNameFromDir(dir string) string {
	base := strings.TrimSpace(filepath.Base(dir))
	var sb strings.Builder
	for _, r := range base {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			sb.WriteRune(r)
		case r >= '0' && r <= '9':
			if sb.Len() > 0 {
				sb.WriteRune(r)
			}
		}
	}
	if sb.Len() == 0 {
		return "Library"
	}
	return sb.String()
}

// DefaultManifest returns the cidl.toml written by Init.
func DefaultManifest(name, input string) string {
	return fmt.Sprintf(`# cidl project manifest
[library]
name = %q
input = %q

[output]
dir = "out"
indent = "    "
header_ext = ".h"

[abi]
# namespace defaults to the library name
dispatch_root = "IUnknown"
calling_convention = "__stdcall"
bool_type = "BOOL"
guard = "#pragma once"

[policy]
unknown_scalar = "opaque" # opaque | strict
duplicates = "overwrite"  # overwrite | error
`, name, input)
}

// StarterLibrary is the descriptor set written next to a fresh manifest.
func StarterLibrary(name string) *meta.Snapshot {
	return &meta.Snapshot{
		Library: name,
		Descs: []meta.TypeDesc{
			{
				Kind: meta.KindStruct,
				Name: "Point",
				Fields: []meta.ParamDesc{
					{Name: "X", Type: meta.Scalar("int32")},
					{Name: "Y", Type: meta.Scalar("int32")},
				},
			},
			{
				Kind: meta.KindInterface,
				Name: "IShape",
				GUID: "3f2504e0-4f89-11d3-9a0c-0305e82c3301",
				Methods: []meta.MethodDesc{
					{
						Name:        "Move",
						Params:      []meta.ParamDesc{{Name: "to", Type: meta.PointerTo(meta.Named("Point"))}},
						PreserveSig: true,
					},
					{
						Name:        "Visible",
						Return:      ptr(meta.Scalar("bool")),
						PreserveSig: true,
					},
				},
			},
		},
	}
}

func ptr[T any](v T) *T { return &v }

func writeStarterDescriptor(path, name string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create descriptor: %w", err)
	}
	if err := meta.WriteTOML(f, StarterLibrary(name)); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write descriptor: %w", err)
	}
	return f.Close()
}
