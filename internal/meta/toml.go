package meta

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

type tomlFile struct {
	Library tomlLibrary `toml:"library"`
	Types   []tomlType  `toml:"type"`
}

type tomlLibrary struct {
	Name string `toml:"name"`
}

type tomlType struct {
	Kind    string       `toml:"kind"`
	Name    string       `toml:"name"`
	GUID    string       `toml:"guid,omitempty"`
	Methods []tomlMethod `toml:"method,omitempty"`
	Fields  []tomlParam  `toml:"field,omitempty"`
}

type tomlMethod struct {
	Name        string      `toml:"name"`
	Returns     string      `toml:"returns,omitempty"`
	Params      []tomlParam `toml:"params,omitempty"`
	PreserveSig bool        `toml:"preserve_sig"`
}

type tomlParam struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// ReadTOMLFile decodes a descriptor file from disk.
func ReadTOMLFile(path string) (*Snapshot, error) {
	var f tomlFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	snap, err := f.snapshot()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if snap.Library == "" {
		snap.Library = LibraryNameFromPath(path)
	}
	return snap, nil
}

// ReadTOML decodes a descriptor document from r.
func ReadTOML(r io.Reader) (*Snapshot, error) {
	var f tomlFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return f.snapshot()
}

func (f *tomlFile) snapshot() (*Snapshot, error) {
	snap := &Snapshot{
		Library: strings.TrimSpace(f.Library.Name),
		Descs:   make([]TypeDesc, 0, len(f.Types)),
	}
	for i, t := range f.Types {
		desc, err := t.desc()
		if err != nil {
			return nil, fmt.Errorf("type #%d (%s): %w", i+1, t.Name, err)
		}
		snap.Descs = append(snap.Descs, desc)
	}
	return snap, nil
}

func (t tomlType) desc() (TypeDesc, error) {
	d := TypeDesc{
		Kind: ParseKind(t.Kind),
		Name: strings.TrimSpace(t.Name),
		GUID: strings.TrimSpace(t.GUID),
	}
	if d.Name == "" {
		return TypeDesc{}, fmt.Errorf("missing name")
	}
	for _, m := range t.Methods {
		md := MethodDesc{
			Name:        strings.TrimSpace(m.Name),
			PreserveSig: m.PreserveSig,
		}
		if md.Name == "" {
			return TypeDesc{}, fmt.Errorf("method without name")
		}
		if ret := strings.TrimSpace(m.Returns); ret != "" && ret != "void" {
			r, err := ParseTypeRef(ret)
			if err != nil {
				return TypeDesc{}, fmt.Errorf("method %s: return: %w", md.Name, err)
			}
			md.Return = &r
		}
		params, err := parseParams(m.Params)
		if err != nil {
			return TypeDesc{}, fmt.Errorf("method %s: %w", md.Name, err)
		}
		md.Params = params
		d.Methods = append(d.Methods, md)
	}
	fields, err := parseParams(t.Fields)
	if err != nil {
		return TypeDesc{}, err
	}
	d.Fields = fields
	return d, nil
}

func parseParams(in []tomlParam) ([]ParamDesc, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]ParamDesc, 0, len(in))
	for _, p := range in {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("parameter without name")
		}
		ty, err := ParseTypeRef(p.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, ParamDesc{Name: name, Type: ty})
	}
	return out, nil
}

// WriteTOML encodes snap back into the descriptor file syntax.
func WriteTOML(w io.Writer, snap *Snapshot) error {
	f := tomlFile{Library: tomlLibrary{Name: snap.Library}}
	for _, d := range snap.Descs {
		t := tomlType{Kind: d.Kind.String(), Name: d.Name, GUID: d.GUID}
		for _, m := range d.Methods {
			tm := tomlMethod{Name: m.Name, PreserveSig: m.PreserveSig}
			if m.Return != nil {
				tm.Returns = m.Return.String()
			}
			tm.Params = encodeParams(m.Params)
			t.Methods = append(t.Methods, tm)
		}
		t.Fields = encodeParams(d.Fields)
		f.Types = append(f.Types, t)
	}
	return toml.NewEncoder(w).Encode(f)
}

func encodeParams(in []ParamDesc) []tomlParam {
	if len(in) == 0 {
		return nil
	}
	out := make([]tomlParam, 0, len(in))
	for _, p := range in {
		out = append(out, tomlParam{Name: p.Name, Type: p.Type.String()})
	}
	return out
}
