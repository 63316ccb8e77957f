package meta

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the wire layout changes.
const snapshotSchemaVersion uint16 = 1

// ErrSchemaMismatch is returned for snapshots written by another schema.
var ErrSchemaMismatch = errors.New("meta: snapshot schema mismatch")

type wireSnapshot struct {
	Schema  uint16     `msgpack:"schema"`
	Library string     `msgpack:"library"`
	Types   []wireType `msgpack:"types"`
}

type wireType struct {
	Kind    int64        `msgpack:"kind"`
	Name    string       `msgpack:"name"`
	GUID    string       `msgpack:"guid,omitempty"`
	Methods []wireMethod `msgpack:"methods,omitempty"`
	Fields  []wireParam  `msgpack:"fields,omitempty"`
}

type wireMethod struct {
	Name        string      `msgpack:"name"`
	Return      *wireRef    `msgpack:"ret,omitempty"`
	Params      []wireParam `msgpack:"params,omitempty"`
	PreserveSig bool        `msgpack:"psig"`
}

type wireParam struct {
	Name string  `msgpack:"name"`
	Type wireRef `msgpack:"type"`
}

type refTag int64

const (
	refScalar refTag = iota + 1
	refPointer
	refName
)

type wireRef struct {
	Tag  int64    `msgpack:"t"`
	Text string   `msgpack:"s,omitempty"`
	Elem *wireRef `msgpack:"e,omitempty"`
}

// WriteSnapshot encodes snap as msgpack.
func WriteSnapshot(w io.Writer, snap *Snapshot) error {
	ws := wireSnapshot{
		Schema:  snapshotSchemaVersion,
		Library: snap.Library,
		Types:   make([]wireType, 0, len(snap.Descs)),
	}
	for _, d := range snap.Descs {
		wt := wireType{Kind: int64(d.Kind), Name: d.Name, GUID: d.GUID}
		for _, m := range d.Methods {
			wm := wireMethod{Name: m.Name, PreserveSig: m.PreserveSig, Params: toWireParams(m.Params)}
			if m.Return != nil {
				r := toWireRef(*m.Return)
				wm.Return = &r
			}
			wt.Methods = append(wt.Methods, wm)
		}
		wt.Fields = toWireParams(d.Fields)
		ws.Types = append(ws.Types, wt)
	}
	return msgpack.NewEncoder(w).Encode(&ws)
}

// ReadSnapshot decodes a msgpack snapshot.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var ws wireSnapshot
	if err := msgpack.NewDecoder(r).Decode(&ws); err != nil {
		return nil, fmt.Errorf("meta: failed to decode snapshot: %w", err)
	}
	if ws.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, ws.Schema, snapshotSchemaVersion)
	}
	snap := &Snapshot{Library: ws.Library, Descs: make([]TypeDesc, 0, len(ws.Types))}
	for i, wt := range ws.Types {
		d, err := wt.desc()
		if err != nil {
			return nil, fmt.Errorf("meta: type #%d (%s): %w", i+1, wt.Name, err)
		}
		snap.Descs = append(snap.Descs, d)
	}
	return snap, nil
}

// ReadSnapshotFile decodes a snapshot from disk.
func ReadSnapshotFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	snap, err := ReadSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if snap.Library == "" {
		snap.Library = LibraryNameFromPath(path)
	}
	return snap, nil
}

// WriteSnapshotFile writes snap to path atomically (temp file + rename).
func WriteSnapshotFile(path string, snap *Snapshot) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()
	if err = WriteSnapshot(f, snap); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

func (wt wireType) desc() (TypeDesc, error) {
	k, err := safecast.Conv[uint8](wt.Kind)
	if err != nil {
		return TypeDesc{}, fmt.Errorf("kind overflow: %w", err)
	}
	d := TypeDesc{Kind: DescKind(k), Name: wt.Name, GUID: wt.GUID}
	if d.Kind > KindStruct {
		d.Kind = KindOther
	}
	for _, wm := range wt.Methods {
		m := MethodDesc{Name: wm.Name, PreserveSig: wm.PreserveSig}
		if wm.Return != nil {
			r, err := wm.Return.desc()
			if err != nil {
				return TypeDesc{}, fmt.Errorf("method %s: return: %w", wm.Name, err)
			}
			m.Return = &r
		}
		params, err := fromWireParams(wm.Params)
		if err != nil {
			return TypeDesc{}, fmt.Errorf("method %s: %w", wm.Name, err)
		}
		m.Params = params
		d.Methods = append(d.Methods, m)
	}
	fields, err := fromWireParams(wt.Fields)
	if err != nil {
		return TypeDesc{}, err
	}
	d.Fields = fields
	return d, nil
}

func toWireParams(in []ParamDesc) []wireParam {
	if len(in) == 0 {
		return nil
	}
	out := make([]wireParam, 0, len(in))
	for _, p := range in {
		out = append(out, wireParam{Name: p.Name, Type: toWireRef(p.Type)})
	}
	return out
}

func fromWireParams(in []wireParam) ([]ParamDesc, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]ParamDesc, 0, len(in))
	for _, wp := range in {
		ty, err := wp.Type.desc()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", wp.Name, err)
		}
		out = append(out, ParamDesc{Name: wp.Name, Type: ty})
	}
	return out, nil
}

func toWireRef(d TypeRefDesc) wireRef {
	switch {
	case d.Pointer != nil:
		elem := toWireRef(*d.Pointer)
		return wireRef{Tag: int64(refPointer), Elem: &elem}
	case d.Scalar != "":
		return wireRef{Tag: int64(refScalar), Text: d.Scalar}
	default:
		return wireRef{Tag: int64(refName), Text: d.Name}
	}
}

func (w wireRef) desc() (TypeRefDesc, error) {
	tag, err := safecast.Conv[uint8](w.Tag)
	if err != nil {
		return TypeRefDesc{}, fmt.Errorf("type tag overflow: %w", err)
	}
	switch refTag(tag) {
	case refScalar:
		return Scalar(w.Text), nil
	case refName:
		return Named(w.Text), nil
	case refPointer:
		if w.Elem == nil {
			return TypeRefDesc{}, fmt.Errorf("pointer without element")
		}
		elem, err := w.Elem.desc()
		if err != nil {
			return TypeRefDesc{}, err
		}
		return PointerTo(elem), nil
	default:
		return TypeRefDesc{}, fmt.Errorf("unknown type tag %d", tag)
	}
}
