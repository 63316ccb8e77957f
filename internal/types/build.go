package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"cidl/internal/diag"
	"cidl/internal/meta"
)

// ScalarPolicy decides what happens to scalar tags outside BasicKind.
type ScalarPolicy uint8

const (
	// ScalarOpaque keeps the tag as a Named reference and warns.
	ScalarOpaque ScalarPolicy = iota
	// ScalarStrict fails with *UnknownScalarError.
	ScalarStrict
)

func (p ScalarPolicy) String() string {
	switch p {
	case ScalarOpaque:
		return "opaque"
	case ScalarStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// ParseScalarPolicy converts a configuration string to ScalarPolicy.
func ParseScalarPolicy(s string) (ScalarPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "opaque":
		return ScalarOpaque, nil
	case "strict":
		return ScalarStrict, nil
	default:
		return ScalarOpaque, fmt.Errorf("invalid scalar policy %q (expected opaque|strict)", s)
	}
}

// DuplicatePolicy decides what happens when two descriptors share a name.
type DuplicatePolicy uint8

const (
	// DuplicateOverwrite keeps the last definition and warns.
	DuplicateOverwrite DuplicatePolicy = iota
	// DuplicateReject fails with *DuplicateError.
	DuplicateReject
)

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateOverwrite:
		return "overwrite"
	case DuplicateReject:
		return "error"
	default:
		return "unknown"
	}
}

// ParseDuplicatePolicy converts a configuration string to DuplicatePolicy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "overwrite":
		return DuplicateOverwrite, nil
	case "error":
		return DuplicateReject, nil
	default:
		return DuplicateOverwrite, fmt.Errorf("invalid duplicate policy %q (expected overwrite|error)", s)
	}
}

// BuildOptions configures Build.
type BuildOptions struct {
	// Name overrides the provider's library name.
	Name       string
	Scalars    ScalarPolicy
	Duplicates DuplicatePolicy
	// Reporter receives non-fatal findings. May be nil.
	Reporter diag.Reporter
}

// Build reads every descriptor from p and builds the library in one pass.
func Build(p meta.Provider, opts BuildOptions) (*Library, error) {
	descs, err := p.Types()
	if err != nil {
		return nil, fmt.Errorf("types: reading descriptors: %w", err)
	}
	name := opts.Name
	if name == "" {
		name = p.Name()
	}
	return BuildFromDescs(name, descs, opts)
}

// BuildFromDescs builds a library from already-loaded descriptors.
// Descriptors that are neither interfaces nor structs are skipped.
func BuildFromDescs(name string, descs []meta.TypeDesc, opts BuildOptions) (*Library, error) {
	b := builder{opts: opts, lib: NewLibrary(canonicalName(name))}
	for i := range descs {
		if err := b.add(&descs[i]); err != nil {
			return nil, err
		}
	}
	return b.lib, nil
}

type builder struct {
	opts BuildOptions
	lib  *Library
}

// canonicalName NFC-normalizes identifiers so by-name lookups do not depend
// on how the provider composed its Unicode.
func canonicalName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func (b *builder) add(d *meta.TypeDesc) error {
	name := canonicalName(d.Name)
	var (
		def TypeDef
		err error
	)
	switch d.Kind {
	case meta.KindStruct:
		if name == "" {
			return fmt.Errorf("types: struct descriptor without name")
		}
		def, err = b.structDef(name, d)
	case meta.KindInterface:
		if name == "" {
			return fmt.Errorf("types: interface descriptor without name")
		}
		def, err = b.interfaceDef(name, d)
	default:
		diag.Info(b.opts.Reporter, diag.MetaSkippedKind, name, "skipped: not an interface or struct")
		return nil
	}
	if err != nil {
		return err
	}
	if _, exists := b.lib.Lookup(name); exists {
		if b.opts.Duplicates == DuplicateReject {
			return &DuplicateError{Name: name}
		}
		diag.Warn(b.opts.Reporter, diag.DefDuplicate, name, "definition overwritten by a later "+def.Kind())
	}
	b.lib.Define(name, def)
	return nil
}

func (b *builder) structDef(name string, d *meta.TypeDesc) (*Struct, error) {
	fields, err := b.params(name, d.Fields)
	if err != nil {
		return nil, err
	}
	return &Struct{Fields: fields}, nil
}

func (b *builder) interfaceDef(name string, d *meta.TypeDesc) (*Interface, error) {
	text := strings.TrimSpace(d.GUID)
	if text == "" {
		return nil, &GUIDError{Interface: name}
	}
	guid, err := uuid.Parse(text)
	if err != nil {
		return nil, &GUIDError{Interface: name, Text: text, Err: err}
	}
	iface := &Interface{GUID: guid, Methods: make([]Method, 0, len(d.Methods))}
	for i := range d.Methods {
		md := &d.Methods[i]
		mname := canonicalName(md.Name)
		if !md.PreserveSig {
			return nil, &MethodContractError{Interface: name, Method: mname}
		}
		subject := name + "." + mname
		m := Method{Name: mname}
		if md.Return != nil {
			m.Return, err = b.typeRef(subject, *md.Return)
			if err != nil {
				return nil, err
			}
		}
		m.Params, err = b.params(subject, md.Params)
		if err != nil {
			return nil, err
		}
		iface.Methods = append(iface.Methods, m)
	}
	if len(iface.Methods) == 0 {
		diag.Info(b.opts.Reporter, diag.MetaEmptyInterface, name, "interface declares no methods")
	}
	return iface, nil
}

func (b *builder) params(owner string, in []meta.ParamDesc) ([]Param, error) {
	out := make([]Param, 0, len(in))
	for _, pd := range in {
		pname := canonicalName(pd.Name)
		ty, err := b.typeRef(owner+"."+pname, pd.Type)
		if err != nil {
			return nil, err
		}
		out = append(out, Param{Name: pname, Type: ty})
	}
	return out, nil
}

func (b *builder) typeRef(subject string, d meta.TypeRefDesc) (TypeRef, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("types: %s: %w", subject, err)
	}
	return b.typeRefUnchecked(subject, d)
}

func (b *builder) typeRefUnchecked(subject string, d meta.TypeRefDesc) (TypeRef, error) {
	switch {
	case d.Pointer != nil:
		elem, err := b.typeRefUnchecked(subject, *d.Pointer)
		if err != nil {
			return nil, err
		}
		return PointerTo(elem), nil
	case d.Scalar != "":
		tag := d.Scalar
		if c, ok := meta.CanonicalScalar(tag); ok {
			tag = c
		}
		if k, ok := BasicKindOf(tag); ok {
			return Basic{Kind: k}, nil
		}
		if b.opts.Scalars == ScalarStrict {
			return nil, &UnknownScalarError{Subject: subject, Tag: d.Scalar}
		}
		diag.Warn(b.opts.Reporter, diag.DefUnknownScalar, subject,
			fmt.Sprintf("scalar kind %q kept as opaque reference", d.Scalar))
		return Named{Name: canonicalName(d.Scalar)}, nil
	default:
		return Named{Name: canonicalName(d.Name)}, nil
	}
}
