package meta

import (
	"fmt"
	"strings"
)

// DescKind tags a type descriptor.
type DescKind uint8

const (
	KindOther DescKind = iota
	KindInterface
	KindStruct
)

func (k DescKind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindInterface:
		return "interface"
	case KindStruct:
		return "struct"
	default:
		return fmt.Sprintf("DescKind(%d)", k)
	}
}

// ParseKind maps a descriptor kind name. Unrecognized names are KindOther:
// enums, classes and delegates all end up skipped.
func ParseKind(s string) DescKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "interface":
		return KindInterface
	case "struct":
		return KindStruct
	default:
		return KindOther
	}
}

// TypeDesc describes one type discovered by the provider.
type TypeDesc struct {
	Kind    DescKind
	Name    string
	GUID    string // interfaces only
	Methods []MethodDesc
	Fields  []ParamDesc
}

// MethodDesc describes an interface method.
type MethodDesc struct {
	Name   string
	Return *TypeRefDesc // nil means the method returns nothing
	Params []ParamDesc
	// PreserveSig marks the signature as emitted exactly as declared.
	// Every method must carry it.
	PreserveSig bool
}

// ParamDesc is a named, typed slot: a struct field or a method argument.
type ParamDesc struct {
	Name string
	Type TypeRefDesc
}

// TypeRefDesc is exactly one of: a scalar tag, a pointer, or a bare name.
type TypeRefDesc struct {
	Scalar  string
	Pointer *TypeRefDesc
	Name    string
}

// Scalar returns a scalar descriptor.
func Scalar(tag string) TypeRefDesc { return TypeRefDesc{Scalar: tag} }

// Named returns a by-name descriptor.
func Named(name string) TypeRefDesc { return TypeRefDesc{Name: name} }

// PointerTo returns a pointer descriptor.
func PointerTo(elem TypeRefDesc) TypeRefDesc { return TypeRefDesc{Pointer: &elem} }

// Validate checks that exactly one variant is set, recursively.
func (d TypeRefDesc) Validate() error {
	set := 0
	if d.Scalar != "" {
		set++
	}
	if d.Pointer != nil {
		set++
	}
	if d.Name != "" {
		set++
	}
	if set != 1 {
		return fmt.Errorf("type descriptor must set exactly one of scalar, pointer, name (got %d)", set)
	}
	if d.Pointer != nil {
		return d.Pointer.Validate()
	}
	return nil
}

// String renders the descriptor in the compact syntax ParseTypeRef accepts.
func (d TypeRefDesc) String() string {
	switch {
	case d.Pointer != nil:
		return d.Pointer.String() + "*"
	case d.Scalar != "":
		return d.Scalar
	default:
		return d.Name
	}
}
