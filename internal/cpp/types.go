package cpp

import (
	"fmt"
	"strconv"

	"cidl/internal/types"
)

// UnresolvedError reports a Named reference with no definition in the
// library. It aborts the whole header.
type UnresolvedError struct {
	Name string
	// Subject is the field or method that carries the reference.
	Subject string
}

func (e *UnresolvedError) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("cpp: unresolved type %q", e.Name)
	}
	return fmt.Sprintf("cpp: %s: unresolved type %q", e.Subject, e.Name)
}

// BasicType maps a scalar kind to its fixed-width native name. Kinds
// outside the declared set render as "void".
func BasicType(k types.BasicKind, boolType string) string {
	switch {
	case k == types.Bool:
		if boolType == "" {
			return DefaultBoolType
		}
		return boolType
	case !k.Valid():
		return "void"
	}
	prefix := "uint"
	if k.Signed() {
		prefix = "int"
	}
	return prefix + strconv.Itoa(int(k.Width())) + "_t"
}

// Resolve renders t with default options. See Emitter.cppType.
func Resolve(t types.TypeRef, lib *types.Library) (string, error) {
	e := newEmitter(lib, Options{})
	return e.cppType(t)
}

func (e *Emitter) cppType(t types.TypeRef) (string, error) {
	switch t := t.(type) {
	case nil:
		return "void", nil
	case types.Basic:
		if !t.Kind.Valid() {
			return "", fmt.Errorf("cpp: invalid scalar kind %s", t.Kind)
		}
		return BasicType(t.Kind, e.opt.BoolType), nil
	case *types.Pointer:
		inner, err := e.cppType(t.Elem)
		if err != nil {
			return "", err
		}
		return inner + "*", nil
	case types.Named:
		def, ok := e.lib.Lookup(t.Name)
		if !ok {
			return "", &UnresolvedError{Name: t.Name}
		}
		if _, isIface := def.(*types.Interface); isIface {
			return t.Name + "*", nil
		}
		return t.Name, nil
	default:
		return "", fmt.Errorf("cpp: unsupported type reference %T", t)
	}
}
