package types

// TypeRef is a reference to a type: Basic, *Pointer or Named.
// A nil TypeRef in a return slot means the method returns nothing.
type TypeRef interface {
	typeRef()
}

// Basic is a scalar of a fixed kind.
type Basic struct {
	Kind BasicKind
}

// Pointer points at Elem. Elem is never nil.
type Pointer struct {
	Elem TypeRef
}

// Named refers to a definition of the owning Library by name. It is resolved
// only when a backend needs to know what the name is.
type Named struct {
	Name string
}

func (Basic) typeRef()    {}
func (*Pointer) typeRef() {}
func (Named) typeRef()    {}

// PointerTo wraps elem in a Pointer.
func PointerTo(elem TypeRef) *Pointer {
	return &Pointer{Elem: elem}
}

// Deref strips every Pointer layer and returns the innermost reference along
// with the number of layers removed.
func Deref(t TypeRef) (TypeRef, int) {
	depth := 0
	for {
		p, ok := t.(*Pointer)
		if !ok {
			return t, depth
		}
		t = p.Elem
		depth++
	}
}

// NamedRefs calls fn for every Named reference reachable from t.
func NamedRefs(t TypeRef, fn func(Named)) {
	inner, _ := Deref(t)
	if n, ok := inner.(Named); ok {
		fn(n)
	}
}
