package types

import "fmt"

// BasicKind enumerates the scalar types the model can represent.
// The set is closed.
type BasicKind uint8

const (
	I8 BasicKind = iota
	U8
	I16
	U16
	I32
	U32
	I64
	U64
	Bool
)

// BasicKinds lists every BasicKind in declaration order.
var BasicKinds = []BasicKind{I8, U8, I16, U16, I32, U32, I64, U64, Bool}

func (k BasicKind) String() string {
	switch k {
	case I8:
		return "I8"
	case U8:
		return "U8"
	case I16:
		return "I16"
	case U16:
		return "U16"
	case I32:
		return "I32"
	case U32:
		return "U32"
	case I64:
		return "I64"
	case U64:
		return "U64"
	case Bool:
		return "Bool"
	default:
		return fmt.Sprintf("BasicKind(%d)", k)
	}
}

// Width captures the precision of integer kinds.
type Width uint8

const (
	WidthAny Width = 0
	Width8   Width = 8
	Width16  Width = 16
	Width32  Width = 32
	Width64  Width = 64
)

// Width returns the bit width of an integer kind, WidthAny for Bool.
func (k BasicKind) Width() Width {
	switch k {
	case I8, U8:
		return Width8
	case I16, U16:
		return Width16
	case I32, U32:
		return Width32
	case I64, U64:
		return Width64
	default:
		return WidthAny
	}
}

// Signed reports whether k is a signed integer kind.
func (k BasicKind) Signed() bool {
	switch k {
	case I8, I16, I32, I64:
		return true
	}
	return false
}

// Valid reports whether k is one of the declared kinds.
func (k BasicKind) Valid() bool {
	return k <= Bool
}

// BasicKindOf maps a canonical scalar tag from the metadata provider.
// Tags outside the closed set report false.
func BasicKindOf(tag string) (BasicKind, bool) {
	switch tag {
	case "int8":
		return I8, true
	case "uint8":
		return U8, true
	case "int16":
		return I16, true
	case "uint16":
		return U16, true
	case "int32":
		return I32, true
	case "uint32":
		return U32, true
	case "int64":
		return I64, true
	case "uint64":
		return U64, true
	case "bool":
		return Bool, true
	}
	return 0, false
}
