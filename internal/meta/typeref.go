package meta

import (
	"fmt"
	"strings"
)

// scalarTags is the vocabulary of primitive spellings a descriptor may use.
// Not every tag is representable in the model: floats, chars and native-sized
// integers are scalars the model rejects or treats as opaque.
var scalarTags = map[string]string{
	"int8":    "int8",
	"sbyte":   "int8",
	"uint8":   "uint8",
	"byte":    "uint8",
	"int16":   "int16",
	"short":   "int16",
	"uint16":  "uint16",
	"ushort":  "uint16",
	"int32":   "int32",
	"int":     "int32",
	"uint32":  "uint32",
	"uint":    "uint32",
	"int64":   "int64",
	"long":    "int64",
	"uint64":  "uint64",
	"ulong":   "uint64",
	"bool":    "bool",
	"float32": "float32",
	"float":   "float32",
	"float64": "float64",
	"double":  "float64",
	"char":    "char",
	"intptr":  "intptr",
	"uintptr": "uintptr",
	"decimal": "decimal",
}

// CanonicalScalar returns the canonical spelling of a primitive tag.
// Tags are case-sensitive: "Long" is a name, not an alias of int64.
func CanonicalScalar(tag string) (string, bool) {
	c, ok := scalarTags[tag]
	return c, ok
}

// ParseTypeRef parses the compact type syntax used by descriptor files:
// a primitive tag or a name, followed by zero or more '*'.
//
//	int32      scalar
//	uint16*    pointer to scalar
//	IMy        named reference
//	S**        pointer to pointer to named
func ParseTypeRef(s string) (TypeRefDesc, error) {
	s = strings.TrimSpace(s)
	base := strings.TrimRight(s, "* \t")
	if base == "" {
		return TypeRefDesc{}, fmt.Errorf("empty type %q", s)
	}
	if strings.ContainsAny(base, "* \t") {
		return TypeRefDesc{}, fmt.Errorf("malformed type %q", s)
	}
	var d TypeRefDesc
	if _, ok := CanonicalScalar(base); ok {
		d = Scalar(base)
	} else {
		d = Named(base)
	}
	for _, r := range s[len(base):] {
		switch r {
		case '*':
			d = PointerTo(d)
		case ' ', '\t':
		default:
			return TypeRefDesc{}, fmt.Errorf("malformed type %q", s)
		}
	}
	return d, nil
}
