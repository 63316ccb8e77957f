package listing

import (
	"strings"

	"cidl/internal/text"
	"cidl/internal/types"
)

// Emit renders every definition of lib.
func Emit(lib *types.Library) []text.Item {
	var out []text.Item
	_ = lib.Each(func(name string, def types.TypeDef) error {
		out = append(out, Def(name, def)...)
		return nil
	})
	return out
}

// Def renders a single definition.
func Def(name string, def types.TypeDef) []text.Item {
	switch d := def.(type) {
	case *types.Struct:
		return printStruct(name, d)
	case *types.Interface:
		return printInterface(name, d)
	}
	return nil
}

func printStruct(name string, s *types.Struct) []text.Item {
	body := make(text.Block, 0, len(s.Fields))
	for _, f := range s.Fields {
		body = append(body, text.Line(TypeString(f.Type)+" "+f.Name+";"))
	}
	return text.Curly("struct "+name, body)
}

func printInterface(name string, i *types.Interface) []text.Item {
	body := make(text.Block, 0, len(i.Methods))
	for _, m := range i.Methods {
		body = append(body, text.Line(MethodString(m)))
	}
	out := []text.Item{text.Line("[Guid(" + i.GUIDString() + ")]")}
	return append(out, text.Curly("interface "+name, body)...)
}

// MethodString renders `ret name(type arg, ...);`.
func MethodString(m types.Method) string {
	var sb strings.Builder
	sb.WriteString(TypeString(m.Return))
	sb.WriteByte(' ')
	sb.WriteString(m.Name)
	sb.WriteByte('(')
	for i, p := range m.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(TypeString(p.Type))
		sb.WriteByte(' ')
		sb.WriteString(p.Name)
	}
	sb.WriteString(");")
	return sb.String()
}

// TypeString renders a type reference without resolving it. A nil reference
// is void.
func TypeString(t types.TypeRef) string {
	switch t := t.(type) {
	case types.Basic:
		return t.Kind.String()
	case *types.Pointer:
		return TypeString(t.Elem) + "*"
	case types.Named:
		return t.Name
	default:
		return "void"
	}
}
