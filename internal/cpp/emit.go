package cpp

import (
	"errors"
	"strings"

	"cidl/internal/text"
	"cidl/internal/types"
)

// Emitter renders one library. It holds no state between definitions
// beyond the library and resolved options.
type Emitter struct {
	lib *types.Library
	opt Options
}

func newEmitter(lib *types.Library, opt Options) *Emitter {
	name := ""
	if lib != nil {
		name = lib.Name
	}
	return &Emitter{lib: lib, opt: opt.withDefaults(name)}
}

// Emit renders lib. Either the whole header is returned or an error; a
// dangling Named reference anywhere fails the header.
func Emit(lib *types.Library, opt Options) ([]text.Item, error) {
	e := newEmitter(lib, opt)
	body, err := e.emitDefs()
	if err != nil {
		return nil, err
	}
	out := []text.Item{text.Line(e.opt.Guard)}
	return append(out, text.Curly("namespace "+e.opt.Namespace, body)...), nil
}

func (e *Emitter) emitDefs() (text.Block, error) {
	names := e.lib.Names()
	body := make(text.Block, 0, len(names)*5)
	for _, name := range names {
		body = append(body, text.Line("struct "+name+";"))
	}
	err := e.lib.Each(func(name string, def types.TypeDef) error {
		items, err := e.emitDef(name, def)
		if err != nil {
			return err
		}
		body = append(body, items...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (e *Emitter) emitDef(name string, def types.TypeDef) ([]text.Item, error) {
	switch d := def.(type) {
	case *types.Struct:
		return e.emitStruct(name, d)
	case *types.Interface:
		return e.emitInterface(name, d)
	}
	return nil, nil
}

func (e *Emitter) emitStruct(name string, s *types.Struct) ([]text.Item, error) {
	body := make(text.Block, 0, len(s.Fields))
	for _, f := range s.Fields {
		ty, err := e.cppType(f.Type)
		if err != nil {
			return nil, withSubject(err, name+"."+f.Name)
		}
		body = append(body, text.Line(ty+" "+f.Name+";"))
	}
	return text.Curly("struct "+name, body), nil
}

func (e *Emitter) emitInterface(name string, i *types.Interface) ([]text.Item, error) {
	body := make(text.Block, 0, len(i.Methods))
	for _, m := range i.Methods {
		line, err := e.methodLine(m)
		if err != nil {
			return nil, withSubject(err, name+"."+m.Name)
		}
		body = append(body, text.Line(line))
	}
	return text.Curly("struct "+name+": "+e.opt.DispatchRoot, body), nil
}

func (e *Emitter) methodLine(m types.Method) (string, error) {
	ret, err := e.cppType(m.Return)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("virtual ")
	sb.WriteString(ret)
	sb.WriteByte(' ')
	sb.WriteString(e.opt.CallingConvention)
	sb.WriteByte(' ')
	sb.WriteString(m.Name)
	sb.WriteByte('(')
	for i, p := range m.Params {
		ty, err := e.cppType(p.Type)
		if err != nil {
			return "", err
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ty)
		sb.WriteByte(' ')
		sb.WriteString(p.Name)
	}
	sb.WriteString(") = 0;")
	return sb.String(), nil
}

func withSubject(err error, subject string) error {
	var ue *UnresolvedError
	if errors.As(err, &ue) && ue.Subject == "" {
		return &UnresolvedError{Name: ue.Name, Subject: subject}
	}
	return err
}
