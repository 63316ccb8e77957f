package types

// Library maps definition names to definitions and remembers the order in
// which names were first registered.
type Library struct {
	Name  string
	names []string
	defs  map[string]TypeDef
}

// NewLibrary creates an empty library.
func NewLibrary(name string) *Library {
	return &Library{
		Name: name,
		defs: make(map[string]TypeDef),
	}
}

// Define registers def under name. Redefining a name replaces the definition
// but keeps the position of the first registration. It reports whether name
// was already present.
func (l *Library) Define(name string, def TypeDef) (replaced bool) {
	if _, ok := l.defs[name]; ok {
		l.defs[name] = def
		return true
	}
	l.names = append(l.names, name)
	l.defs[name] = def
	return false
}

// Lookup returns the definition registered under name.
func (l *Library) Lookup(name string) (TypeDef, bool) {
	if l == nil {
		return nil, false
	}
	def, ok := l.defs[name]
	return def, ok
}

// Names returns definition names in registration order. The slice is a copy.
func (l *Library) Names() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Len returns the number of definitions.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.names)
}

// Each calls fn for every definition in registration order and stops at the
// first error.
func (l *Library) Each(fn func(name string, def TypeDef) error) error {
	if l == nil {
		return nil
	}
	for _, name := range l.names {
		if err := fn(name, l.defs[name]); err != nil {
			return err
		}
	}
	return nil
}

// Unresolved returns every Named reference that has no definition, in the
// order the references appear. Each missing name is listed once.
func (l *Library) Unresolved() []string {
	var missing []string
	seen := make(map[string]bool)
	check := func(t TypeRef) {
		if t == nil {
			return
		}
		NamedRefs(t, func(n Named) {
			if _, ok := l.defs[n.Name]; ok || seen[n.Name] {
				return
			}
			seen[n.Name] = true
			missing = append(missing, n.Name)
		})
	}
	_ = l.Each(func(_ string, def TypeDef) error {
		switch d := def.(type) {
		case *Struct:
			for _, f := range d.Fields {
				check(f.Type)
			}
		case *Interface:
			for _, m := range d.Methods {
				check(m.Return)
				for _, p := range m.Params {
					check(p.Type)
				}
			}
		}
		return nil
	})
	return missing
}
