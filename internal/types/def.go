package types

import "github.com/google/uuid"

// TypeDef is a named definition: *Struct or *Interface.
type TypeDef interface {
	typeDef()
	// Kind names the variant ("struct" or "interface").
	Kind() string
}

// Param is a named, typed slot: a struct field or a method argument.
type Param struct {
	Name string
	Type TypeRef
}

// Struct is a value aggregate. Field order is declaration order.
type Struct struct {
	Fields []Param
}

// Method is one slot of an interface. Return is nil for void.
type Method struct {
	Name   string
	Return TypeRef
	Params []Param
}

// Interface is a virtual-dispatch contract. Method order is dispatch order.
type Interface struct {
	GUID    uuid.UUID
	Methods []Method
}

func (*Struct) typeDef()    {}
func (*Interface) typeDef() {}

func (*Struct) Kind() string    { return "struct" }
func (*Interface) Kind() string { return "interface" }

// GUIDString returns the canonical hyphenated form of the identifier.
func (i *Interface) GUIDString() string {
	return i.GUID.String()
}
