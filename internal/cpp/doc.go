// Package cpp renders a library as a C++ header for a COM-style
// virtual-dispatch ABI.
//
// Every interface becomes an abstract struct deriving from the dispatch root
// with one pure-virtual, fixed-calling-convention method per slot, in
// declaration order. Structs are plain aggregates. Named references are
// resolved against the library: interfaces are always held through a
// pointer, structs by value.
package cpp
