// Package listing renders a library as a cidl listing: one `struct` or
// `[Guid(...)] interface` declaration per definition, in library order.
//
// The listing never resolves names. A Named reference prints as its bare
// name even when the library has no definition for it.
package listing
