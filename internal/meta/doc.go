// Package meta is the boundary to the metadata provider.
//
// A provider yields an ordered list of TypeDesc records: interfaces with
// their GUID and method descriptors, structs with their field descriptors,
// and anything else tagged KindOther (which model construction skips).
// Two on-disk forms are supported: a hand-written TOML descriptor file and a
// msgpack snapshot produced by `cidl snapshot`.
package meta
