// Package diag defines the diagnostic records produced while building and
// emitting a library.
//
// Fatal conditions travel as Go errors; diag only carries the findings that
// do not stop the run: duplicate definitions that were overwritten, scalar
// kinds that fell back to opaque references, descriptors that were skipped.
//
// Producers emit through a Reporter so they stay decoupled from storage.
// BagReporter collects into a Bag, which the CLI sorts and prints.
//
// Package diag does no formatting beyond the single-line Format helper and no
// IO.
package diag
