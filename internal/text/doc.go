// Package text turns a tree of Line and Block items into indented lines.
//
// It knows nothing about the type model: emitters build item trees, and
// Render serializes them into a Sink. The package performs no I/O of its own;
// WriterSink is the only adapter that touches an io.Writer and it is handed in
// by the caller.
package text
