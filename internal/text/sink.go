package text

import "io"

// Sink receives rendered lines in order, without trailing newlines.
type Sink interface {
	WriteLine(line string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(line string)

// WriteLine calls f(line).
func (f SinkFunc) WriteLine(line string) { f(line) }

// Collector keeps rendered lines in memory.
type Collector struct {
	lines []string
}

// WriteLine appends line.
func (c *Collector) WriteLine(line string) {
	c.lines = append(c.lines, line)
}

// Lines returns the collected lines. The slice is owned by the collector.
func (c *Collector) Lines() []string {
	return c.lines
}

// Len reports how many lines were collected.
func (c *Collector) Len() int {
	return len(c.lines)
}

// WriterSink writes newline-terminated lines to an io.Writer. The first write
// error is kept and every later line is dropped.
type WriterSink struct {
	w   io.Writer
	err error
	buf []byte
}

// NewWriterSink creates a WriterSink over w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteLine writes line followed by '\n'.
func (s *WriterSink) WriteLine(line string) {
	if s.err != nil {
		return
	}
	s.buf = append(s.buf[:0], line...)
	s.buf = append(s.buf, '\n')
	_, s.err = s.w.Write(s.buf)
}

// Err returns the first write error, if any.
func (s *WriterSink) Err() error {
	return s.err
}
