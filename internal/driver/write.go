package driver

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cidl/internal/project"
	"cidl/internal/text"
)

// WriteError reports a failed output write.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("driver: write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// WriteLines writes newline-terminated lines to w.
func WriteLines(w io.Writer, lines []string) error {
	sink := text.NewWriterSink(w)
	for _, l := range lines {
		sink.WriteLine(l)
	}
	return sink.Err()
}

// WriteLinesAtomic replaces path with lines through a temp file and rename.
// When the file already holds exactly this content it is left untouched and
// changed is false.
func WriteLinesAtomic(path string, lines []string) (changed bool, err error) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, lines); err != nil {
		return false, &WriteError{Path: path, Err: err}
	}
	if old, ok, err := project.DigestFile(path); err == nil && ok && old == project.DigestBytes(buf.Bytes()) {
		return false, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, &WriteError{Path: path, Err: err}
	}
	f, err := os.CreateTemp(dir, ".cidl-*")
	if err != nil {
		return false, &WriteError{Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	if _, err = f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return false, &WriteError{Path: path, Err: err}
	}
	if err = f.Close(); err != nil {
		return false, &WriteError{Path: path, Err: err}
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return false, &WriteError{Path: path, Err: err}
	}
	return true, nil
}
