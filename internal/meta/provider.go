package meta

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Provider yields the type descriptors of one library.
type Provider interface {
	// Name is the library name the provider knows, possibly empty.
	Name() string
	// Types returns descriptors in discovery order.
	Types() ([]TypeDesc, error)
}

// Snapshot is an in-memory provider. Both on-disk formats decode into it.
type Snapshot struct {
	Library string
	Descs   []TypeDesc
}

func (s *Snapshot) Name() string { return s.Library }

func (s *Snapshot) Types() ([]TypeDesc, error) {
	if s == nil {
		return nil, nil
	}
	return s.Descs, nil
}

// Format identifies an on-disk descriptor format.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatTOML
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".mp", ".msgpack":
		return FormatMsgpack
	default:
		return FormatUnknown
	}
}

// Open reads a descriptor file in whichever format its extension names.
func Open(path string) (*Snapshot, error) {
	switch DetectFormat(path) {
	case FormatTOML:
		return ReadTOMLFile(path)
	case FormatMsgpack:
		return ReadSnapshotFile(path)
	default:
		return nil, fmt.Errorf("meta: %s: unsupported descriptor format (want .toml, .mp or .msgpack)", path)
	}
}

// LibraryNameFromPath derives a library name from a descriptor path.
func LibraryNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
