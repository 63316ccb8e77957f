package driver

import (
	"cidl/internal/cpp"
	"cidl/internal/types"
)

// Target selects which outputs a run produces.
type Target uint8

const (
	TargetListing Target = 1 << iota
	TargetHeader

	TargetAll = TargetListing | TargetHeader
)

// Has reports whether t includes all bits of o.
func (t Target) Has(o Target) bool { return t&o == o }

func (t Target) String() string {
	switch t {
	case TargetListing:
		return "listing"
	case TargetHeader:
		return "header"
	case TargetAll:
		return "all"
	default:
		return "none"
	}
}

// Options configures a pipeline run.
type Options struct {
	// Input is a descriptor (.toml) or snapshot (.mp, .msgpack) path.
	Input string
	// Library overrides the library name reported by the input.
	Library string

	Targets    Target
	Scalars    types.ScalarPolicy
	Duplicates types.DuplicatePolicy

	// Indent is the per-level indent of both outputs.
	Indent string
	Header cpp.Options

	// OutDir receives the header file. Empty means no file is written and
	// the rendered lines are only returned in Result.
	OutDir    string
	HeaderExt string
	// ListingExt, when set, also writes the listing to OutDir as
	// <library><ListingExt>.
	ListingExt string

	MaxDiagnostics   int
	WarningsAsErrors bool
	EnableTimings    bool
}

func (o Options) withDefaults() Options {
	if o.Targets == 0 {
		o.Targets = TargetAll
	}
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = 100
	}
	if o.HeaderExt == "" {
		o.HeaderExt = cpp.DefaultHeaderExt
	}
	return o
}
