package cpp

const (
	DefaultGuard             = "#pragma once"
	DefaultDispatchRoot      = "IUnknown"
	DefaultCallingConvention = "__stdcall"
	DefaultBoolType          = "BOOL"
	DefaultHeaderExt         = ".h"
)

// Options tunes the header text. Zero values fall back to the defaults.
type Options struct {
	// Guard is the single preamble line.
	Guard string
	// Namespace wraps every declaration; defaults to the library name.
	Namespace string
	// DispatchRoot is the base every interface derives from.
	DispatchRoot string
	// CallingConvention is the marker placed before each method name.
	CallingConvention string
	// BoolType is the platform boolean alias Bool maps to.
	BoolType string
}

func (o Options) withDefaults(libName string) Options {
	if o.Guard == "" {
		o.Guard = DefaultGuard
	}
	if o.Namespace == "" {
		o.Namespace = libName
	}
	if o.DispatchRoot == "" {
		o.DispatchRoot = DefaultDispatchRoot
	}
	if o.CallingConvention == "" {
		o.CallingConvention = DefaultCallingConvention
	}
	if o.BoolType == "" {
		o.BoolType = DefaultBoolType
	}
	return o
}

// HeaderFileName returns the conventional header name for a library.
func HeaderFileName(libName, ext string) string {
	if ext == "" {
		ext = DefaultHeaderExt
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	return libName + ext
}
