package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Descriptor intake
	MetaInfo           Code = 1000
	MetaSkippedKind    Code = 1001
	MetaMissingName    Code = 1002
	MetaEmptyInterface Code = 1003
	MetaBadTypeRef     Code = 1004

	// Model construction
	DefInfo           Code = 2000
	DefDuplicate      Code = 2001
	DefUnknownScalar  Code = 2002
	DefMethodContract Code = 2003
	DefBadGUID        Code = 2004

	// Emission
	EmitInfo           Code = 3000
	EmitUnresolvedName Code = 3001

	// Output
	IOInfo        Code = 4000
	IOWriteFailed Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:        "Unknown error",
	MetaInfo:           "Metadata information",
	MetaSkippedKind:    "Descriptor kind is neither interface nor struct",
	MetaMissingName:    "Descriptor has no name",
	MetaEmptyInterface: "Interface declares no methods",
	MetaBadTypeRef:     "Malformed type descriptor",
	DefInfo:            "Definition information",
	DefDuplicate:       "Duplicate definition name",
	DefUnknownScalar:   "Unknown scalar kind",
	DefMethodContract:  "Method lacks the preserve-signature marker",
	DefBadGUID:         "Malformed interface identifier",
	EmitInfo:           "Emission information",
	EmitUnresolvedName: "Named reference does not resolve in the library",
	IOInfo:             "Output information",
	IOWriteFailed:      "Failed to write output",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("MET%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("DEF%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EMT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
