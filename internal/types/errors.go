package types

import "fmt"

// MethodContractError reports a method descriptor without the
// preserve-signature marker. Model construction stops at the first one.
type MethodContractError struct {
	Interface string
	Method    string
}

func (e *MethodContractError) Error() string {
	return fmt.Sprintf("types: %s.%s: method must preserve its native signature", e.Interface, e.Method)
}

// UnknownScalarError reports a scalar tag outside the closed BasicKind set
// when building with ScalarStrict.
type UnknownScalarError struct {
	Subject string
	Tag     string
}

func (e *UnknownScalarError) Error() string {
	return fmt.Sprintf("types: %s: unsupported scalar kind %q", e.Subject, e.Tag)
}

// DuplicateError reports a second definition of a name when building with
// DuplicateReject.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("types: duplicate definition %q", e.Name)
}

// GUIDError reports an interface whose identifier is missing or malformed.
type GUIDError struct {
	Interface string
	Text      string
	Err       error
}

func (e *GUIDError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("types: %s: interface has no GUID", e.Interface)
	}
	return fmt.Sprintf("types: %s: invalid GUID %q: %v", e.Interface, e.Text, e.Err)
}

func (e *GUIDError) Unwrap() error { return e.Err }
