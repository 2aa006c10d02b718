// Package errlist implements the descriptor pool's error-accumulation
// model: every validation failure during a build is collected
// as a structured value rather than raised immediately, so that a single
// build reports every independent problem instead of stopping at the
// first, in the style of a compiler diagnostics reporter, but the error
// values here carry a fixed taxonomy instead of free-form formatted
// strings.
package errlist

import (
	"fmt"
	"strings"
)

// Label cites a single element within a file: which file, and the
// source-location path identifying the element inside that file's
// FileDescriptorProto. Rendering a Label to a human-readable position
// (line/column) is outside this package's scope.
type Label struct {
	FileName string
	Path     []int32
	Message  string
}

func (l Label) String() string {
	return fmt.Sprintf("%s: %s (path=%v)", l.FileName, l.Message, l.Path)
}

// Kind identifies which violation an Error represents.
type Kind int

const (
	KindFileNotFound Kind = iota
	KindInvalidImportIndex
	KindNameNotFound
	KindInvalidType
	KindDuplicateName
	KindDuplicateFieldNumber
	KindDuplicateFieldJSONName
	KindDuplicateEnumNumber
	KindInvalidFieldNumber
	KindFieldNumberInReservedRange
	KindFieldNumberInExtensionRange
	KindExtensionNumberOutOfRange
	KindEnumNumberInReservedRange
	KindInvalidOneofIndex
	KindInvalidFieldDefault
	KindMissingRequiredField
	KindUnknownSyntax
)

func (k Kind) String() string {
	switch k {
	case KindFileNotFound:
		return "FileNotFound"
	case KindInvalidImportIndex:
		return "InvalidImportIndex"
	case KindNameNotFound:
		return "NameNotFound"
	case KindInvalidType:
		return "InvalidType"
	case KindDuplicateName:
		return "DuplicateName"
	case KindDuplicateFieldNumber:
		return "DuplicateFieldNumber"
	case KindDuplicateFieldJSONName:
		return "DuplicateFieldJsonName"
	case KindDuplicateEnumNumber:
		return "DuplicateEnumNumber"
	case KindInvalidFieldNumber:
		return "InvalidFieldNumber"
	case KindFieldNumberInReservedRange:
		return "FieldNumberInReservedRange"
	case KindFieldNumberInExtensionRange:
		return "FieldNumberInExtensionRange"
	case KindExtensionNumberOutOfRange:
		return "ExtensionNumberOutOfRange"
	case KindEnumNumberInReservedRange:
		return "EnumNumberInReservedRange"
	case KindInvalidOneofIndex:
		return "InvalidOneofIndex"
	case KindInvalidFieldDefault:
		return "InvalidFieldDefault"
	case KindMissingRequiredField:
		return "MissingRequiredField"
	case KindUnknownSyntax:
		return "UnknownSyntax"
	default:
		return "Unknown"
	}
}

// Error is a single structured error produced during a pool build. Its
// fields are a superset of what any one Kind needs; only the fields
// relevant to Kind are populated.
type Error struct {
	Kind Kind

	// Name-bearing errors (FileNotFound, NameNotFound, InvalidType,
	// DuplicateName, DuplicateFieldJsonName).
	Name string

	// Number-bearing errors.
	Number int64

	// RangeStart/RangeEnd bound a reserved or extension range. For enum
	// reserved ranges RangeEnd is inclusive; for every other range it is
	// exclusive; see DESIGN.md for why this asymmetry is preserved
	// rather than normalized.
	RangeStart int64
	RangeEnd   int64

	// Expected describes the kind of definition that was wanted
	// (InvalidType).
	Expected string

	// Value and ValueKind describe a default-value parse failure
	// (InvalidFieldDefault).
	Value     string
	ValueKind string

	// Message names the owning message for ExtensionNumberOutOfRange.
	Message string

	// Found is the primary site of the error. Duplicate-* errors leave it
	// empty and cite First and Second instead.
	Found Label
	// First/Second are the two colliding sites for duplicate-* errors.
	First  Label
	Second Label
	// Defined cites where a name that resolved to the wrong kind was
	// actually declared (InvalidType).
	Defined Label
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	switch e.Kind {
	case KindFileNotFound:
		fmt.Fprintf(&b, ": %q not found (%s)", e.Name, e.Found)
	case KindInvalidImportIndex:
		fmt.Fprintf(&b, " (%s)", e.Found)
	case KindNameNotFound:
		fmt.Fprintf(&b, ": %q not found (%s)", e.Name, e.Found)
	case KindInvalidType:
		fmt.Fprintf(&b, ": %q is not %s (found at %s, defined at %s)", e.Name, e.Expected, e.Found, e.Defined)
	case KindDuplicateName:
		fmt.Fprintf(&b, ": %q defined at both %s and %s", e.Name, e.First, e.Second)
	case KindDuplicateFieldNumber:
		fmt.Fprintf(&b, ": number %d defined at both %s and %s", e.Number, e.First, e.Second)
	case KindDuplicateFieldJSONName:
		fmt.Fprintf(&b, ": json_name %q defined at both %s and %s", e.Name, e.First, e.Second)
	case KindDuplicateEnumNumber:
		fmt.Fprintf(&b, ": number %d defined at both %s and %s", e.Number, e.First, e.Second)
	case KindInvalidFieldNumber:
		fmt.Fprintf(&b, ": %d is not a valid field number (%s)", e.Number, e.Found)
	case KindFieldNumberInReservedRange:
		fmt.Fprintf(&b, ": %d is in reserved range [%d, %d) (%s, reserved at %s)", e.Number, e.RangeStart, e.RangeEnd, e.Found, e.First)
	case KindFieldNumberInExtensionRange:
		fmt.Fprintf(&b, ": %d is in extension range [%d, %d) (%s, range at %s)", e.Number, e.RangeStart, e.RangeEnd, e.Found, e.First)
	case KindExtensionNumberOutOfRange:
		fmt.Fprintf(&b, ": %d is not in any extension range of %s (%s)", e.Number, e.Message, e.Found)
	case KindEnumNumberInReservedRange:
		fmt.Fprintf(&b, ": %d is in reserved range [%d, %d] (%s, reserved at %s)", e.Number, e.RangeStart, e.RangeEnd, e.Found, e.First)
	case KindInvalidOneofIndex:
		fmt.Fprintf(&b, " (%s)", e.Found)
	case KindInvalidFieldDefault:
		fmt.Fprintf(&b, ": %q is not a valid default for %s (%s)", e.Value, e.ValueKind, e.Found)
	case KindMissingRequiredField:
		fmt.Fprintf(&b, " (%s)", e.Found)
	case KindUnknownSyntax:
		fmt.Fprintf(&b, ": %q (%s)", e.Name, e.Found)
	}
	return b.String()
}

// List accumulates errors over the course of a build. A zero-value List
// is ready to use. List implements error so a completed build with one
// or more errors can be returned to callers as a single error value;
// Unwrap exposes the individual errors for errors.As/errors.Is-style
// inspection.
type List struct {
	errs []*Error
}

// Add appends an error to the list.
func (l *List) Add(err *Error) {
	l.errs = append(l.errs, err)
}

// Len reports how many errors have been accumulated.
func (l *List) Len() int {
	return len(l.errs)
}

// Errors returns the accumulated errors in the order they were added,
// which is the deterministic visitor traversal order.
func (l *List) Errors() []*Error {
	return l.errs
}

// AsError returns a *List ready to use as an error value, or nil if no
// errors were accumulated.
func (l *List) AsError() error {
	if l == nil || len(l.errs) == 0 {
		return nil
	}
	return l
}

func (l *List) Error() string {
	if len(l.errs) == 1 {
		return l.errs[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d errors building descriptor pool:", len(l.errs))
	for _, e := range l.errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Unwrap lets callers use errors.Join-style inspection over the
// accumulated errors.
func (l *List) Unwrap() []error {
	out := make([]error, len(l.errs))
	for i, e := range l.errs {
		out[i] = e
	}
	return out
}
