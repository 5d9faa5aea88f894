package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindOutOfMemory         ErrKind = iota // no contiguous free run of palette slots
	ErrKindInvalidParameter                   // effect strength, count or index outside its domain
	ErrKindColorCountMismatch                 // set colors with a different width than the allocation
	ErrKindUnknownCompression                 // decompression dispatch hit an unknown kind
	ErrKindCorruptData                        // compressed stream is truncated or malformed
	ErrKindUnsupported                        // valid feature we don't support on this platform
)

// String returns a short name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindOutOfMemory:
		return "out-of-palette-memory"
	case ErrKindInvalidParameter:
		return "invalid-parameter"
	case ErrKindColorCountMismatch:
		return "color-count-mismatch"
	case ErrKindUnknownCompression:
		return "unknown-compression"
	case ErrKindCorruptData:
		return "corrupt-data"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so detailed errors
// built with Errorf still match the sentinels below through errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Sentinels commonly returned by implementations.
var (
	// ErrOutOfPaletteMemory indicates that no contiguous run of free slots could hold the palette.
	ErrOutOfPaletteMemory = &Error{Kind: ErrKindOutOfMemory, Msg: "out of palette memory"}
	// ErrInvalidParameter indicates an argument outside its documented domain.
	ErrInvalidParameter = &Error{Kind: ErrKindInvalidParameter, Msg: "invalid parameter"}
	// ErrColorCountMismatch indicates new colors don't match the handle's allocation width.
	ErrColorCountMismatch = &Error{Kind: ErrKindColorCountMismatch, Msg: "colors count mismatch"}
	// ErrUnknownCompression indicates an unrecognized compression kind.
	ErrUnknownCompression = &Error{Kind: ErrKindUnknownCompression, Msg: "unknown compression type"}
	// ErrCorruptData indicates a compressed stream that can't be expanded.
	ErrCorruptData = &Error{Kind: ErrKindCorruptData, Msg: "corrupt compressed data"}
	// ErrUnsupported indicates a recognized but unsupported feature on this platform.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported feature"}
)
