package subplot

import (
	"errors"
	"fmt"
)

// Kind classifies the errors returned by this package.
type Kind string

// Error kinds. The first four are raised while resolving the inputs of a
// coordinate calculation, the others by the configuration layer and the
// coordinate utilities.
const (
	InvalidDimension          Kind = "INVALID_DIMENSION"
	InvalidGrid               Kind = "INVALID_GRID"
	SizeSpecLengthMismatch    Kind = "SIZE_SPEC_LENGTH_MISMATCH"
	SpacingSpecLengthMismatch Kind = "SPACING_SPEC_LENGTH_MISMATCH"
	InvalidConfig             Kind = "INVALID_CONFIG"
	Overflow                  Kind = "OVERFLOW"
	InvalidMerge              Kind = "INVALID_MERGE"
)

// Sentinel errors for use with errors.Is. They match any *Error of the
// same Kind.
var (
	ErrInvalidDimension          = &Error{Kind: InvalidDimension}
	ErrInvalidGrid               = &Error{Kind: InvalidGrid}
	ErrSizeSpecLengthMismatch    = &Error{Kind: SizeSpecLengthMismatch}
	ErrSpacingSpecLengthMismatch = &Error{Kind: SpacingSpecLengthMismatch}
	ErrInvalidConfig             = &Error{Kind: InvalidConfig}
	ErrOverflow                  = &Error{Kind: Overflow}
	ErrInvalidMerge              = &Error{Kind: InvalidMerge}
)

// Error describes which input (Spec) violated which constraint.
type Error struct {
	Kind    Kind   // machine readable classification
	Spec    string // offending input, e.g. "fig_size" or "hspace"
	Message string
	Cause   error // optional
}

func newError(kind Kind, spec, format string, args ...any) *Error {
	return &Error{Kind: kind, Spec: spec, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, cause error, spec, format string, args ...any) *Error {
	return &Error{Kind: kind, Spec: spec, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Spec != "" {
		msg += ": " + e.Spec
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error of the same Kind. This makes the
// package sentinels usable with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain or the empty
// Kind if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
