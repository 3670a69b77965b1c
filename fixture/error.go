package fixture

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Predefined errors (sentinel values).
//
// Every failure mode of fixture parsing and minicore resolution wraps one of
// these, so callers can classify errors with errors.Is while the attached
// attributes pinpoint the offending line or name.
var (
	ErrFixturePath    = NewError("fixture path does not start with '/'")
	ErrMetaIndent     = NewError("metadata line has invalid indentation")
	ErrSuspiciousLine = NewError("body line looks like unmarked metadata")
	ErrMetaToken      = NewError("metadata entry is not a key:value pair")
	ErrUnknownMetaKey = NewError("unknown metadata key")
	ErrDuplicateFlag  = NewError("duplicate minicore flag")
	ErrInvalidFlag    = NewError("invalid minicore flag")
	ErrUnusedFlag     = NewError("unused minicore flag")
	ErrPreamble       = NewError("minicore preamble is not terminated by a blank line")
	ErrRegionMismatch = NewError("unbalanced region markers")
	ErrRegionName     = NewError("region name starts with whitespace")
)

// Error represents a parse error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an Error with the same base message.
// With and Wrap return copies, so sentinel identity is carried by the
// message rather than the pointer.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// maxSuggestions caps the number of fuzzy matches attached to name errors.
const maxSuggestions = 3

// withSuggestions attaches fuzzy-matched candidates to an invalid-name error
// so the message reads "did you mean" instead of a bare rejection. Matching
// runs in both directions since the typo may add or drop characters.
func (e *Error) withSuggestions(name string, candidates []string) *Error {
	var nearest []string

	for _, m := range fuzzy.Find(name, candidates) {
		nearest = append(nearest, m.Str)
	}

	if len(nearest) == 0 {
		for _, candidate := range candidates {
			if len(fuzzy.Find(candidate, []string{name})) > 0 {
				nearest = append(nearest, candidate)
			}
		}
	}

	if len(nearest) == 0 {
		return e
	}

	if len(nearest) > maxSuggestions {
		nearest = nearest[:maxSuggestions]
	}

	return e.With(slog.String("did_you_mean", strings.Join(nearest, ", ")))
}
