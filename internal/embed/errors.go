package embed

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidShape   = errors.New("invalid shape")
	ErrLimitExceeded  = errors.New("limit exceeded")
	ErrInvalidURL     = errors.New("invalid url")
	ErrUnknownColor   = errors.New("unknown color")
	ErrUnknownType    = errors.New("unknown embed type")
	ErrUnexpectedKeys = errors.New("unexpected keys")
	ErrInvalidMessage = errors.New("invalid message")
)

// ValidationError reports a value that was rejected for an embed field.
// It wraps one of the package's sentinel errors.
type ValidationError struct {
	Field  string // path of the field, e.g. "title" or "fields[3].value"
	Value  any    // offending value
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: ", e.Field)
	if e.Reason != "" {
		fmt.Fprintf(&b, "%s: ", e.Reason)
	}
	fmt.Fprintf(&b, "%s (value: %s)", e.Err, preview(e.Value))
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// UnexpectedKeysError is returned when construction parameters contain names
// which are not part of an embed.
type UnexpectedKeysError struct {
	Keys []string // sorted
}

func (e *UnexpectedKeysError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnexpectedKeys, strings.Join(e.Keys, ", "))
}

func (e *UnexpectedKeysError) Unwrap() error {
	return ErrUnexpectedKeys
}

func shapeError(field string, v any, reason string) error {
	return &ValidationError{Field: field, Value: v, Reason: reason, Err: ErrInvalidShape}
}

func tooLong(field, s string, maxLen int) error {
	return &ValidationError{
		Field:  field,
		Value:  s,
		Reason: fmt.Sprintf("%d characters exceeds maximum of %d", length(s), maxLen),
		Err:    ErrLimitExceeded,
	}
}

// preview returns a short printable form of v for error messages.
func preview(v any) string {
	const maxLen = 40
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprintf("%v", v)
		if t, truncated := Truncate(s, maxLen); truncated {
			return t
		}
		return s
	}
	t, _ := Truncate(s, maxLen)
	return fmt.Sprintf("%q", t)
}
