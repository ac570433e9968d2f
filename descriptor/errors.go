package descriptor

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed covers a missing separator, too few path or rest
	// segments, bad arity for a parameter kind and unknown sub-keywords.
	ErrMalformed = errors.New("malformed descriptor")

	// ErrInvalidSlot is returned when a positional slot token does not
	// start with B, S or a digit.
	ErrInvalidSlot = errors.New("invalid slot")
)

// ParseError describes why an input string was rejected.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v: %q", e.Err, e.Input)
	}
	return fmt.Sprintf("%v: %s: %q", e.Err, e.Reason, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func malformed(input, format string, args ...any) error {
	return &ParseError{Input: input, Reason: fmt.Sprintf(format, args...), Err: ErrMalformed}
}

func invalidSlot(input, token string) error {
	return &ParseError{Input: input, Reason: fmt.Sprintf("slot %q", token), Err: ErrInvalidSlot}
}
