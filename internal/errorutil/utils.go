package errorutil

import "errors"

// IsGrammarErr reports whether err was produced by a syntax check.
func IsGrammarErr(err error) bool {
	var e interface{ Grammar() bool }
	return errors.As(err, &e) && e.Grammar()
}

// IsInvalidArgument reports whether err wraps [ErrInvalidArgument].
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
