// Package grammar implements the character-level rules of HTTP header fields
// (RFC 7230 section 3.2) that are shared by every field, regardless of its name.
package grammar

//go:generate go tool errtrace -w .

import (
	"fmt"
	"unicode"

	"braces.dev/errtrace"
)

// Error is a syntax error kind.
type Error string

func (e Error) Error() string { return string(e) }

// Grammar marks the error as a syntax error, see errorutil.IsGrammarErr.
func (Error) Grammar() bool { return true }

const (
	ErrNonASCII    Error = "non-ASCII character"
	ErrDelimiter   Error = "reserved delimiter or whitespace"
	ErrNotLatin1   Error = "character outside of ISO-8859-1"
	ErrFormControl Error = "vertical tab or form feed"
	ErrBareCR      Error = "bare CR not followed by LF"
	ErrBareLF      Error = "bare LF not followed by folding whitespace"
	ErrTrailingEOL Error = "value must not end with CR or LF"
)

// CharError points at the character that broke a rule.
type CharError struct {
	Err  Error
	Char rune
	// Pos is a byte offset of Char.
	Pos int
}

func (e *CharError) Error() string {
	return fmt.Sprintf("%s (%q at position %d)", e.Err, e.Char, e.Pos)
}

func (e *CharError) Unwrap() error { return e.Err }

func (*CharError) Grammar() bool { return true }

// nameDelims are the separators that would break the "name: value" line structure.
var nameDelims = [unicode.MaxASCII + 1]bool{
	'\t': true,
	'\n': true,
	'\v': true,
	'\f': true,
	'\r': true,
	' ':  true,
	',':  true,
	':':  true,
	';':  true,
	'=':  true,
}

// CheckFieldName returns a [*CharError] for the first character of name
// that is not ASCII or is one of TAB, LF, VT, FF, CR, SP, ',', ':', ';', '='.
// The empty name passes.
func CheckFieldName(name string) error {
	for i, r := range name {
		switch {
		case r > unicode.MaxASCII:
			return errtrace.Wrap(&CharError{ErrNonASCII, r, i})
		case nameDelims[r]:
			return errtrace.Wrap(&CharError{ErrDelimiter, r, i})
		}
	}
	return nil
}

// IsFieldName reports whether name passes [CheckFieldName].
func IsFieldName(name string) bool { return CheckFieldName(name) == nil }
