package header

//go:generate go tool errtrace -w .

import (
	"fmt"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/grammar"
)

// ValidateName checks that name may be used as a header name.
// The name must consist of ASCII characters other than
// TAB, LF, VT, FF, CR, SP, ',', ':', ';' and '='.
// The empty name is accepted.
//
// The returned error wraps [ErrInvalidName].
func ValidateName(name string) error {
	if err := grammar.CheckFieldName(name); err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidName, fmt.Errorf("%q: %w", name, err)))
	}
	return nil
}

// IsValidName reports whether name passes [ValidateName].
func IsValidName(name string) bool { return grammar.IsFieldName(name) }

// ValidateValue checks value of the header name and returns it normalized:
// every obsolete line fold (CRLF or LF followed by a run of SP/HTAB) is replaced
// with a single SP. A value without folds is returned unchanged.
//
// The value must consist of ISO-8859-1 characters other than VT and FF.
// CR is allowed only before LF, LF only before SP or HTAB, and the value must
// not end with either of them. Name is used only to annotate the error.
//
// The returned error wraps [ErrInvalidValue].
func ValidateValue(name, value string) (string, error) {
	v, err := grammar.NormalizeFieldValue(value)
	if err != nil {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidValue, fmt.Errorf("%q: %w", name, err)))
	}
	return v, nil
}

// Validate checks both parts of a header and returns the normalized value.
func Validate(name, value string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(ValidateValue(name, value))
}
