// Package errorutil holds the error primitives shared by the header packages.
package errorutil

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ghettovoice/httphdr/internal/util"
)

// Error is a constant-friendly error type. Sentinels are declared as
// untyped string constants of this type.
type Error string

func (s Error) Error() string { return string(s) }

// NewWrapperError ties the sentinel to the details in args.
//
//   - no args: the sentinel itself
//   - error: "sentinel: err", both reachable through [errors.Is]
//   - string: "sentinel: msg"
//   - string with args: the message is formatted with [fmt.Sprintf] first
func NewWrapperError(sentinel error, args ...any) error {
	if len(args) == 0 {
		return sentinel //errtrace:skip
	}
	switch v := args[0].(type) {
	case error:
		if errors.Is(v, sentinel) {
			return v //errtrace:skip
		}
		return fmt.Errorf("%w: %w", sentinel, v) //errtrace:skip
	case string:
		if len(args) == 1 {
			return fmt.Errorf("%w: %s", sentinel, v) //errtrace:skip
		}
		return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(v, args[1:]...)) //errtrace:skip
	default:
		return sentinel //errtrace:skip
	}
}

// ErrInvalidArgument reports a misuse of an API by the caller.
const ErrInvalidArgument Error = "invalid argument"

// NewInvalidArgumentError wraps args with [ErrInvalidArgument], see [NewWrapperError].
func NewInvalidArgumentError(args ...any) error {
	return NewWrapperError(ErrInvalidArgument, args...) //errtrace:skip
}

// Join combines errs into one error. Nil entries are dropped,
// nil is returned when nothing is left.
func Join(errs ...error) error {
	errs = compact(errs)
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0] //errtrace:skip
	}
	return &multiError{errs: errs} //errtrace:skip
}

// JoinPrefix is like [Join] but labels the list with prefix.
func JoinPrefix(prefix string, errs ...error) error {
	errs = compact(errs)
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%s: %w", strings.TrimRight(prefix, ":"), errs[0]) //errtrace:skip
	}
	return &multiError{prefix: prefix, errs: errs} //errtrace:skip
}

func compact(errs []error) []error {
	var out []error
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}

type multiError struct {
	prefix string
	errs   []error
}

func (e *multiError) Error() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(e.prefix)
	e.writeList(sb, "")
	return sb.String()
}

func (e *multiError) writeList(sb *strings.Builder, indent string) {
	for _, err := range e.errs {
		sb.WriteString("\n")
		sb.WriteString(indent)
		sb.WriteString("  - ")

		if nested, ok := err.(*multiError); ok { //nolint:errorlint
			label := nested.prefix
			if label == "" {
				label = "multiple errors"
			}
			sb.WriteString(label)
			nested.writeList(sb, indent+"  ")
			continue
		}

		sb.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n"+indent+"    "))
	}
}

func (e *multiError) Unwrap() []error { return e.errs }
