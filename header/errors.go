package header

import "github.com/ghettovoice/httphdr/internal/errorutil"

// Error is a header error, see [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrInvalidName is returned for a header name that fails [ValidateName].
	ErrInvalidName Error = "invalid header name"
	// ErrInvalidValue is returned for a header value that fails [ValidateValue].
	ErrInvalidValue Error = "invalid header value"
	// ErrInvalidArgument is returned on API misuse.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
)
