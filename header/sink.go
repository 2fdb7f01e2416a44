package header

//go:generate go tool mockgen -destination=../internal/testutil/hdrmock/sink.go -package=hdrmock . Sink

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
)

// Sink accepts header entries one by one.
// It is satisfied by [net/http.Header] and [net/textproto.MIMEHeader].
type Sink interface {
	Add(name, value string)
}

// CopyTo passes every entry of the map to dst in [Map.All] order.
func (m *Map) CopyTo(dst Sink) error {
	if dst == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil sink"))
	}
	for name, value := range m.All() {
		dst.Add(name, value)
	}
	return nil
}
