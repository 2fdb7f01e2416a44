package header

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/ioutil"
	"github.com/ghettovoice/httphdr/internal/util"
)

// WriteTo writes the map in wire format, one "Name: value" line per entry
// terminated by CRLF, in [Map.All] order. Names and values are written as stored.
//
// WriteTo implements [io.WriterTo].
func (m *Map) WriteTo(w io.Writer) (num int64, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	for name, value := range m.All() {
		if cw.WriteField(name, value).Err() != nil {
			break
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the wire format of the map, see [Map.WriteTo].
func (m *Map) Render() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	m.WriteTo(sb) //nolint:errcheck
	return sb.String()
}
