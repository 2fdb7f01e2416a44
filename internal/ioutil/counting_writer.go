// Package ioutil holds writer helpers for rendering header blocks.
package ioutil

//go:generate go tool errtrace -w .

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter counts the bytes written to the wrapped writer.
// The first error is sticky: later writes are skipped and return it again.
type CountingWriter struct {
	w   io.Writer
	num int64
	err error
}

// NewCountingWriter creates a new CountingWriter wrapping w.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

func (cw *CountingWriter) Write(p []byte) (n int, err error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err = cw.w.Write(p)
	return cw.track(n, err)
}

func (cw *CountingWriter) WriteString(s string) (n int, err error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err = io.WriteString(cw.w, s)
	return cw.track(n, err)
}

func (cw *CountingWriter) track(n int, err error) (int, error) {
	cw.num += int64(n)
	if err != nil {
		cw.err = err
		return n, errtrace.Wrap(err)
	}
	return n, nil
}

// WriteField writes one header line "name: value" terminated by CRLF.
func (cw *CountingWriter) WriteField(name, value string) *CountingWriter {
	cw.WriteString(name)   //nolint:errcheck
	cw.WriteString(": ")   //nolint:errcheck
	cw.WriteString(value)  //nolint:errcheck
	cw.WriteString("\r\n") //nolint:errcheck
	return cw
}

// Result returns the total number of bytes written and the first error.
func (cw *CountingWriter) Result() (num int64, err error) {
	return cw.num, errtrace.Wrap(cw.err)
}

// Err returns the first write error.
func (cw *CountingWriter) Err() error { return errtrace.Wrap(cw.err) }

// Count returns the total number of bytes written.
func (cw *CountingWriter) Count() int64 { return cw.num }

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

// GetCountingWriter takes a writer from the pool and points it at w.
func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

// FreeCountingWriter resets cw and returns it to the pool.
func FreeCountingWriter(cw *CountingWriter) {
	cw.w = nil
	cw.num = 0
	cw.err = nil
	cntWrtPool.Put(cw)
}
