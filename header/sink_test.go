package header_test

import (
	"net/http"
	"net/textproto"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/testutil/hdrmock"
)

func TestMap_CopyTo(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sink := hdrmock.NewMockSink(ctrl)

	m := newMap(t, header.Entry{"Via", "a"}, header.Entry{"via", "b"})
	gomock.InOrder(
		sink.EXPECT().Add("Via", "a"),
		sink.EXPECT().Add("via", "b"),
	)

	if err := m.CopyTo(sink); err != nil {
		t.Errorf("m.CopyTo(sink) error = %v, want nil", err)
	}
}

func TestMap_CopyTo_Empty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sink := hdrmock.NewMockSink(ctrl)

	if err := newMap(t).CopyTo(sink); err != nil {
		t.Errorf("m.CopyTo(sink) error = %v, want nil", err)
	}
}

func TestMap_CopyTo_NilSink(t *testing.T) {
	t.Parallel()

	err := newMap(t).CopyTo(nil)
	if diff := cmp.Diff(err, header.ErrInvalidArgument, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("m.CopyTo(nil) error = %v, want %v\ndiff (-got +want):\n%v", err, header.ErrInvalidArgument, diff)
	}
}

func TestMap_CopyTo_StdHeaders(t *testing.T) {
	t.Parallel()

	m := newMap(t,
		header.Entry{"content-type", "text/plain"},
		header.Entry{"X-Trace", "1"},
		header.Entry{"x-trace", "2"},
	)

	h := make(http.Header)
	if err := m.CopyTo(h); err != nil {
		t.Fatalf("m.CopyTo(h) error = %v, want nil", err)
	}
	want := http.Header{
		"Content-Type": {"text/plain"},
		"X-Trace":      {"1", "2"},
	}
	if diff := cmp.Diff(h, want); diff != "" {
		t.Errorf("http.Header mismatch\ndiff (-got +want):\n%v", diff)
	}

	mh := make(textproto.MIMEHeader)
	if err := m.CopyTo(mh); err != nil {
		t.Fatalf("m.CopyTo(mh) error = %v, want nil", err)
	}
	if diff := cmp.Diff(mh.Values("x-trace"), []string{"1", "2"}); diff != "" {
		t.Errorf("mh.Values(\"x-trace\") mismatch\ndiff (-got +want):\n%v", diff)
	}
}
