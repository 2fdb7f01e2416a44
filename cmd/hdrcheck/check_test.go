package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/log"
)

func TestReadLines(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want []line
	}{
		{"empty", "", nil},
		{"blank lines skipped", "\n\r\nA: 1\n\n", []line{{3, "A: 1"}}},
		{"crlf", "A: 1\r\nB: 2\r\n", []line{{1, "A: 1"}, {2, "B: 2"}}},
		{
			"continuation",
			"X-Long: first\n   second\n\tthird\nY: 1",
			[]line{{1, "X-Long: first\r\n   second\r\n\tthird"}, {4, "Y: 1"}},
		},
		{"leading space first", " A: 1", []line{{1, " A: 1"}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := readLines(strings.NewReader(c.in))
			if err != nil {
				t.Fatalf("readLines(%q) error = %v, want nil", c.in, err)
			}
			if diff := cmp.Diff(got, c.want, cmp.AllowUnexported(line{})); diff != "" {
				t.Errorf("readLines(%q) mismatch\ndiff (-got +want):\n%v", c.in, diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		opts    checkOptions
		want    map[string][]string
		wantErr error
	}{
		{
			name: "append",
			in:   "Accept: a\naccept: b\nX-Long: x\n  y\n",
			want: map[string][]string{"accept": {"a", "b"}, "x-long": {"x y"}},
		},
		{
			name: "set",
			in:   "Accept: a\naccept: b\n",
			opts: checkOptions{set: true},
			want: map[string][]string{"accept": {"b"}},
		},
		{
			name:    "invalid lines are skipped",
			in:      "Bad Name: a\nGood: b\nNoColon\n",
			want:    map[string][]string{"good": {"b"}, "bad name": nil},
			wantErr: header.ErrInvalidName,
		},
		{
			name:    "missing colon",
			in:      "NoColon\n",
			want:    map[string][]string{"nocolon": nil},
			wantErr: header.ErrInvalidArgument,
		},
		{
			name: "unsafe",
			in:   "Bad Name: a\n",
			opts: checkOptions{unsafe: true},
			want: map[string][]string{"bad name": {"a"}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			m := header.NewMap(&header.MapOptions{Log: log.Noop})
			err := load(m, strings.NewReader(c.in), "test", c.opts)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("load() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			for name, want := range c.want {
				if diff := cmp.Diff(m.GetAll(name), want); diff != "" {
					t.Errorf("m.GetAll(%q) mismatch\ndiff (-got +want):\n%v", name, diff)
				}
			}
		})
	}
}

func TestLoad_ErrorLines(t *testing.T) {
	t.Parallel()

	m := header.NewMap(&header.MapOptions{Log: log.Noop})
	err := load(m, strings.NewReader("A: 1\nB C: 2\nD\n"), "in.txt", checkOptions{})
	if err == nil {
		t.Fatal("load() error = nil, want error")
	}
	for _, want := range []string{"in.txt:2: invalid header name", "in.txt:3: invalid argument: missing colon"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("load() error = %q, want it to contain %q", err, want)
		}
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "headers.txt")
	if err := os.WriteFile(fname, []byte("Via: a\nvia: b\n"), 0o600); err != nil {
		t.Fatalf("os.WriteFile() error = %v, want nil", err)
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{fname})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("rootCmd.Execute() error = %v, want nil\nstderr: %s", err, errOut.String())
	}

	var got []header.Entry
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("json.Unmarshal(out) error = %v, want nil\nout: %s", err, out.String())
	}
	want := []header.Entry{{Name: "Via", Value: "a"}, {Name: "via", Value: "b"}}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("output mismatch\ndiff (-got +want):\n%v", diff)
	}
}

func TestWriteMap(t *testing.T) {
	t.Parallel()

	m := header.NewMap(&header.MapOptions{Log: log.Noop})
	if err := load(m, strings.NewReader("X-Long: a\n b\nx-long: c\n"), "test", checkOptions{}); err != nil {
		t.Fatalf("load() error = %v, want nil", err)
	}

	var buf bytes.Buffer
	if err := writeMap(&buf, m, true); err != nil {
		t.Fatalf("writeMap(&buf, m, true) error = %v, want nil", err)
	}
	if diff := cmp.Diff(buf.String(), "X-Long: a b\r\nx-long: c\r\n"); diff != "" {
		t.Errorf("wire output mismatch\ndiff (-got +want):\n%v", diff)
	}
}

func TestErrKind(t *testing.T) {
	t.Parallel()

	m := header.NewMap(&header.MapOptions{Log: log.Noop})
	cases := []struct {
		name string
		line string
		want string
	}{
		{"bad name", "A B: 1", "syntax"},
		{"bad value", "A: 1\r2", "syntax"},
		{"no colon", "A", "malformed"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := store(m, line{1, c.line}, checkOptions{})
			if err == nil {
				t.Fatalf("store(%q) error = nil, want error", c.line)
			}
			if got := errKind(err); got != c.want {
				t.Errorf("errKind(%v) = %q, want %q", err, got, c.want)
			}
		})
	}
}
