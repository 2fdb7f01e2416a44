package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/log"
)

type checkOptions struct {
	unsafe bool
	set    bool
	log    *slog.Logger
}

func (o checkOptions) logger() *slog.Logger {
	if o.log == nil {
		return log.Noop
	}
	return o.log
}

func check(cmd *cobra.Command, files []string) error {
	flags := cmd.Flags()
	dev, _ := flags.GetBool("dev")
	verbose, _ := flags.GetBool("verbose")
	capacity, _ := flags.GetInt("capacity")
	wire, _ := flags.GetBool("wire")

	var opts checkOptions
	opts.unsafe, _ = flags.GetBool("unsafe")
	opts.set, _ = flags.GetBool("set")

	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	logger := log.NewConsole(cmd.ErrOrStderr(), lvl)
	if dev {
		logger = log.NewDev(cmd.ErrOrStderr(), lvl)
	}

	opts.log = logger
	logger.Debug("loading headers", slog.Any("files", log.FmtValue(files, false)))
	m := header.NewMap(&header.MapOptions{Log: logger, Capacity: capacity})

	var errs []error
	if len(files) == 0 {
		errs = append(errs, load(m, cmd.InOrStdin(), "stdin", opts))
	}
	for _, fname := range files {
		errs = append(errs, loadFile(m, fname, opts))
	}

	if err := writeMap(cmd.OutOrStdout(), m, wire); err != nil {
		return errtrace.Wrap(err)
	}

	if err := errorutil.JoinPrefix("some headers were rejected:", errs...); err != nil {
		logger.Info("check failed", slog.Int("names", m.Len()), slog.Any("error", err))
		return errtrace.Wrap(err)
	}
	logger.Debug("check passed", slog.Int("names", m.Len()))
	return nil
}

func writeMap(w io.Writer, m *header.Map, wire bool) error {
	if wire {
		_, err := m.WriteTo(w)
		return errtrace.Wrap(err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errtrace.Wrap(enc.Encode(m))
}

func loadFile(m *header.Map, fname string, opts checkOptions) error {
	f, err := os.Open(fname)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer f.Close()

	return errtrace.Wrap(load(m, f, fname, opts))
}

// load reads a header block from r into m.
// Errors are reported per line, valid lines are stored anyway.
func load(m *header.Map, r io.Reader, src string, opts checkOptions) error {
	lines, err := readLines(r)
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("%s: %w", src, err))
	}

	var errs []error
	for _, ln := range lines {
		if err := store(m, ln, opts); err != nil {
			opts.logger().Debug("line rejected",
				slog.String("source", src),
				slog.Int("line", ln.num),
				slog.String("kind", errKind(err)),
			)
			errs = append(errs, fmt.Errorf("%s:%d: %w", src, ln.num, err))
		}
	}
	return errtrace.Wrap(errorutil.Join(errs...))
}

func store(m *header.Map, ln line, opts checkOptions) error {
	name, value, ok := strings.Cut(ln.text, ":")
	if !ok {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("missing colon"))
	}
	value = strings.Trim(value, " \t")

	switch {
	case opts.unsafe && opts.set:
		m.SetUnsafe(name, value)
	case opts.unsafe:
		m.AddUnsafe(name, value)
	case opts.set:
		return errtrace.Wrap(m.Set(name, value))
	default:
		return errtrace.Wrap(m.Add(name, value))
	}
	return nil
}

func errKind(err error) string {
	switch {
	case errorutil.IsGrammarErr(err):
		return "syntax"
	case errorutil.IsInvalidArgument(err):
		return "malformed"
	default:
		return "other"
	}
}

type line struct {
	num  int
	text string
}

// readLines splits r into logical header lines. A physical line starting with
// SP or HTAB is joined to the previous one with CRLF so the value keeps its fold.
// Blank lines are skipped.
func readLines(r io.Reader) ([]line, error) {
	var (
		lines []line
		num   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		num++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if (text[0] == ' ' || text[0] == '\t') && len(lines) > 0 {
			lines[len(lines)-1].text += "\r\n" + text
			continue
		}
		lines = append(lines, line{num, text})
	}
	if err := sc.Err(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return lines, nil
}
