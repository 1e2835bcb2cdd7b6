package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/levelupgamer/lu/internal/domain"
)

// Writer implements domain.OutputWriter.
type Writer struct {
	out           io.Writer
	isTTY         func() bool
	pagerDisabled bool
	pagerOverride string
	configGetter  func(string) (string, bool)
	envGetter     func(string) string
	runPager      func(name string, args []string, content string) error
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerOverride sets a pager command override.
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerOverride = cmd
	}
}

// WithConfigGetter sets the config getter used to read the "pager" key.
func WithConfigGetter(fn func(string) (string, bool)) WriterOption {
	return func(w *Writer) {
		w.configGetter = fn
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter creates a Writer on stdout. Global --no-pager/--pager settings apply.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a Writer on out.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:           out,
		envGetter:     os.Getenv,
		pagerDisabled: isPagerDisabled(),
		pagerOverride: getPagerOverride(),
		runPager:      execPager,
	}
	w.isTTY = func() bool { return isTerminal(w.out) }

	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager displays content through a pager if appropriate.
// Falls back to direct output when the pager fails.
func (w *Writer) Pager(content string) {
	if w.pagerDisabled || !w.isTTY() {
		_, _ = fmt.Fprint(w.out, content)
		return
	}

	name, args, ok := resolvePager(w.pagerOverride, w.configGetter, w.envGetter)
	if !ok {
		_, _ = fmt.Fprint(w.out, content)
		return
	}

	if err := w.runPager(name, args, content); err != nil {
		_, _ = fmt.Fprint(w.out, content)
	}
}

var _ domain.OutputWriter = (*Writer)(nil)
