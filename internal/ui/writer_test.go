package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePager(t *testing.T) {
	cfg := func(v string, found bool) func(string) (string, bool) {
		return func(string) (string, bool) { return v, found }
	}
	env := func(v string) func(string) string {
		return func(string) string { return v }
	}

	tests := []struct {
		name     string
		override string
		config   func(string) (string, bool)
		env      func(string) string
		wantName string
		wantArgs []string
		wantOK   bool
	}{
		{name: "override wins", override: "more", config: cfg("less -R", true), env: env("most"), wantName: "more", wantArgs: []string{}, wantOK: true},
		{name: "config", config: cfg("less -R", true), env: env("most"), wantName: "less", wantArgs: []string{"-R"}, wantOK: true},
		{name: "env", config: cfg("", false), env: env("most -s"), wantName: "most", wantArgs: []string{"-s"}, wantOK: true},
		{name: "default", config: cfg("", false), env: env(""), wantName: "less", wantArgs: []string{"-FRSX"}, wantOK: true},
		{name: "cat bypasses", override: "cat", wantOK: false},
		{name: "empty config bypasses", config: cfg("  ", true), env: env("most"), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args, ok := resolvePager(tt.override, tt.config, tt.env)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			require.Equal(t, tt.wantName, name)
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func newTestWriter(buf *bytes.Buffer, tty bool, run func(string, []string, string) error, opts ...WriterOption) *Writer {
	w := NewWriterTo(buf, opts...)
	w.isTTY = func() bool { return tty }
	w.runPager = run
	return w
}

func TestWriter_Pager(t *testing.T) {
	t.Run("not a tty prints directly", func(t *testing.T) {
		var buf bytes.Buffer
		called := false
		w := newTestWriter(&buf, false, func(string, []string, string) error { called = true; return nil })

		w.Pager("hello\n")
		require.Equal(t, "hello\n", buf.String())
		require.False(t, called)
	})

	t.Run("disabled prints directly", func(t *testing.T) {
		var buf bytes.Buffer
		w := newTestWriter(&buf, true, func(string, []string, string) error { t.Fatal("pager ran"); return nil }, WithPagerDisabled())

		w.Pager("x")
		require.Equal(t, "x", buf.String())
	})

	t.Run("runs configured pager", func(t *testing.T) {
		var buf bytes.Buffer
		var gotName, gotContent string
		w := newTestWriter(&buf, true, func(name string, _ []string, content string) error {
			gotName, gotContent = name, content
			return nil
		}, WithConfigGetter(func(string) (string, bool) { return "most", true }))

		w.Pager("page")
		require.Equal(t, "most", gotName)
		require.Equal(t, "page", gotContent)
		require.Empty(t, buf.String())
	})

	t.Run("falls back on pager error", func(t *testing.T) {
		var buf bytes.Buffer
		w := newTestWriter(&buf, true, func(string, []string, string) error { return errors.New("missing") },
			WithPagerOverride("nope"))

		w.Pager("fallback")
		require.Equal(t, "fallback", buf.String())
	})
}

func TestWriter_Printf(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	_, err := w.Printf("%s=%d\n", "stars", 5)
	require.NoError(t, err)
	_, err = w.Println("ok")
	require.NoError(t, err)
	require.Equal(t, "stars=5\nok\n", buf.String())
}
