package logs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/levelupgamer/lu/internal/dispatchers"
)

type mockFileInfo struct {
	size int64
}

func (m *mockFileInfo) Name() string       { return "lu.log" }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() os.FileMode  { return 0600 }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return false }
func (m *mockFileInfo) Sys() any           { return nil }

type recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *recorder) Println(a ...any) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
	r.lines = append(r.lines, s)
	return len(s), nil
}

func (r *recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

func fileDeps(content string, rec *recorder) Deps {
	return Deps{
		LogFilePath: func() string { return "/tmp/lu.log" },
		Stat: func(string) (os.FileInfo, error) {
			return &mockFileInfo{size: int64(len(content))}, nil
		},
		ReadFile: func(string) ([]byte, error) { return []byte(content), nil },
		Println:  rec.Println,
	}
}

func flags(f ...string) *dispatchers.ParsedFlags {
	return dispatchers.NewParsedFlags(f)
}

// =========== VIEW TESTS ===========

func TestView_FileNotExists(t *testing.T) {
	rec := &recorder{}
	deps := fileDeps("", rec)
	deps.Stat = func(string) (os.FileInfo, error) { return nil, os.ErrNotExist }

	require.NoError(t, view(nil, flags(), deps))
	require.Contains(t, rec.Lines()[0], "No log file found")
}

func TestView_FileNotExistsJSON(t *testing.T) {
	rec := &recorder{}
	deps := fileDeps("", rec)
	deps.Stat = func(string) (os.FileInfo, error) { return nil, os.ErrNotExist }

	require.NoError(t, view(nil, flags("--json"), deps))
	require.Equal(t, []string{"[]"}, rec.Lines())
}

func TestView_StatError(t *testing.T) {
	deps := fileDeps("", &recorder{})
	deps.Stat = func(string) (os.FileInfo, error) { return nil, errors.New("stat error") }

	err := view(nil, flags(), deps)
	require.ErrorContains(t, err, "stat log file")
}

func TestView_EmptyFile(t *testing.T) {
	rec := &recorder{}
	require.NoError(t, view(nil, flags(), fileDeps("", rec)))
	require.Contains(t, rec.Lines()[0], "Log file is empty")
}

func TestView_ReadFileError(t *testing.T) {
	deps := fileDeps("x\n", &recorder{})
	deps.ReadFile = func(string) ([]byte, error) { return nil, errors.New("read error") }

	require.ErrorContains(t, view(nil, flags(), deps), "read log file")
}

func TestView_Limit(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 60; i++ {
		fmt.Fprintf(&b, "line%d\n", i)
	}
	content := b.String()

	tests := []struct {
		name  string
		flags []string
		want  int
		first string
	}{
		{"default limit", nil, 50, "line11"},
		{"explicit", []string{"--limit=3"}, 3, "line58"},
		{"negative falls back", []string{"--limit=-1"}, 50, "line11"},
		{"larger than file", []string{"--limit=100"}, 60, "line1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			require.NoError(t, view(nil, flags(tt.flags...), fileDeps(content, rec)))
			require.Len(t, rec.Lines(), tt.want)
			require.Equal(t, tt.first, rec.Lines()[0])
		})
	}
}

func TestView_JSON(t *testing.T) {
	content := "[2026-01-29 10:30:45] INFO: store: inserted event e1\nnot a log line\n"
	rec := &recorder{}

	require.NoError(t, view(nil, flags("--json"), fileDeps(content, rec)))

	var entries []LogLine
	require.NoError(t, json.Unmarshal([]byte(rec.Lines()[0]), &entries))
	require.Equal(t, []LogLine{
		{Timestamp: "2026-01-29 10:30:45", Level: "INFO", Message: "store: inserted event e1"},
		{Message: "not a log line", Raw: "not a log line"},
	}, entries)
}

// =========== PARSE TESTS ===========

func TestParseLine(t *testing.T) {
	tests := []struct {
		raw  string
		want LogLine
	}{
		{
			"[2026-01-29 10:30:45] ERROR: checkout failed",
			LogLine{Timestamp: "2026-01-29 10:30:45", Level: "ERROR", Message: "checkout failed"},
		},
		{
			"[2026-01-29 10:30:45] DEBUG: poll: data_version 3",
			LogLine{Timestamp: "2026-01-29 10:30:45", Level: "DEBUG", Message: "poll: data_version 3"},
		},
		{
			"[2026-01-29 10:30:45] TRACE: nope",
			LogLine{Message: "[2026-01-29 10:30:45] TRACE: nope", Raw: "[2026-01-29 10:30:45] TRACE: nope"},
		},
		{"", LogLine{}},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, parseLine(tt.raw), tt.raw)
	}
}

func TestColorizeLogLine_NoLevelUnchanged(t *testing.T) {
	require.Equal(t, "plain", colorizeLogLine("plain"))
}

// =========== CLEAR / TAIL TESTS ===========

func TestClear_Success(t *testing.T) {
	rec := &recorder{}
	var gotPath string
	var gotData []byte
	deps := Deps{
		LogFilePath: func() string { return "/tmp/lu.log" },
		WriteFile: func(path string, data []byte, _ os.FileMode) error {
			gotPath, gotData = path, data
			return nil
		},
		Println: rec.Println,
	}

	require.NoError(t, clear(nil, flags(), deps))
	require.Equal(t, "/tmp/lu.log", gotPath)
	require.Empty(t, gotData)
	require.Contains(t, rec.Lines()[0], "Log file cleared")
}

func TestClear_WriteError(t *testing.T) {
	deps := Deps{
		LogFilePath: func() string { return "/tmp/lu.log" },
		WriteFile:   func(string, []byte, os.FileMode) error { return errors.New("denied") },
	}

	require.ErrorContains(t, clear(nil, flags(), deps), "clear log file")
}

func TestTail_OpenFileError(t *testing.T) {
	deps := Deps{
		LogFilePath: func() string { return "/nonexistent/dir/lu.log" },
		OpenFile: func(string, int, os.FileMode) (*os.File, error) {
			return nil, errors.New("open error")
		},
	}

	require.ErrorContains(t, tail(nil, flags(), deps), "open log file")
}

func TestFollow_PrintsAppendedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lu.log")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	rec := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- follow(ctx, file, Deps{Println: rec.Println}) }()

	w, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0600)
	require.NoError(t, err)
	_, _ = io.WriteString(w, "first\nsec")
	_, _ = io.WriteString(w, "ond\n")
	require.NoError(t, w.Close())

	require.Eventually(t, func() bool { return len(rec.Lines()) == 2 }, 3*time.Second, 20*time.Millisecond)
	require.Equal(t, []string{"first", "second"}, rec.Lines())

	cancel()
	require.NoError(t, <-done)
}

func TestDefaultDeps(t *testing.T) {
	deps := DefaultDeps()
	require.NotNil(t, deps.LogFilePath)
	require.NotNil(t, deps.ReadFile)
	require.NotNil(t, deps.WriteFile)
	require.NotNil(t, deps.OpenFile)
}
