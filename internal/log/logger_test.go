package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogger_BasicLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelDebug)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info %s", "message")
	logger.Warn("warning message")
	logger.Error("error message")
	_ = logger.Close()

	logContent := readLog(t, logPath)
	for _, want := range []string{
		"DEBUG: debug message",
		"INFO: info message",
		"WARN: warning message",
		"ERROR: error message",
	} {
		if !strings.Contains(logContent, want) {
			t.Errorf("%q not found in log", want)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelWarn)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("visible warn")
	_ = logger.Close()

	logContent := readLog(t, logPath)
	if strings.Contains(logContent, "hidden") {
		t.Errorf("messages below min level were written: %s", logContent)
	}
	if !strings.Contains(logContent, "visible warn") {
		t.Error("warn message not found in log")
	}
}

func TestLogger_FilePermissions(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "test.log")

	logger, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Close() }()

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600, got %v", info.Mode().Perm())
	}
}

func TestLogger_Disabled(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelDebug)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger.SetEnabled(false)
	logger.Error("should not appear")
	_ = logger.Close()

	if content := readLog(t, logPath); content != "" {
		t.Errorf("expected empty log, got %q", content)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug": LevelDebug,
		"INFO":  LevelInfo,
		" warn": LevelWarn,
		"error": LevelError,
		"bogus": LevelWarn,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLogger_Writer(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelDebug)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	_, _ = logger.Writer(LevelInfo).Write([]byte("GET /api/v1/products 200\n"))
	_ = logger.Close()

	if content := readLog(t, logPath); !strings.Contains(content, "INFO: GET /api/v1/products 200\n") {
		t.Errorf("writer output missing: %q", content)
	}
}

func TestLogger_NilSafe(t *testing.T) {
	var l *Logger
	l.Info("nothing")
	l.SetEnabled(true)
	if err := l.Close(); err != nil {
		t.Errorf("Close on nil logger: %v", err)
	}
}

func TestGlobalLogger(t *testing.T) {
	SetDefault(nil)
	Info("dropped")

	logPath := filepath.Join(t.TempDir(), "global.log")
	if err := Init(logPath, LevelDebug); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
		SetDefault(nil)
	})

	Debug("global %d", 1)
	_ = GetLogger().Close()

	if content := readLog(t, logPath); !strings.Contains(content, "DEBUG: global 1") {
		t.Errorf("global message missing: %q", content)
	}
}

func TestNopLogger(t *testing.T) {
	var l NopLogger
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	if err := l.Close(); err != nil {
		t.Errorf("NopLogger.Close: %v", err)
	}
}
