package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func initTestLogger(t *testing.T, level string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("FRONTIERS_LOG_DIR", dir)
	if err := InitLogger(level); err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}
	t.Cleanup(func() {
		Close()
		globalLogger = nil
	})
	return filepath.Join(dir, "frontiers-tui-"+time.Now().Format("2006-01-02")+".log")
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(data)
}

func TestInitLoggerCreatesFile(t *testing.T) {
	path := initTestLogger(t, LevelInfo)

	Info("hello", "key", "value")

	contents := readLog(t, path)
	if !strings.Contains(contents, "hello key=value") {
		t.Errorf("Expected log to contain message with key-value pair, got: %s", contents)
	}
	if !strings.Contains(contents, "[INFO]") {
		t.Errorf("Expected INFO level marker, got: %s", contents)
	}
}

func TestLevelFiltering(t *testing.T) {
	path := initTestLogger(t, LevelWarn)

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")

	contents := readLog(t, path)
	if strings.Contains(contents, "debug message") {
		t.Error("Debug message should be filtered at WARN level")
	}
	if strings.Contains(contents, "info message") {
		t.Error("Info message should be filtered at WARN level")
	}
	if !strings.Contains(contents, "warn message") {
		t.Error("Warn message should be logged at WARN level")
	}
	if !strings.Contains(contents, "error message") {
		t.Error("Error message should be logged at WARN level")
	}
}

func TestCallerSiteInMessages(t *testing.T) {
	path := initTestLogger(t, LevelDebug)

	Debug("caller check")

	contents := readLog(t, path)
	if !strings.Contains(contents, "logger_test.go:") {
		t.Errorf("Expected caller site to point at the test file, got: %s", contents)
	}
}

func TestLoggingWithoutInit(t *testing.T) {
	globalLogger = nil
	// Must not panic
	Debug("no-op")
	Info("no-op")
	Warn("no-op")
	Error("no-op")

	if got := GetLogLevel(); got != LevelInfo {
		t.Errorf("Expected default level INFO when uninitialized, got %s", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":    LevelDebug,
		"DEBUG":    LevelDebug,
		" warn ":   LevelWarn,
		"error":    LevelError,
		"info":     LevelInfo,
		"":         LevelInfo,
		"nonsense": LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
