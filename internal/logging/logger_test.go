package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("creates log file in directory", func(t *testing.T) {
		dir := t.TempDir()

		logger, err := New(dir, LevelDebug)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		defer logger.Close()

		logPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(logPath); os.IsNotExist(err) {
			t.Errorf("log file was not created at %s", logPath)
		}
	})

	t.Run("writes to stderr when dir is empty", func(t *testing.T) {
		logger, err := New("", LevelInfo)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		defer logger.Close()

		if logger.closer != nil {
			t.Error("expected no closer when dir is empty")
		}
	})

	t.Run("creates missing directories", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "state")

		logger, err := New(dir, LevelInfo)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		defer logger.Close()

		if _, err := os.Stat(filepath.Join(dir, FileName)); err != nil {
			t.Errorf("log file missing: %v", err)
		}
	})
}

func TestLogLevels(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelDebug)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message", "key", "value")

	logger.Close()

	content, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 log lines, got %d", len(lines))
	}

	wantLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	for i, line := range lines {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("line %d is not JSON: %v", i, err)
		}
		if entry["level"] != wantLevels[i] {
			t.Errorf("line %d level = %v, want %s", i, entry["level"], wantLevels[i])
		}
		if entry["key"] != "value" {
			t.Errorf("line %d missing key attribute", i)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelWarn)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Debug("filtered out")
	logger.Info("filtered out")
	logger.Warn("kept")
	logger.Error("kept")

	logger.Close()

	content, _ := os.ReadFile(filepath.Join(dir, FileName))
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Errorf("expected 2 log lines at WARN level, got %d", len(lines))
	}
}

func TestWithComponent(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelInfo)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	child := logger.WithComponent("tui")
	child.Info("from the tui")
	logger.Info("from the root")

	logger.Close()

	content, _ := os.ReadFile(filepath.Join(dir, FileName))
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var first, second map[string]any
	json.Unmarshal([]byte(lines[0]), &first)
	json.Unmarshal([]byte(lines[1]), &second)

	if first["component"] != "tui" {
		t.Errorf("child entry component = %v, want tui", first["component"])
	}
	if _, ok := second["component"]; ok {
		t.Error("root logger must not inherit the child's component")
	}
}

func TestWith(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelInfo)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.With("theme", "nord", "sample", true).Info("configured")
	logger.Close()

	content, _ := os.ReadFile(filepath.Join(dir, FileName))

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(content))), &entry); err != nil {
		t.Fatalf("parsing entry: %v", err)
	}
	if entry["theme"] != "nord" {
		t.Errorf("theme = %v, want nord", entry["theme"])
	}
	if entry["sample"] != true {
		t.Errorf("sample = %v, want true", entry["sample"])
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()

	// Must not panic or error.
	logger.Debug("discarded")
	logger.Info("discarded")
	logger.WithComponent("x").Warn("discarded")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on nop logger: %v", err)
	}
}

func TestClose_Idempotent(t *testing.T) {
	logger, err := New(t.TempDir(), LevelInfo)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Errorf("first Close(): %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close(): %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"Info", LevelInfo},
		{"WARN", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValidLevel(t *testing.T) {
	for _, level := range ValidLevels() {
		if !IsValidLevel(level) {
			t.Errorf("IsValidLevel(%q) = false", level)
		}
		if !IsValidLevel(strings.ToLower(level)) {
			t.Errorf("IsValidLevel(%q) = false, want case-insensitive", strings.ToLower(level))
		}
	}
	if IsValidLevel("verbose") {
		t.Error(`IsValidLevel("verbose") = true`)
	}
}

func TestNewWithRotation(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewWithRotation(dir, LevelInfo, RotationConfig{MaxSizeMB: 1, MaxBackups: 2})
	if err != nil {
		t.Fatalf("NewWithRotation failed: %v", err)
	}

	logger.Info("hello")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(content), "hello") {
		t.Error("rotating logger dropped the entry")
	}
}
