package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tc := range tests {
		if got := parseLogLevel(tc.in); got != tc.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestInitializeAndLog(t *testing.T) {
	Initialize(DefaultConfig())

	// Must not panic with or without initialization.
	Debug("debug message", "k", 1)
	Info("info message")
	Warning("warning message")
	Error("error message", "err", "boom")
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Error("empty path should yield defaults")
	}

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file error: %v", err)
	}
	if cfg.Level != "INFO" {
		t.Errorf("Level = %q, want INFO", cfg.Level)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	data := []byte("logging:\n  level: DEBUG\n  console_enabled: true\n  file_enabled: true\n  file_path: out/test.log\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Level != "DEBUG" {
		t.Errorf("Level = %q, want DEBUG", cfg.Level)
	}
	if !cfg.FileEnabled {
		t.Error("FileEnabled should be true")
	}
	if cfg.FilePath != "out/test.log" {
		t.Errorf("FilePath = %q", cfg.FilePath)
	}
	// Unset numeric fields keep defaults.
	if cfg.FileMaxSizeMB != 10 {
		t.Errorf("FileMaxSizeMB = %d, want 10", cfg.FileMaxSizeMB)
	}
}
