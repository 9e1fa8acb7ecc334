package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug},
		{"info level", "info", slog.LevelInfo},
		{"warn level", "warn", slog.LevelWarn},
		{"warning level", "warning", slog.LevelWarn},
		{"error level", "error", slog.LevelError},
		{"uppercase DEBUG", "DEBUG", slog.LevelDebug},
		{"mixed case Info", "Info", slog.LevelInfo},
		{"invalid level", "invalid", slog.LevelInfo}, // defaults to info
		{"empty string", "", slog.LevelInfo},         // defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != slog.LevelInfo {
		t.Errorf("Default level = %v, want %v", cfg.Level, slog.LevelInfo)
	}
	if cfg.FilePath != "" {
		t.Errorf("Default FilePath = %q, want empty", cfg.FilePath)
	}
	if !cfg.Console {
		t.Errorf("Default Console = %v, want true", cfg.Console)
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("console only", func(t *testing.T) {
		logger, err := NewLogger(Config{Level: slog.LevelInfo, Console: true})
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}
		if logger == nil {
			t.Fatal("NewLogger returned nil logger")
		}
	})

	t.Run("file output", func(t *testing.T) {
		tmpDir := t.TempDir()
		logFile := filepath.Join(tmpDir, "test.log")

		logger, err := NewLogger(Config{Level: slog.LevelDebug, FilePath: logFile})
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}

		logger.Info("test message", "key", "value")

		data, err := os.ReadFile(logFile)
		if err != nil {
			t.Fatalf("Failed to read log file: %v", err)
		}
		if !strings.Contains(string(data), `"msg":"test message"`) {
			t.Errorf("Log file missing JSON record, got: %s", data)
		}
	})

	t.Run("creates log directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		logFile := filepath.Join(tmpDir, "nested", "dir", "test.log")

		if _, err := NewLogger(Config{Level: slog.LevelInfo, FilePath: logFile}); err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}

		if _, err := os.Stat(filepath.Dir(logFile)); err != nil {
			t.Errorf("Log directory was not created: %v", err)
		}
	})
}
