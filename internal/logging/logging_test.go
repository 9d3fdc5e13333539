package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected log.Level
		wantErr  bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			logger, err := New(&bytes.Buffer{}, tc.level)
			if (err != nil) != tc.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tc.level, err, tc.wantErr)
			}
			if err != nil {
				return
			}
			if logger.GetLevel() != tc.expected {
				t.Errorf("GetLevel() = %v, expected %v", logger.GetLevel(), tc.expected)
			}
		})
	}
}

func TestNewWritesPrefixAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("session ended", "score", 7)
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, Prefix) {
		t.Errorf("output should carry prefix %q: %q", Prefix, out)
	}
	if !strings.Contains(out, "score=7") {
		t.Errorf("output should carry fields: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered at info level: %q", out)
	}
}

func TestOpenFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snake.log")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}

	logger, err := New(f, "debug")
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("fruit eaten", "length", 2)
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "length=2") {
		t.Errorf("log file = %q, expected the debug line", data)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic and must not be enabled for info
	logger := Discard()
	logger.Info("ignored")
	if logger.GetLevel() != log.FatalLevel {
		t.Errorf("GetLevel() = %v, expected fatal", logger.GetLevel())
	}
}
