package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "durus.log")

	logger, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello from test")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing entry: %s", data)
	}
}

func TestNewCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "durus.log")
	if _, err := New(path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("log directory not created: %v", err)
	}
}

func TestDefaultLogPath(t *testing.T) {
	got := DefaultLogPath("/home/x/.local/share/durus/durus.db")
	want := "/home/x/.local/share/durus/durus.log"
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestNewOrNopNeverFails(t *testing.T) {
	// A path under a file cannot be created as a directory.
	f := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	logger := NewOrNop(filepath.Join(f, "sub", "durus.log"))
	logger.Info("dropped") // must not panic
}
