package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_WritesWhenInitialized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "flip.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init(%q) error = %v", path, err)
	}
	defer Close()

	Log("captured %s", "region-1")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}
	if !strings.Contains(string(data), "captured region-1") {
		t.Errorf("log = %q, want it to contain %q", data, "captured region-1")
	}
}

func TestLog_NoopWhenDisabled(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init(\"\") error = %v", err)
	}
	defer Close()

	if Enabled() {
		t.Fatal("Enabled() = true after Init(\"\"), want false")
	}
	// Must not panic with no file open.
	Log("dropped %d", 1)
}
