package logutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestArchiveName(t *testing.T) {
	got := archiveName(filepath.Join("logs", "screen_topology.log"), 2)
	want := filepath.Join("logs", "screen_topology.log.2")
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestRotateShiftsArchives(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "screen_topology.log")
	for name, body := range map[string]string{
		path:                           "current",
		archiveName(path, 1):           "one",
		archiveName(path, maxArchives): "oldest",
	} {
		if err := os.WriteFile(name, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	rotate(path)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected %s to be moved away, got %v", path, err)
	}
	assertContent(t, archiveName(path, 1), "current")
	assertContent(t, archiveName(path, 2), "one")
	if _, err := os.Stat(archiveName(path, maxArchives+1)); !os.IsNotExist(err) {
		t.Error("Expected no archive beyond the maximum")
	}
}

func TestRotatingWriterAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screen_topology.log")
	w, err := openRotating(path)
	if err != nil {
		t.Fatalf("openRotating failed: %v", err)
	}
	defer w.f.Close()
	if _, err := w.Write([]byte("hello\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	assertContent(t, path, "hello\n")
}

func assertContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("%s: expected %q, got %q", path, want, string(data))
	}
}
