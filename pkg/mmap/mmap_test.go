package mmap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestOpen(t *testing.T) {
	data := []byte("The cat sat on the mat")
	path := writeFile(t, "cat.txt", data)

	m, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if m.Len() != len(data) {
		t.Errorf("Len() = %d, want %d", m.Len(), len(data))
	}
	if string(m.Bytes()) != string(data) {
		t.Errorf("Bytes() = %q, want %q", m.Bytes(), data)
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := m.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close() error = %v, want %v", err, ErrClosed)
	}
	if m.Bytes() != nil {
		t.Errorf("Bytes() after Close() is not nil")
	}
}

func TestOpen_Empty(t *testing.T) {
	m, err := Open(writeFile(t, "empty.txt", nil))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer m.Close()
	if m.Len() != 0 || m.Bytes() != nil {
		t.Errorf("empty file mapped to %q", m.Bytes())
	}
}

func TestOpen_Errors(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open(missing) error = %v, want %v", err, os.ErrNotExist)
	}
	if _, err := Open(t.TempDir()); !errors.Is(err, ErrNotRegular) {
		t.Errorf("Open(dir) error = %v, want %v", err, ErrNotRegular)
	}
}
