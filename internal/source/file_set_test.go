package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("stdin", []byte("x = 1"))

	f := fs.Get(id)
	if string(f.Content) != "x = 1" {
		t.Errorf("Expected content %q, got %q", "x = 1", f.Content)
	}
	if !f.Virtual() {
		t.Error("Expected virtual flag to be set")
	}
}

func TestLoadKeepsBytesVerbatim(t *testing.T) {
	// CRLF and BOM must reach the lexer untouched
	raw := []byte("\xEF\xBB\xBFa\r\nb")
	path := filepath.Join(t.TempDir(), "input.src")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := fs.Get(id).Content; string(got) != string(raw) {
		t.Errorf("Expected raw bytes %q, got %q", raw, got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.src")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestGetByPathReturnsLatest(t *testing.T) {
	fs := NewFileSet()
	fs.Add("a.src", []byte("old"), 0)
	fs.Add("a.src", []byte("new"), 0)

	f, ok := fs.GetByPath("a.src")
	if !ok {
		t.Fatal("Expected file to be found by path")
	}
	if string(f.Content) != "new" {
		t.Errorf("Expected latest content %q, got %q", "new", f.Content)
	}
	if fs.Len() != 2 {
		t.Errorf("Expected 2 files in set, got %d", fs.Len())
	}
}

func TestContentHashDiffers(t *testing.T) {
	fs := NewFileSet()
	a := fs.Get(fs.AddVirtual("a", []byte("one")))
	b := fs.Get(fs.AddVirtual("b", []byte("two")))
	if a.Hash == b.Hash {
		t.Error("Expected different content hashes for different content")
	}
}
