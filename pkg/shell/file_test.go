package shell

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultFileManager_ParentDirExists(t *testing.T) {
	dir := t.TempDir()
	fm := DefaultFileManager{}

	if err := fm.ParentDirExists(filepath.Join(dir, "out.txt")); err != nil {
		t.Fatalf("ParentDirExists: %v", err)
	}

	if err := fm.ParentDirExists(filepath.Join(dir, "missing", "out.txt")); err == nil {
		t.Fatal("expected an error for a missing parent directory")
	}

	file := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := fm.ParentDirExists(filepath.Join(file, "out.txt")); err == nil {
		t.Fatal("expected an error when the parent path is a regular file")
	}
}

func TestDefaultFileManager_CreateIfNotExist(t *testing.T) {
	dir := t.TempDir()
	fm := DefaultFileManager{}
	path := filepath.Join(dir, "out.txt")

	if err := fm.CreateIfNotExist(path); err != nil {
		t.Fatalf("CreateIfNotExist: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}

	if err := os.WriteFile(path, []byte("preserved"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := fm.CreateIfNotExist(path); err != nil {
		t.Fatalf("CreateIfNotExist on existing file: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(content) != "preserved" {
		t.Fatalf("content = %q, want %q (CreateIfNotExist must not truncate)", content, "preserved")
	}
}
