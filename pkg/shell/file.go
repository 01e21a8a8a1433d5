package shell

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileManager is the narrow, mockable collaborator the parser's redirection
// phase uses to verify a target's parent directory exists and to create the
// target file eagerly if it is missing — the side effect spec.md's phase 3
// calls out, kept behind an interface so it is unit-testable without a real
// file system.
type FileManager interface {
	// ParentDirExists reports an error if path's parent directory does not
	// exist or is not a directory.
	ParentDirExists(path string) error
	// CreateIfNotExist creates an empty file at path if nothing is there yet.
	// It does not truncate or otherwise touch an existing file.
	CreateIfNotExist(path string) error
}

// DefaultFileManager implements FileManager against the real file system.
type DefaultFileManager struct{}

func (DefaultFileManager) ParentDirExists(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", dir)
	}
	return nil
}

func (DefaultFileManager) CreateIfNotExist(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return f.Close()
}
