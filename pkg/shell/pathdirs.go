package shell

import (
	"os"
	"path/filepath"
	"strings"
)

// PathDirs is the shared, read-only view of the PATH environment variable.
// It is built once at startup and handed down by pointer to the completion
// engine, the command dispatcher, and the type built-in; none of them ever
// mutate it.
type PathDirs struct {
	dirs []string
}

// NewPathDirs captures the current PATH environment variable. Subsequent
// changes to PATH in the process environment do not affect an already
// constructed PathDirs.
func NewPathDirs() *PathDirs {
	path := os.Getenv("PATH")
	var dirs []string
	if path != "" {
		dirs = strings.Split(path, string(os.PathListSeparator))
	}
	return &PathDirs{dirs: dirs}
}

// Find searches the PATH directories in order for a regular, executable
// file named exactly name. It returns the first match's full path.
func (p *PathDirs) Find(name string) (string, bool) {
	for _, directory := range p.dirs {
		candidate := filepath.Join(directory, name)
		if info, err := os.Stat(candidate); err == nil {
			if info.Mode().IsRegular() && info.Mode()&0111 != 0 {
				return candidate, true
			}
		}
	}
	return "", false
}

// Names lists every executable name found across all PATH directories,
// de-duplicated, in PATH order. Used by the completion engine's second
// stage to enumerate candidates for a prefix.
func (p *PathDirs) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, directory := range p.dirs {
		entries, err := os.ReadDir(directory)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || seen[entry.Name()] {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.Mode()&0111 == 0 {
				continue
			}
			seen[entry.Name()] = true
			names = append(names, entry.Name())
		}
	}
	return names
}
