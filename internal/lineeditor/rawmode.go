// Package lineeditor implements the raw-mode, byte-at-a-time terminal line
// editor: echoing, backspace, Ctrl-C interrupt, and the two-stage tab
// completion protocol.
package lineeditor

import "golang.org/x/term"

// RawModeGuard is the sole owner of the terminal's attribute mutation for
// its lifetime. It is acquired on entry to ReadLine and released on every
// exit path, normal or not, restoring the original attributes.
type RawModeGuard struct {
	fd       int
	original *term.State
}

// EnableRawMode puts the terminal identified by fd into raw mode (no line
// buffering, no echo, no signal generation from typed characters) and
// returns a guard that restores the original attributes on Release.
func EnableRawMode(fd int) (*RawModeGuard, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &RawModeGuard{fd: fd, original: state}, nil
}

// Release restores the terminal's original attributes. Safe to call
// exactly once; callers invoke it via defer immediately after acquiring
// the guard so it runs on every return path.
func (g *RawModeGuard) Release() error {
	return term.Restore(g.fd, g.original)
}
