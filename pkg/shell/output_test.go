package shell

import (
	"strings"
	"testing"
)

func TestOutputHandler_Route(t *testing.T) {
	tests := []struct {
		name       string
		result     CommandResult
		wantExit   bool
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:     "exit signals termination with its code",
			result:   Exit(3),
			wantExit: true,
			wantCode: 3,
		},
		{
			name:   "empty writes nothing",
			result: Empty(),
		},
		{
			name:       "stdio writes both streams",
			result:     Stdio("out\n", "err\n"),
			wantStdout: "out\n",
			wantStderr: "err\n",
		},
		{
			name:       "stdio with only stdout leaves stderr untouched",
			result:     Stdio("out\n", ""),
			wantStdout: "out\n",
		},
		{
			name:       "error is rendered to stderr",
			result:     ErrorResult(NewShellError("cmd", ErrNotFound, "x", nil)),
			wantStderr: "cmd: x: not found\n",
		},
	}

	handler := NewOutputHandler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr strings.Builder
			bindings := IOBindings{Stdout: &stdout, Stderr: &stderr}

			exit, code := handler.Route(tt.result, bindings)
			if exit != tt.wantExit || code != tt.wantCode {
				t.Fatalf("Route() = (%v, %d), want (%v, %d)", exit, code, tt.wantExit, tt.wantCode)
			}
			if stdout.String() != tt.wantStdout {
				t.Fatalf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if stderr.String() != tt.wantStderr {
				t.Fatalf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestOutputHandler_RedirectionIsolation(t *testing.T) {
	// Redirection isolation invariant: a stream bound to a file receives no
	// terminal bytes, and an untouched stream is unaffected by the other's
	// redirection. The output handler only ever writes to the bindings it
	// is given, so simulating "redirected" is just passing a separate writer.
	var terminal, file strings.Builder
	bindings := IOBindings{Stdout: &file, Stderr: &terminal}

	handler := NewOutputHandler()
	handler.Route(Stdio("to file\n", "to terminal\n"), bindings)

	if file.String() != "to file\n" {
		t.Fatalf("file = %q, want %q", file.String(), "to file\n")
	}
	if terminal.String() != "to terminal\n" {
		t.Fatalf("terminal = %q, want %q", terminal.String(), "to terminal\n")
	}
}
