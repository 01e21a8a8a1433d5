package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Executor defines the interface for executing external commands.
//
// Unlike a built-in, an external command's output is captured rather than
// streamed: Execute waits for the child to exit and hands back everything
// it wrote to stdout and stderr as strings, the same shape a built-in's
// CommandResult carries (spec §4.4: "return Stdio(captured_stdout,
// captured_stderr)"). This lets the output handler apply the §4.5 routing
// table identically to built-ins and external commands, without either the
// dispatcher or the executor needing to know whether the caller
// redirected anything — and it sidesteps writing into a redirection
// target file that the REPL driver may have already closed by the time
// a streaming write would otherwise have landed.
type Executor interface {
	// Execute runs an external command to completion.
	//
	// Parameters:
	//   - ctx:   Context for cancellation and timeouts. When cancelled, the
	//     process is terminated (SIGKILL on Unix).
	//   - name:  Command name as typed on the command line (used for argv[0]
	//     and for PATH lookup).
	//   - args:  Arguments, not including the command name itself.
	//   - stdin: Input stream bound to the child's stdin.
	//
	// Returns:
	//   - stdout, stderr: Everything the child wrote to each stream.
	//   - error: ErrNotFound if name isn't on PATH, nil otherwise. A
	//     nonzero exit status is not itself an error — the shell's own
	//     exit status is governed only by the exit built-in.
	Execute(ctx context.Context, name string, args []string, stdin io.Reader) (stdout, stderr string, err error)
}

// ErrNotFound is returned when an executable cannot be found in the PATH.
var ErrNotFound = errors.New("not found")

// IOBindings represents the I/O streams for command execution.
//
// Each binding connects a standard file descriptor to an io.Reader or
// io.Writer: Stdin (fd 0), Stdout (fd 1, normal output), Stderr (fd 2,
// error output). The REPL driver resolves these once per command, after
// applying any redirection, and passes the result down to the dispatcher.
type IOBindings struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultExecutor executes external commands with os/exec, capturing
// their output instead of streaming it directly to a caller-supplied
// writer.
type DefaultExecutor struct {
	// LookupFunc locates an executable by name, returning its full path.
	// Typically PathDirs.Find.
	LookupFunc func(name string) (string, bool)

	// Log receives a debug-level entry per external command naming its
	// exit status. Nil disables logging (tests need not supply one).
	Log *logrus.Logger
}

// Execute looks up name on PATH, spawns it with args, binds stdin, and
// waits for it to finish. Stdout and stderr are captured into buffers
// rather than connected directly to a writer, so the caller can route
// them through redirection exactly like a built-in's result.
func (e *DefaultExecutor) Execute(ctx context.Context, name string, args []string, stdin io.Reader) (string, string, error) {
	path, ok := e.LookupFunc(name)
	if !ok {
		return "", "", ErrNotFound
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Args = append([]string{name}, args...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if e.Log != nil {
		e.Log.WithFields(logrus.Fields{
			"command":   name,
			"exit_code": exitCodeOf(runErr),
		}).Debug("external command completed")
	}

	return stdout.String(), stderr.String(), nil
}

// exitCodeOf extracts a process's exit status from the error os/exec.Run
// returns, or -1 for abnormal termination (signal, spawn failure).
func exitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
