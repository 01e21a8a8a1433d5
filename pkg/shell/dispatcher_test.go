package shell

import (
	"context"
	"io"
	"testing"
)

type stubExecutor struct {
	stdout, stderr string
	err            error
}

func (s *stubExecutor) Execute(_ context.Context, _ string, _ []string, _ io.Reader) (string, string, error) {
	return s.stdout, s.stderr, s.err
}

func TestDispatcher_PrefersBuiltinOverExternal(t *testing.T) {
	builtins := map[string]BuiltinHandler{
		"echo": func(args []string) CommandResult { return Stdio("builtin\n", "") },
	}
	executor := &stubExecutor{err: ErrNotFound}
	dispatcher := NewDispatcher(builtins, executor)

	result := dispatcher.Dispatch(context.Background(), "echo", nil, IOBindings{})
	if result.Kind != ResultStdio || result.Stdout != "builtin\n" {
		t.Fatalf("got %+v, want the builtin's result", result)
	}
}

func TestDispatcher_FallsThroughToExternal(t *testing.T) {
	builtins := map[string]BuiltinHandler{}
	executor := &stubExecutor{stdout: "output\n"}
	dispatcher := NewDispatcher(builtins, executor)

	result := dispatcher.Dispatch(context.Background(), "ls", nil, IOBindings{})
	if result.Kind != ResultStdio || result.Stdout != "output\n" {
		t.Fatalf("got %+v, want the external command's captured stdout", result)
	}
}

func TestDispatcher_ExternalFailureIsWrapped(t *testing.T) {
	builtins := map[string]BuiltinHandler{}
	executor := &stubExecutor{err: errUnexpected}
	dispatcher := NewDispatcher(builtins, executor)

	result := dispatcher.Dispatch(context.Background(), "broken", nil, IOBindings{})
	if result.Kind != ResultError {
		t.Fatalf("Kind = %v, want ResultError", result.Kind)
	}
	shellErr, ok := result.Err.(*ShellError)
	if !ok || shellErr.Kind != ErrExternal {
		t.Fatalf("Err = %v, want ErrExternal", result.Err)
	}
}

func TestDispatcher_NeitherHandlerMatchesIsCommandNotFound(t *testing.T) {
	builtins := map[string]BuiltinHandler{}
	executor := &stubExecutor{err: ErrNotFound}
	dispatcher := NewDispatcher(builtins, executor)

	result := dispatcher.Dispatch(context.Background(), "nope", nil, IOBindings{})
	shellErr, ok := result.Err.(*ShellError)
	if !ok || shellErr.Kind != ErrCommandNotFound {
		t.Fatalf("Err = %v, want ErrCommandNotFound", result.Err)
	}
}

var errUnexpected = errCustom("spawn failed")

type errCustom string

func (e errCustom) Error() string { return string(e) }
