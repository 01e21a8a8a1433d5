package shell

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestDefaultExecutor_NotFoundIsReportedWithoutSpawning(t *testing.T) {
	executor := &DefaultExecutor{LookupFunc: func(string) (string, bool) { return "", false }}

	stdout, stderr, err := executor.Execute(context.Background(), "nonexistent", nil, nil)
	if err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if stdout != "" || stderr != "" {
		t.Fatalf("expected no output when the command can't be found, got stdout=%q stderr=%q", stdout, stderr)
	}
}

func TestDefaultExecutor_CapturesStdout(t *testing.T) {
	const echoPath = "/bin/echo"
	if _, err := os.Stat(echoPath); err != nil {
		t.Skipf("%s not available in this environment: %v", echoPath, err)
	}

	executor := &DefaultExecutor{LookupFunc: func(name string) (string, bool) {
		if name == "echo" {
			return echoPath, true
		}
		return "", false
	}}

	stdout, _, err := executor.Execute(context.Background(), "echo", []string{"hi"}, nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(stdout, "hi") {
		t.Fatalf("stdout = %q, want it to contain %q", stdout, "hi")
	}
}

func TestExitCodeOf(t *testing.T) {
	if got := exitCodeOf(nil); got != 0 {
		t.Fatalf("exitCodeOf(nil) = %d, want 0", got)
	}
}
