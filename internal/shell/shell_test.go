package shell

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// runScript feeds commands through a real pipe (so Shell.Run's term.IsTerminal
// check takes the non-tty branch) and returns everything written to stdout
// and stderr, which share one buffer.
func runScript(t *testing.T, commands ...string) (stdout string, err error) {
	t.Helper()

	r, w, pipeErr := os.Pipe()
	if pipeErr != nil {
		t.Fatalf("os.Pipe: %v", pipeErr)
	}

	go func() {
		io.WriteString(w, strings.Join(commands, "\n")+"\n")
		w.Close()
	}()

	var out bytes.Buffer
	sh := New(r, &out, &out)
	runErr := sh.Run()
	return out.String(), runErr
}

func TestShell_EchoWithEmbeddedSpaces(t *testing.T) {
	out, err := runScript(t, "echo 'hello    world'", "exit")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "hello    world\n") {
		t.Fatalf("output = %q, want it to contain the literal spacing", out)
	}
}

func TestShell_AdjacentQuoteSpansConcatenate(t *testing.T) {
	out, err := runScript(t, `echo "a"'b'"c"'d'`, "exit")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "abcd\n") {
		t.Fatalf("output = %q, want it to contain \"abcd\"", out)
	}
}

func TestShell_BackslashOutsideQuotesEscapesNextChar(t *testing.T) {
	out, err := runScript(t, `echo \$HOME`, "exit")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "$HOME\n") {
		t.Fatalf("output = %q, want it to contain a literal \"$HOME\"", out)
	}
}

func TestShell_CdIntoRegularFileReportsNotADirectory(t *testing.T) {
	tmp := t.TempDir()
	file := tmp + "/regular-file"
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := runScript(t, "cd "+file, "exit")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "Not a directory") {
		t.Fatalf("output = %q, want it to mention \"Not a directory\"", out)
	}
}

func TestShell_ExitWithNonNumericArgumentReportsAndContinues(t *testing.T) {
	out, err := runScript(t, "exit abc", "echo still-alive", "exit")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "still-alive\n") {
		t.Fatalf("output = %q, want the shell to continue after a bad exit argument", out)
	}
}

func TestShell_UnclosedQuoteReportsAndContinues(t *testing.T) {
	out, err := runScript(t, "echo 'hello world", "echo still-alive", "exit")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "still-alive\n") {
		t.Fatalf("output = %q, want the shell to continue after an unclosed quote", out)
	}
}

func TestShell_ExitStatusCarriesLastExitArgument(t *testing.T) {
	_, err := runScript(t, "exit 7")
	code, ok := ExitCode(err)
	if !ok {
		t.Fatalf("ExitCode(%v) ok = false, want true", err)
	}
	if code != 7 {
		t.Fatalf("code = %d, want 7", code)
	}
}

func TestShell_AppendRedirectionAcrossTwoCommandsPreservesOrder(t *testing.T) {
	tmp := t.TempDir()
	path := tmp + "/log.txt"

	_, err := runScript(t, "echo a >> "+path, "echo b >> "+path, "exit")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	content, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("ReadFile: %v", readErr)
	}
	if string(content) != "a\nb\n" {
		t.Fatalf("content = %q, want %q", content, "a\nb\n")
	}
}
