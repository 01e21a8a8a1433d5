// Package shell is the REPL driver: it wires the path-directory provider,
// completion engine, lexical parser, line editor, command dispatcher, and
// output handler from pkg/shell and internal/lineeditor, and runs the
// read-eval-print loop. It holds no business logic of its own.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/naveen-rn/goshell/internal/lineeditor"
	pshell "github.com/naveen-rn/goshell/pkg/shell"
)

const prompt = "$ "

// Shell is the top-level REPL. Construct with New and run with Run.
type Shell struct {
	in     *os.File
	out    io.Writer
	errOut io.Writer
	log    *logrus.Logger

	builtins   map[string]pshell.BuiltinHandler
	parser     pshell.Parser
	argParser  *pshell.ArgumentParser
	redirector *pshell.RedirectionManager
	dispatcher *pshell.Dispatcher
	output     *pshell.OutputHandler
	editor     *lineeditor.Editor
}

// New wires every component in the order pathdirs -> completion -> parser ->
// lineeditor -> dispatcher -> output, then builds the REPL itself. in must
// be a terminal-backed file (its descriptor is placed in raw mode while a
// line is being read); for non-terminal input, editor construction still
// succeeds but raw-mode-specific behavior (tab protocol, ^C) only applies
// when reading from an actual tty.
func New(in *os.File, out, errOut io.Writer) *Shell {
	log := logrus.New()
	log.SetOutput(errOut)

	pathDirs := pshell.NewPathDirs()
	builtins := pshell.NewBuiltins(pathDirs)
	completion := pshell.NewCompletionEngine(builtins, pathDirs)

	fileOpener := &pshell.DefaultFileOpener{}
	fileManager := pshell.DefaultFileManager{}
	redirector := pshell.NewRedirectionManager(fileOpener)

	executor := &pshell.DefaultExecutor{LookupFunc: pathDirs.Find, Log: log}

	return &Shell{
		in:         in,
		out:        out,
		errOut:     errOut,
		log:        log,
		builtins:   builtins,
		parser:     pshell.NewDefaultParser(),
		argParser:  pshell.NewArgumentParser(redirector, fileManager),
		redirector: redirector,
		dispatcher: pshell.NewDispatcher(builtins, executor),
		output:     pshell.NewOutputHandler(),
		editor:     lineeditor.NewEditor(int(in.Fd()), in, out, completion, log),
	}
}

// Run starts the read-eval-print loop. When the exit built-in runs, it
// returns nil for status 0 and otherwise an error carrying the status (see
// ExitCode). It returns the read error if reading the input stream fails
// in a way the line editor cannot recover from.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, prompt)

		line, readErr := s.readLine()
		if readErr != nil {
			return readErr
		}
		if line == "" {
			continue
		}

		args, err := s.parser.Parse(line)
		if err != nil {
			s.reportParseError(err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		command := args[0]
		rest := args[1:]

		parsedCommand, err := s.argParser.Parse(rest)
		if err != nil {
			fmt.Fprintln(s.errOut, err)
			continue
		}

		baseBindings := pshell.IOBindings{Stdin: s.in, Stdout: s.out, Stderr: s.errOut}
		bindings, cleanup, err := s.redirector.ApplyRedirections(parsedCommand.Redirections, baseBindings)
		if err != nil {
			fmt.Fprintln(s.errOut, err)
			continue
		}

		result := s.dispatcher.Dispatch(context.Background(), command, parsedCommand.Args, bindings)

		// Route must see the redirected file still open: built-ins and the
		// external executor both hand back their output as strings rather
		// than streaming it, so the write only happens here.
		exit, code := s.output.Route(result, bindings)

		if cleanup != nil {
			cleanup()
		}

		if exit {
			return normalizeExit(code)
		}
	}
}

// readLine drives the line editor for one input line, redrawing the prompt
// on cancellation and replaying the multi-completion listing when the user
// double-tabs. It is the only place the REPL driver touches raw terminal
// concerns; everything else speaks in plain strings.
func (s *Shell) readLine() (string, error) {
	if !term.IsTerminal(int(s.in.Fd())) {
		return s.readLineFromPipe()
	}

	for {
		result, err := s.editor.ReadLine()
		if err != nil {
			return "", err
		}

		switch result.Kind {
		case lineeditor.ResultInput:
			return result.Line, nil
		case lineeditor.ResultReset:
			fmt.Fprint(s.out, prompt)
		case lineeditor.ResultMultiCompletion:
			fmt.Fprintf(s.out, "\r\n%s\r\n%s%s", result.Listing, prompt, result.Buffer)
		}
	}
}

// readLineFromPipe supports non-interactive input (scripts, tests) where
// there is no tty to place in raw mode: a plain line read, matching the
// behavior of every other shell when its stdin is redirected from a file.
func (s *Shell) readLineFromPipe() (string, error) {
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := s.in.Read(buf)
		if n == 1 {
			if buf[0] == '\n' {
				break
			}
			line = append(line, buf[0])
		}
		if err != nil {
			if err == io.EOF && len(line) > 0 {
				break
			}
			return "", err
		}
	}
	return string(line), nil
}

func (s *Shell) reportParseError(err error) {
	kind := pshell.ErrMissingClosingQuote
	if !errors.Is(err, pshell.ErrUnclosedQuote) {
		kind = pshell.ErrUncontrolled
	}
	fmt.Fprintln(s.errOut, pshell.NewShellError("", kind, "", err))
}

// normalizeExit turns an out-of-range exit status into the same clamping a
// POSIX shell performs (status is a byte), returning nil only for 0.
func normalizeExit(code int) error {
	status := code & 0xFF
	if status == 0 {
		return nil
	}
	return exitError(status)
}

type exitError int

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

// ExitCode extracts the status an exitError carries, for callers (main)
// that need to set the process's own exit code.
func ExitCode(err error) (int, bool) {
	var e exitError
	if errors.As(err, &e) {
		return int(e), true
	}
	return 0, false
}
