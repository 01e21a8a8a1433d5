package lineeditor

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Completer is the line editor's sole collaborator: it resolves the
// current buffer (as typed so far) to a completion suffix or a
// multi-candidate listing. Satisfied by *shell.CompletionEngine.
type Completer interface {
	Complete(prefix string, multiple bool) (string, bool)
}

// ResultKind discriminates what ReadLine returns.
type ResultKind int

const (
	// ResultInput: the user finished a line with CR/LF.
	ResultInput ResultKind = iota
	// ResultReset: the user pressed Ctrl-C; the REPL should reprint the prompt.
	ResultReset
	// ResultMultiCompletion: a second tab produced a candidate listing; the
	// REPL should print it below the prompt and redraw the buffer as-is.
	ResultMultiCompletion
)

// Result is what ReadLine returns on every non-error exit path.
type Result struct {
	Kind    ResultKind
	Line    string // valid when Kind == ResultInput
	Buffer  string // the in-progress buffer, valid when Kind == ResultMultiCompletion
	Listing string // the candidate display string, valid when Kind == ResultMultiCompletion
}

const (
	bell = "\x07"
	crlf = "\r\n"
)

// Editor owns the raw byte-at-a-time read loop. fd is the file descriptor
// to place in raw mode (typically stdin's); out receives every echoed
// byte, backspace sequence, bell, and the final CRLF.
type Editor struct {
	fd        int
	in        io.Reader
	out       io.Writer
	completer Completer
	log       *logrus.Logger
}

// NewEditor constructs a line editor. fd must be the descriptor backing in
// (raw mode is a property of the descriptor, not the io.Reader wrapper).
func NewEditor(fd int, in io.Reader, out io.Writer, completer Completer, log *logrus.Logger) *Editor {
	return &Editor{fd: fd, in: in, out: out, completer: completer, log: log}
}

// ReadLine enables raw mode, reads and echoes bytes one at a time, and
// returns once the user submits a line, cancels with Ctrl-C, or requests a
// multi-candidate listing on a second tab. The raw-mode guard is released
// on every return path via defer, per the component's ownership invariant.
func (e *Editor) ReadLine() (Result, error) {
	guard, err := EnableRawMode(e.fd)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if err := guard.Release(); err != nil {
			e.log.WithError(err).Warn("failed to restore terminal state")
		}
	}()

	var buffer strings.Builder
	tabPressedOnce := false
	readBuf := make([]byte, 1)

	for {
		if _, err := io.ReadFull(e.in, readBuf); err != nil {
			e.log.WithError(err).Warn("stdin read failed")
			return Result{}, err
		}

		outcome := processByte(readBuf[0], &buffer, &tabPressedOnce, e.completer)

		switch outcome.kind {
		case outcomeEcho:
			io.WriteString(e.out, outcome.text)
		case outcomeBackspace:
			io.WriteString(e.out, "\b \b")
		case outcomeCompletion:
			io.WriteString(e.out, outcome.text)
		case outcomeNoCompletion:
			io.WriteString(e.out, bell)
		case outcomeMultiCompletion:
			return Result{Kind: ResultMultiCompletion, Buffer: buffer.String(), Listing: outcome.text}, nil
		case outcomeSubmit:
			io.WriteString(e.out, crlf)
			return Result{Kind: ResultInput, Line: buffer.String()}, nil
		case outcomeInterrupted:
			io.WriteString(e.out, "^C"+crlf)
			return Result{Kind: ResultReset}, nil
		case outcomeIgnore:
			// nothing to echo
		}
	}
}

// byteOutcome classifies the effect of one input byte, separated from the
// raw-mode read loop so the dispatch logic is testable without a real tty.
type byteOutcome int

const (
	outcomeEcho byteOutcome = iota
	outcomeBackspace
	outcomeCompletion
	outcomeNoCompletion
	outcomeMultiCompletion
	outcomeSubmit
	outcomeInterrupted
	outcomeIgnore
)

type byteResult struct {
	kind byteOutcome
	text string
}

// processByte implements the byte-class dispatch table. It mutates buffer
// and tabPressedOnce in place and reports what happened so the caller can
// decide what to echo.
func processByte(b byte, buffer *strings.Builder, tabPressedOnce *bool, completer Completer) byteResult {
	switch {
	case b == '\t':
		multiple := *tabPressedOnce
		suffix, ok := completer.Complete(buffer.String(), multiple)

		if multiple {
			*tabPressedOnce = false
			if ok {
				return byteResult{kind: outcomeMultiCompletion, text: suffix}
			}
			return byteResult{kind: outcomeIgnore}
		}

		if ok {
			buffer.WriteString(suffix)
			*tabPressedOnce = false
			return byteResult{kind: outcomeCompletion, text: suffix}
		}

		*tabPressedOnce = true
		return byteResult{kind: outcomeNoCompletion}

	case b == '\r' || b == '\n':
		return byteResult{kind: outcomeSubmit}

	case b == 0x7f || b == 0x08:
		*tabPressedOnce = false
		if buffer.Len() == 0 {
			return byteResult{kind: outcomeIgnore}
		}
		popLastRune(buffer)
		return byteResult{kind: outcomeBackspace}

	case b == 0x03:
		return byteResult{kind: outcomeInterrupted}

	case b >= 0x20 && b < 0x7f:
		*tabPressedOnce = false
		buffer.WriteByte(b)
		return byteResult{kind: outcomeEcho, text: string(b)}

	default:
		*tabPressedOnce = false
		return byteResult{kind: outcomeIgnore}
	}
}

func popLastRune(buffer *strings.Builder) {
	s := buffer.String()
	_, size := utf8.DecodeLastRuneInString(s)
	buffer.Reset()
	buffer.WriteString(s[:len(s)-size])
}
