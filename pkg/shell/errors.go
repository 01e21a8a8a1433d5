package shell

import "fmt"

// ErrorKind classifies a shell-level failure so the output handler and
// builtins can report a consistent message without type-switching on
// concrete error values. The set is closed: eleven kinds, the last of
// which (ErrUncontrolled) wraps an OS/IO error that no other kind
// classifies.
type ErrorKind int

const (
	// ErrCommandNotFound: no registry match and no path match.
	ErrCommandNotFound ErrorKind = iota
	// ErrTooManyArguments: argument-count violation by a built-in.
	ErrTooManyArguments
	// ErrEmptyArgs: a built-in requires at least N arguments and got fewer.
	ErrEmptyArgs
	// ErrParsing: an argument value had the wrong shape (e.g. exit abc).
	ErrParsing
	// ErrDirectoryNotFound: cd's target does not exist.
	ErrDirectoryNotFound
	// ErrNotADirectory: cd's target exists but is not a directory.
	ErrNotADirectory
	// ErrMissingClosingQuote: the parser reached end of input with an open quote.
	ErrMissingClosingQuote
	// ErrMissingRedirectionTarget: a redirection operator had nothing after it.
	ErrMissingRedirectionTarget
	// ErrNotFound: a type query resolved to neither a built-in nor a path entry.
	ErrNotFound
	// ErrExternal: failure spawning or communicating with an external process.
	ErrExternal
	// ErrUncontrolled: a wrapped OS/IO error that is not otherwise classified.
	ErrUncontrolled
)

var errorKindTemplates = map[ErrorKind]string{
	ErrCommandNotFound:          "command not found",
	ErrTooManyArguments:         "too many arguments",
	ErrEmptyArgs:                "not enough arguments",
	ErrParsing:                  "invalid argument",
	ErrDirectoryNotFound:        "No such file or directory",
	ErrNotADirectory:            "Not a directory",
	ErrMissingClosingQuote:      "unclosed quote",
	ErrMissingRedirectionTarget: "missing redirect destination",
	ErrNotFound:                 "not found",
	ErrExternal:                 "external command failed",
	ErrUncontrolled:             "unexpected error",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindTemplates[k]; ok {
		return s
	}
	return "unknown error"
}

// ShellError is the concrete error type carried by a CommandResult's Error
// variant. It pairs a closed ErrorKind with the context that produced it
// (the command or built-in name, and the argument or path at fault, when
// relevant) and an optional wrapped cause.
type ShellError struct {
	Kind    ErrorKind
	Command string
	Detail  string // e.g. the offending path or argument; may be empty
	Cause   error
}

func (e *ShellError) Error() string {
	switch {
	case e.Command != "" && e.Detail != "":
		return fmt.Sprintf("%s: %s: %s", e.Command, e.Detail, e.Kind)
	case e.Command != "":
		return fmt.Sprintf("%s: %s", e.Command, e.Kind)
	default:
		return e.Kind.String()
	}
}

func (e *ShellError) Unwrap() error {
	return e.Cause
}

// NewShellError constructs a ShellError for the given command and kind,
// optionally naming the offending detail and wrapping an underlying cause.
func NewShellError(command string, kind ErrorKind, detail string, cause error) *ShellError {
	return &ShellError{Kind: kind, Command: command, Detail: detail, Cause: cause}
}
