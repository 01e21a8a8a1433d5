package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// BuiltinHandler is the invocation contract every built-in command satisfies:
// given its arguments (excluding the command name), return a CommandResult.
// Built-ins never write to an output stream directly; the output handler
// routes whatever they return.
type BuiltinHandler func(args []string) CommandResult

// NewBuiltins constructs the closed registry of built-in commands: exit,
// echo, type, pwd, cd. pathDirs is shared with the dispatcher and
// completion engine so that type and path lookups agree.
func NewBuiltins(pathDirs *PathDirs) map[string]BuiltinHandler {
	builtins := make(map[string]BuiltinHandler)

	builtins["exit"] = func(args []string) CommandResult {
		switch len(args) {
		case 0:
			return Exit(0)
		case 1:
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return ErrorResult(NewShellError("exit", ErrParsing, args[0], err))
			}
			return Exit(n)
		default:
			return ErrorResult(NewShellError("exit", ErrTooManyArguments, "", nil))
		}
	}

	builtins["echo"] = func(args []string) CommandResult {
		return Stdio(strings.Join(args, " ")+"\n", "")
	}

	builtins["pwd"] = func(args []string) CommandResult {
		dir, err := os.Getwd()
		if err != nil {
			return ErrorResult(NewShellError("pwd", ErrUncontrolled, "", err))
		}
		return Stdio(dir+"\n", "")
	}

	builtins["cd"] = func(args []string) CommandResult {
		if len(args) > 1 {
			return ErrorResult(NewShellError("cd", ErrTooManyArguments, "", nil))
		}

		target := ""
		if len(args) == 1 {
			target = args[0]
		}

		resolved, err := resolveCdTarget(target)
		if err != nil {
			return ErrorResult(err)
		}

		info, statErr := os.Stat(resolved)
		if statErr != nil {
			if os.IsNotExist(statErr) {
				return ErrorResult(NewShellError("cd", ErrDirectoryNotFound, resolved, statErr))
			}
			return ErrorResult(NewShellError("cd", ErrUncontrolled, resolved, statErr))
		}
		if !info.IsDir() {
			return ErrorResult(NewShellError("cd", ErrNotADirectory, resolved, nil))
		}

		if err := os.Chdir(resolved); err != nil {
			return ErrorResult(NewShellError("cd", ErrUncontrolled, resolved, err))
		}

		return Empty()
	}

	builtins["type"] = func(args []string) CommandResult {
		if len(args) == 0 {
			return ErrorResult(NewShellError("type", ErrEmptyArgs, "", nil))
		}
		if len(args) > 1 {
			return ErrorResult(NewShellError("type", ErrTooManyArguments, "", nil))
		}

		name := args[0]

		if _, ok := builtins[name]; ok {
			return Stdio(fmt.Sprintf("%s is a shell builtin\n", name), "")
		}

		if path, ok := pathDirs.Find(name); ok {
			return Stdio(fmt.Sprintf("%s is %s\n", name, path), "")
		}

		return ErrorResult(NewShellError("type", ErrNotFound, name, nil))
	}

	return builtins
}

// resolveCdTarget expands cd's target per spec: empty or "~" or "~/" go to
// $HOME; "~/rest" is home-relative; anything else is a literal path.
func resolveCdTarget(target string) (string, *ShellError) {
	home := os.Getenv("HOME")

	if target == "" || target == "~" {
		if home == "" {
			return "", NewShellError("cd", ErrUncontrolled, "", fmt.Errorf("HOME not set"))
		}
		return home, nil
	}

	if strings.HasPrefix(target, "~/") {
		if home == "" {
			return "", NewShellError("cd", ErrUncontrolled, "", fmt.Errorf("HOME not set"))
		}
		return filepath.Join(home, target[2:]), nil
	}

	return target, nil
}
