package shell

import "context"

// Handler is one link in the command dispatcher's chain of responsibility.
// Handle returns (result, true) when it recognized and ran the command, or
// (zero, false) to let the next handler in the chain try.
type Handler interface {
	Handle(ctx context.Context, name string, args []string, io IOBindings) (CommandResult, bool)
}

// builtinHandler adapts the built-in registry into a dispatcher Handler.
type builtinHandler struct {
	builtins map[string]BuiltinHandler
}

func (h *builtinHandler) Handle(_ context.Context, name string, args []string, _ IOBindings) (CommandResult, bool) {
	fn, ok := h.builtins[name]
	if !ok {
		return CommandResult{}, false
	}
	return fn(args), true
}

// externalHandler adapts the external process executor into a dispatcher
// Handler. Like a built-in, it hands back its output as a Stdio result
// rather than writing anywhere itself, so the output handler routes both
// uniformly.
type externalHandler struct {
	executor Executor
}

func (h *externalHandler) Handle(ctx context.Context, name string, args []string, io IOBindings) (CommandResult, bool) {
	stdout, stderr, err := h.executor.Execute(ctx, name, args, io.Stdin)
	if err == ErrNotFound {
		return CommandResult{}, false
	}
	if err != nil {
		return ErrorResult(NewShellError(name, ErrExternal, "", err)), true
	}
	return Stdio(stdout, stderr), true
}

// Dispatcher runs a command through an ordered chain of handlers: the
// built-in registry first, then the external executor. A handler that
// declines (returns handled=false) passes the command to the next one;
// if none handle it, CommandNotFound is reported.
type Dispatcher struct {
	handlers []Handler
}

// NewDispatcher builds the standard two-stage chain: built-ins, then
// PATH-resolved external executables.
func NewDispatcher(builtins map[string]BuiltinHandler, executor Executor) *Dispatcher {
	return &Dispatcher{
		handlers: []Handler{
			&builtinHandler{builtins: builtins},
			&externalHandler{executor: executor},
		},
	}
}

// Dispatch runs name/args through the chain, returning the first handled
// result, or a CommandNotFound error if every handler declined.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args []string, io IOBindings) CommandResult {
	for _, h := range d.handlers {
		if result, handled := h.Handle(ctx, name, args, io); handled {
			return result
		}
	}
	return ErrorResult(NewShellError(name, ErrCommandNotFound, "", nil))
}
