package shell

import (
	"sort"
	"strings"
)

// completionStage is one link in the completion engine's chain of
// responsibility: it knows how to enumerate candidate names for a prefix,
// but nothing about ordering or fallback.
type completionStage interface {
	items(prefix string) []string
}

type builtinCompletionStage struct {
	names []string
}

func (s *builtinCompletionStage) items(prefix string) []string {
	var matches []string
	for _, name := range s.names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}

type pathCompletionStage struct {
	pathDirs *PathDirs
}

func (s *pathCompletionStage) items(prefix string) []string {
	var matches []string
	for _, name := range s.pathDirs.Names() {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}

// CompletionEngine resolves a tab-completion request against a fixed,
// explicit, ordered list of stages: built-in names first, then PATH
// executables. A stage that cannot make definitive progress on a prefix
// (no matches, or an ambiguous prefix that adds nothing) falls through to
// the next one, mirroring the source's linked completion components as an
// explicit slice rather than backward pointers.
type CompletionEngine struct {
	stages []completionStage
}

// NewCompletionEngine wires the standard two-stage chain. builtins supplies
// the closed set of built-in names; pathDirs is the shared path-directory
// provider also used by the dispatcher and the type built-in.
func NewCompletionEngine(builtins map[string]BuiltinHandler, pathDirs *PathDirs) *CompletionEngine {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	return &CompletionEngine{
		stages: []completionStage{
			&builtinCompletionStage{names: names},
			&pathCompletionStage{pathDirs: pathDirs},
		},
	}
}

// Complete resolves prefix against the chain. When multiple is true it
// returns every match for the first stage that has any, joined by two
// spaces (the multi-listing shown on a second consecutive tab). Otherwise
// it returns the single unambiguous completion suffix, or the longest
// common prefix beyond what was already typed, or (\"\", false) when no
// stage can make progress.
func (e *CompletionEngine) Complete(prefix string, multiple bool) (string, bool) {
	for _, stage := range e.stages {
		if result, ok := completeStage(stage, prefix, multiple); ok {
			return result, true
		}
	}
	return "", false
}

func completeStage(stage completionStage, prefix string, multiple bool) (string, bool) {
	if prefix == "" {
		return "", false
	}

	matches := stage.items(prefix)
	if len(matches) == 0 {
		return "", false
	}

	sort.Strings(matches)

	if multiple {
		return strings.Join(matches, "  "), true
	}

	return singleCompletion(matches, prefix)
}

// singleCompletion implements the spec's disambiguation rule: a unique
// match commits with a trailing space; several matches advance only as far
// as their longest common prefix, or report no progress at all.
func singleCompletion(matches []string, prefix string) (string, bool) {
	if len(matches) == 1 {
		return matches[0][len(prefix):] + " ", true
	}

	lcp := longestCommonPrefix(matches)
	if len(lcp) <= len(prefix) {
		return "", false
	}

	return lcp[len(prefix):], true
}

func longestCommonPrefix(matches []string) string {
	first := matches[0]
	for i := 0; i < len(first); i++ {
		c := first[i]
		for _, m := range matches[1:] {
			if i >= len(m) || m[i] != c {
				return first[:i]
			}
		}
	}
	return first
}
