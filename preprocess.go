// File: hoplite/preprocess.go
package hoplite

import (
	"os"
	"strings"
)

// Preprocessor rewrites string leaves after merging and before
// decoding. Every string node in the merged tree passes through each
// registered preprocessor in registration order; non-string nodes are
// untouched.
type Preprocessor interface {
	Process(value string) string
}

// PreprocessorFunc adapts a plain function to the Preprocessor
// interface.
type PreprocessorFunc func(string) string

// Process implements Preprocessor.
func (f PreprocessorFunc) Process(value string) string { return f(value) }

// EnvExpand returns a preprocessor that substitutes ${VAR} references
// with the named environment variable, supporting the shell-style
// ${VAR:-default} fallback for unset or empty variables. It is not
// registered by default; opt in with WithPreprocessor.
func EnvExpand() Preprocessor {
	return PreprocessorFunc(func(value string) string {
		if !strings.Contains(value, "$") {
			return value
		}
		return os.Expand(value, func(ref string) string {
			name, def, hasDef := strings.Cut(ref, ":-")
			v, ok := os.LookupEnv(name)
			if hasDef && (!ok || v == "") {
				return def
			}
			if !ok {
				// Leave unknown references intact so a typo shows up in
				// the decoded value instead of vanishing silently.
				return "${" + ref + "}"
			}
			return v
		})
	})
}

// applyPreprocessors rebuilds the tree with every string leaf run
// through procs in order. Origins and structure are preserved.
func applyPreprocessors(n Node, procs []Preprocessor) Node {
	if len(procs) == 0 {
		return n
	}
	switch n.kind {
	case KindString:
		s := n.s
		for _, p := range procs {
			s = p.Process(s)
		}
		return StringNode(s, n.origin)
	case KindList:
		items := make([]Node, len(n.items))
		for i, item := range n.items {
			items[i] = applyPreprocessors(item, procs)
		}
		return ListNode(n.origin, items...)
	case KindMap:
		entries := make([]MapEntry, 0, len(n.keys))
		for _, k := range n.keys {
			entries = append(entries, Entry(k, applyPreprocessors(n.fields[k], procs)))
		}
		return MapNode(n.origin, entries...)
	default:
		return n
	}
}
