// File: hoplite/convenience.go
package hoplite

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// LoadAs loads the configuration into a fresh T using the loader's
// full pipeline:
//
//	cfg, err := hoplite.LoadAs[AppConfig](loader)
func LoadAs[T any](l *Loader) (T, error) {
	var out T
	if err := l.Scan(&out); err != nil {
		return out, err
	}
	return out, nil
}

// MustLoadAs is LoadAs for configuration that must be present for the
// program to start. It panics with the full multi-line failure report,
// so every bad value appears once, at startup, instead of the first
// one at a time.
func MustLoadAs[T any](l *Loader) T {
	out, err := LoadAs[T](l)
	if err != nil {
		panic(fmt.Sprintf("hoplite: %v", err))
	}
	return out
}

// Quick loads the given files with the default stack in a single call.
// This is the recommended entry point for most applications:
//
//	cfg, err := hoplite.Quick[AppConfig]("app.toml")
func Quick[T any](paths ...string) (T, error) {
	return LoadAs[T](New().WithFiles(paths...))
}

// MustQuick is Quick but panics on error.
func MustQuick[T any](paths ...string) T {
	return MustLoadAs[T](New().WithFiles(paths...))
}

// Dump writes the merged tree to w in TOML format, mainly for
// debugging which source won each key. Secrets are not masked here:
// the tree holds raw strings and masking only exists on decoded
// Secret values.
func (l *Loader) Dump(w io.Writer) error {
	res := l.LoadNode()
	if err := res.Err(); err != nil {
		return err
	}
	root := res.Value()
	switch root.Kind() {
	case KindUndefined:
		return nil
	case KindMap:
		return toml.NewEncoder(w).Encode(nodeToAny(root))
	default:
		return fmt.Errorf("configuration root is %s, not a map", root.Kind())
	}
}

// nodeToAny converts a tree to plain Go values for encoding. Map
// entries that are undefined or null are dropped: TOML has no way to
// write them.
func nodeToAny(n Node) any {
	switch n.Kind() {
	case KindBool:
		return n.BoolVal()
	case KindLong:
		return n.LongVal()
	case KindDouble:
		return n.DoubleVal()
	case KindString:
		return n.StringVal()
	case KindList:
		items := make([]any, 0, len(n.Items()))
		for _, item := range n.Items() {
			if item.Kind() == KindUndefined || item.Kind() == KindNull {
				continue
			}
			items = append(items, nodeToAny(item))
		}
		return items
	case KindMap:
		out := make(map[string]any, len(n.Keys()))
		for _, k := range n.Keys() {
			child, _ := n.Field(k)
			if child.Kind() == KindUndefined || child.Kind() == KindNull {
				continue
			}
			out[k] = nodeToAny(child)
		}
		return out
	default:
		return nil
	}
}
