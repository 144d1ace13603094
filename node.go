// File: hoplite/node.go
package hoplite

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the shape of a Node. The set is closed: sources and
// parsers normalize every input format into these eight shapes, and
// decoders dispatch on them.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindLong
	KindDouble
	KindString
	KindList
	KindMap
)

// String returns the lowercase kind name used in failure messages.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindLong:
		return "long"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Node is one position in a parsed configuration tree. Nodes are
// immutable values: parsers build them, the merge step combines them,
// and decoders only read them. The zero value is the Undefined node,
// so looking up a missing key can return `Node{}` and the caller can
// distinguish "absent" from "present but null".
//
// Every node carries an origin tag (file path, "env", "override", ...)
// that survives merging and turns up in failure messages.
type Node struct {
	kind   Kind
	b      bool
	i      int64
	f      float64
	s      string
	items  []Node
	keys   []string
	fields map[string]Node
	origin string
}

// MapEntry is one key/value pair handed to MapNode. Entries keep the
// document order of the source that produced them.
type MapEntry struct {
	Key  string
	Node Node
}

// Entry pairs a key with a child node for MapNode.
func Entry(key string, n Node) MapEntry {
	return MapEntry{Key: key, Node: n}
}

// UndefinedNode marks the absence of a value at a position.
func UndefinedNode(origin string) Node {
	return Node{kind: KindUndefined, origin: origin}
}

// NullNode is an explicit null present in the source text.
func NullNode(origin string) Node {
	return Node{kind: KindNull, origin: origin}
}

// BoolNode wraps a boolean scalar.
func BoolNode(v bool, origin string) Node {
	return Node{kind: KindBool, b: v, origin: origin}
}

// LongNode wraps a 64-bit integer scalar.
func LongNode(v int64, origin string) Node {
	return Node{kind: KindLong, i: v, origin: origin}
}

// DoubleNode wraps a floating-point scalar.
func DoubleNode(v float64, origin string) Node {
	return Node{kind: KindDouble, f: v, origin: origin}
}

// StringNode wraps a string scalar.
func StringNode(v string, origin string) Node {
	return Node{kind: KindString, s: v, origin: origin}
}

// ListNode wraps an ordered sequence of child nodes.
func ListNode(origin string, items ...Node) Node {
	return Node{kind: KindList, items: items, origin: origin}
}

// MapNode builds a map node from entries, preserving entry order.
// A later entry with a duplicate key overwrites the earlier value but
// keeps the key's original position.
func MapNode(origin string, entries ...MapEntry) Node {
	n := Node{
		kind:   KindMap,
		keys:   make([]string, 0, len(entries)),
		fields: make(map[string]Node, len(entries)),
		origin: origin,
	}
	for _, e := range entries {
		if _, dup := n.fields[e.Key]; !dup {
			n.keys = append(n.keys, e.Key)
		}
		n.fields[e.Key] = e.Node
	}
	return n
}

// Kind reports the node's shape.
func (n Node) Kind() Kind { return n.kind }

// Origin reports where the node came from, e.g. "config.toml" or "env".
func (n Node) Origin() string { return n.origin }

// IsUndefined reports whether the node marks an absent value.
func (n Node) IsUndefined() bool { return n.kind == KindUndefined }

// BoolVal returns the boolean payload. Valid only for KindBool.
func (n Node) BoolVal() bool { return n.b }

// LongVal returns the integer payload. Valid only for KindLong.
func (n Node) LongVal() int64 { return n.i }

// DoubleVal returns the float payload. Valid only for KindDouble.
func (n Node) DoubleVal() float64 { return n.f }

// StringVal returns the string payload. Valid only for KindString.
func (n Node) StringVal() string { return n.s }

// Items returns the children of a list node in order. The returned
// slice must not be modified.
func (n Node) Items() []Node { return n.items }

// Len returns the number of children for list and map nodes.
func (n Node) Len() int {
	if n.kind == KindMap {
		return len(n.keys)
	}
	return len(n.items)
}

// Keys returns a map node's keys in insertion order. The returned
// slice must not be modified.
func (n Node) Keys() []string { return n.keys }

// Field looks up a direct child of a map node by exact key.
// The second return is false when the key is absent or the node is
// not a map.
func (n Node) Field(key string) (Node, bool) {
	if n.kind != KindMap {
		return Node{}, false
	}
	child, ok := n.fields[key]
	return child, ok
}

// At navigates a dotted path with optional [i] list indexes, e.g.
// "server.hosts[0].port". An empty path returns the node itself.
// Any miss along the way returns an Undefined node.
func (n Node) At(path string) Node {
	if path == "" {
		return n
	}
	cur := n
	for _, seg := range splitPath(path) {
		if seg.index >= 0 {
			if cur.kind != KindList || seg.index >= len(cur.items) {
				return UndefinedNode(cur.origin)
			}
			cur = cur.items[seg.index]
			continue
		}
		child, ok := cur.Field(seg.key)
		if !ok {
			return UndefinedNode(cur.origin)
		}
		cur = child
	}
	return cur
}

// Equal compares two nodes structurally: same kind, same payload, and
// for containers the same children in the same order. Origins are
// diagnostic metadata and are ignored.
func (n Node) Equal(other Node) bool {
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case KindUndefined, KindNull:
		return true
	case KindBool:
		return n.b == other.b
	case KindLong:
		return n.i == other.i
	case KindDouble:
		return n.f == other.f
	case KindString:
		return n.s == other.s
	case KindList:
		if len(n.items) != len(other.items) {
			return false
		}
		for i := range n.items {
			if !n.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(n.keys) != len(other.keys) {
			return false
		}
		for i, k := range n.keys {
			if other.keys[i] != k {
				return false
			}
			if !n.fields[k].Equal(other.fields[k]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the node as a compact single-line literal, mainly for
// tests and debug output. Map keys appear in insertion order.
func (n Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n Node) write(sb *strings.Builder) {
	switch n.kind {
	case KindUndefined:
		sb.WriteString("undefined")
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(n.b))
	case KindLong:
		sb.WriteString(strconv.FormatInt(n.i, 10))
	case KindDouble:
		sb.WriteString(strconv.FormatFloat(n.f, 'g', -1, 64))
	case KindString:
		sb.WriteString(strconv.Quote(n.s))
	case KindList:
		sb.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				sb.WriteString(", ")
			}
			item.write(sb)
		}
		sb.WriteByte(']')
	case KindMap:
		sb.WriteByte('{')
		for i, k := range n.keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			child := n.fields[k]
			child.write(sb)
		}
		sb.WriteByte('}')
	}
}

// describe renders the kind and, for scalars, the value, for use in
// conversion failure messages, e.g. `string "old"` or `long 42`.
func (n Node) describe() string {
	switch n.kind {
	case KindBool:
		return fmt.Sprintf("bool %t", n.b)
	case KindLong:
		return fmt.Sprintf("long %d", n.i)
	case KindDouble:
		return fmt.Sprintf("double %s", strconv.FormatFloat(n.f, 'g', -1, 64))
	case KindString:
		return fmt.Sprintf("string %q", n.s)
	default:
		return n.kind.String()
	}
}

// sortedKeys returns a map node's keys in lexical order, used by
// sources that have no document order of their own.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
