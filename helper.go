// File: hoplite/helper.go
package hoplite

import (
	"strconv"
	"strings"
)

// joinPath extends a dotted path with a field name. The root path is
// the empty string, so the first segment joins without a dot.
func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// indexPath extends a path with a list index, e.g. "hosts" -> "hosts[0]".
func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// pathSegment is one step of a parsed path: a map key or, when index
// is non-negative, a list index.
type pathSegment struct {
	key   string
	index int
}

// splitPath parses a dotted path with optional [i] indexes into
// segments. "server.hosts[0].port" yields server, hosts, [0], port.
// Malformed index brackets are treated as part of the key, matching
// the permissive lookup behavior of Node.At.
func splitPath(path string) []pathSegment {
	var segs []pathSegment
	for _, part := range strings.Split(path, ".") {
		for {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				if part != "" {
					segs = append(segs, pathSegment{key: part, index: -1})
				}
				break
			}
			closing := strings.IndexByte(part[open:], ']')
			if closing < 0 {
				segs = append(segs, pathSegment{key: part, index: -1})
				break
			}
			idx, err := strconv.Atoi(part[open+1 : open+closing])
			if err != nil || idx < 0 {
				segs = append(segs, pathSegment{key: part, index: -1})
				break
			}
			if open > 0 {
				segs = append(segs, pathSegment{key: part[:open], index: -1})
			}
			segs = append(segs, pathSegment{index: idx})
			part = part[open+closing+1:]
			if part == "" {
				break
			}
		}
	}
	return segs
}

// isValidKeySegment reports whether a single path segment is a bare
// key: ASCII letters, digits, underscores and dashes, non-empty.
// Override keys are validated with this before they become map keys.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || isDigit || r == '_' || r == '-') {
			return false
		}
	}
	return true
}

// pathValue is a flat dotted key with its leaf node, the intermediate
// form used by sources that read key=value pairs.
type pathValue struct {
	path []string
	node Node
}

// nestedNode builds a map tree from flat dotted pairs, preserving pair
// order. Later pairs win conflicts: a leaf written over a subtree
// replaces it and vice versa, mirroring how repeated keys behave in
// the flat formats that feed this.
func nestedNode(origin string, pairs []pathValue) Node {
	root := &nodeBuilder{}
	for _, pv := range pairs {
		root.set(pv.path, pv.node)
	}
	return root.build(origin)
}

type nodeBuilder struct {
	keys     []string
	children map[string]*nodeBuilder
	leaf     Node
	isLeaf   bool
}

func (b *nodeBuilder) set(path []string, leaf Node) {
	if len(path) == 0 {
		b.isLeaf = true
		b.leaf = leaf
		b.children = nil
		b.keys = nil
		return
	}
	if b.isLeaf || b.children == nil {
		b.isLeaf = false
		b.children = make(map[string]*nodeBuilder)
		b.keys = nil
	}
	head := path[0]
	child, ok := b.children[head]
	if !ok {
		child = &nodeBuilder{}
		b.children[head] = child
		b.keys = append(b.keys, head)
	}
	child.set(path[1:], leaf)
}

func (b *nodeBuilder) build(origin string) Node {
	if b.isLeaf {
		return b.leaf
	}
	entries := make([]MapEntry, 0, len(b.keys))
	for _, k := range b.keys {
		entries = append(entries, Entry(k, b.children[k].build(origin)))
	}
	return MapNode(origin, entries...)
}
