// File: hoplite/parser.go
package hoplite

import "strings"

// Parser turns raw bytes of one format into a node tree. The origin
// tag identifies the input (usually a file path) and must be attached
// to every node produced so failures can point back at the source.
type Parser interface {
	Parse(data []byte, origin string) Result[Node]
}

type parserEntry struct {
	ext    string
	parser Parser
}

// parserRegistry maps file extensions to parsers in registration
// order; the first entry matching an extension wins, so user entries
// are prepended to shadow the built-ins.
type parserRegistry struct {
	entries []parserEntry
}

func defaultParsers() parserRegistry {
	return parserRegistry{entries: []parserEntry{
		{ext: "toml", parser: tomlParser{}},
		{ext: "yaml", parser: yamlParser{}},
		{ext: "yml", parser: yamlParser{}},
		{ext: "json", parser: jsonParser{}},
		{ext: "props", parser: propsParser{}},
		{ext: "env", parser: propsParser{}},
	}}
}

// with returns a copy of the registry with the mapping prepended.
func (r parserRegistry) with(ext string, p Parser) parserRegistry {
	entries := make([]parserEntry, 0, len(r.entries)+1)
	entries = append(entries, parserEntry{ext: normalizeExt(ext), parser: p})
	entries = append(entries, r.entries...)
	return parserRegistry{entries: entries}
}

// find returns the first parser registered for ext.
func (r parserRegistry) find(ext string) (Parser, bool) {
	ext = normalizeExt(ext)
	for _, e := range r.entries {
		if e.ext == ext {
			return e.parser, true
		}
	}
	return nil, false
}

// extensions lists the registered extensions in registration order,
// deduplicated. The user-settings source probes home-directory files
// in exactly this order.
func (r parserRegistry) extensions() []string {
	seen := make(map[string]bool, len(r.entries))
	exts := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		if !seen[e.ext] {
			seen[e.ext] = true
			exts = append(exts, e.ext)
		}
	}
	return exts
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
