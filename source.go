// File: hoplite/source.go
package hoplite

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// PropertySource contributes one node tree to a load. Sources are
// polled independently and their failures accumulate, so one broken
// source does not hide another. A source with nothing to contribute
// returns a valid Undefined node, not a failure.
type PropertySource interface {
	// Name identifies the source in logs and documentation.
	Name() string
	// Load produces the source's tree. The context exposes the
	// loader's parser registry so file-backed sources resolve
	// extensions against the same table, user overrides included.
	Load(ctx SourceContext) Result[Node]
}

// SourceContext is handed to every source during a load.
type SourceContext struct {
	parsers parserRegistry
}

// Parser returns the parser registered for a file extension.
func (c SourceContext) Parser(ext string) (Parser, bool) {
	return c.parsers.find(ext)
}

// Extensions lists registered extensions in registration order.
func (c SourceContext) Extensions() []string {
	return c.parsers.extensions()
}

// ---------------------------------------------------------------------
// Environment variables

// EnvPropertySource snapshots the process environment. By default it
// produces a flat map of the raw variable names; WithNesting turns
// DATABASE__HOST=x into database.host=x the way container platforms
// encode nested keys.
type EnvPropertySource struct {
	prefix string
	nested bool
}

// EnvSource returns a source over all process environment variables.
func EnvSource() EnvPropertySource {
	return EnvPropertySource{}
}

// WithPrefix returns a copy that only reads variables starting with
// prefix and strips the prefix from the key, e.g. prefix "APP_" maps
// APP_PORT=1 to PORT=1.
func (s EnvPropertySource) WithPrefix(prefix string) EnvPropertySource {
	s.prefix = prefix
	return s
}

// WithNesting returns a copy that lowercases keys and splits them on
// "__" into nested maps.
func (s EnvPropertySource) WithNesting() EnvPropertySource {
	s.nested = true
	return s
}

// Name implements PropertySource.
func (s EnvPropertySource) Name() string { return "env" }

// Load implements PropertySource. Keys are sorted so the source has a
// stable document order; every value is a string node tagged "env".
func (s EnvPropertySource) Load(SourceContext) Result[Node] {
	values := make(map[string]string)
	for _, kv := range os.Environ() {
		eq := strings.IndexByte(kv, '=')
		if eq <= 0 {
			continue
		}
		key, val := kv[:eq], kv[eq+1:]
		if s.prefix != "" {
			if !strings.HasPrefix(key, s.prefix) {
				continue
			}
			key = strings.TrimPrefix(key, s.prefix)
			if key == "" {
				continue
			}
		}
		values[key] = val
	}
	if len(values) == 0 {
		return Valid(UndefinedNode("env"))
	}
	keys := sortedKeys(values)
	if !s.nested {
		entries := make([]MapEntry, 0, len(keys))
		for _, k := range keys {
			entries = append(entries, Entry(k, StringNode(values[k], "env")))
		}
		return Valid(MapNode("env", entries...))
	}
	pairs := make([]pathValue, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, pathValue{
			path: strings.Split(strings.ToLower(k), "__"),
			node: StringNode(values[k], "env"),
		})
	}
	return Valid(nestedNode("env", pairs))
}

// ---------------------------------------------------------------------
// Command-line overrides

// overrideFlagPrefix marks a process argument as a configuration
// override: --config.override.server.port=9090 sets server.port.
const overrideFlagPrefix = "--config.override."

// OverridePropertySource reads ad-hoc overrides from process
// arguments. Only arguments carrying the override prefix are
// consumed; everything else is left to the program's own flags.
type OverridePropertySource struct {
	args []string
}

// OverridesSource scans the given arguments, or os.Args[1:] when none
// are given, for --config.override.<path>[=value] entries. A missing
// value may follow as the next argument, or defaults to "true" for
// switch-style overrides.
func OverridesSource(args ...string) OverridePropertySource {
	return OverridePropertySource{args: args}
}

// Name implements PropertySource.
func (s OverridePropertySource) Name() string { return "override" }

// Load implements PropertySource.
func (s OverridePropertySource) Load(SourceContext) Result[Node] {
	args := s.args
	if args == nil {
		args = os.Args[1:]
	}
	var pairs []pathValue
	var failures []Failure
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, overrideFlagPrefix) {
			continue
		}
		rest := strings.TrimPrefix(arg, overrideFlagPrefix)
		key, value := rest, "true"
		if eq := strings.IndexByte(rest, '='); eq >= 0 {
			key, value = rest[:eq], rest[eq+1:]
		} else if i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
			value = args[i+1]
			i++
		}
		path := strings.Split(key, ".")
		ok := len(key) > 0
		for _, seg := range path {
			if !isValidKeySegment(seg) {
				ok = false
				break
			}
		}
		if !ok {
			failures = append(failures, Failure{
				Kind:   ParseFailure,
				Path:   key,
				Origin: "override",
				Detail: fmt.Sprintf("invalid override key %q", key),
			})
			continue
		}
		pairs = append(pairs, pathValue{path: path, node: StringNode(value, "override")})
	}
	if len(failures) > 0 {
		return Invalid[Node](failures...)
	}
	if len(pairs) == 0 {
		return Valid(UndefinedNode("override"))
	}
	return Valid(nestedNode("override", pairs))
}

// ---------------------------------------------------------------------
// Per-user settings file

// UserSettingsPropertySource reads an optional per-user defaults file,
// $HOME/.userconfig.<ext>, trying each registered parser extension in
// registration order and loading the first file that exists. A user
// with no such file contributes nothing.
type UserSettingsPropertySource struct {
	dir string
}

// UserSettingsSource returns a source over the current user's home
// directory.
func UserSettingsSource() UserSettingsPropertySource {
	return UserSettingsPropertySource{}
}

// WithDir returns a copy that looks in dir instead of the home
// directory.
func (s UserSettingsPropertySource) WithDir(dir string) UserSettingsPropertySource {
	s.dir = dir
	return s
}

// Name implements PropertySource.
func (s UserSettingsPropertySource) Name() string { return "user settings" }

// Load implements PropertySource.
func (s UserSettingsPropertySource) Load(ctx SourceContext) Result[Node] {
	dir := s.dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Valid(UndefinedNode("user settings"))
		}
		dir = home
	}
	for _, ext := range ctx.Extensions() {
		name := filepath.Join(dir, ".userconfig."+ext)
		if _, err := os.Stat(name); err != nil {
			continue
		}
		data, err := os.ReadFile(name)
		if err != nil {
			return Invalid[Node](Failure{
				Kind:   ResourceNotFound,
				Origin: name,
				Detail: fmt.Sprintf("cannot read user settings: %v", err),
			})
		}
		parser, ok := ctx.Parser(ext)
		if !ok {
			continue
		}
		return parser.Parse(data, name)
	}
	return Valid(UndefinedNode("user settings"))
}

// ---------------------------------------------------------------------
// Files and embedded resources

// resourceLocator abstracts where file bytes come from so disk files
// and fs.FS resources share one source implementation.
type resourceLocator interface {
	// read returns the bytes and a display name for diagnostics.
	read(name string) ([]byte, string, error)
}

type osLocator struct{}

func (osLocator) read(name string) ([]byte, string, error) {
	data, err := os.ReadFile(name)
	return data, name, err
}

type fsLocator struct {
	fsys fs.FS
}

func (l fsLocator) read(name string) ([]byte, string, error) {
	data, err := fs.ReadFile(l.fsys, name)
	return data, "resource:" + name, err
}

type filePropertySource struct {
	name string
	loc  resourceLocator
}

// FileSource reads one configuration file from disk. The file's
// extension selects the parser; a missing file is a load failure.
func FileSource(path string) PropertySource {
	return filePropertySource{name: path, loc: osLocator{}}
}

// ResourceSource reads one configuration file from an fs.FS, typically
// an embed.FS baked into the binary.
func ResourceSource(fsys fs.FS, name string) PropertySource {
	return filePropertySource{name: name, loc: fsLocator{fsys: fsys}}
}

// Name implements PropertySource.
func (s filePropertySource) Name() string { return s.name }

// Load implements PropertySource.
func (s filePropertySource) Load(ctx SourceContext) Result[Node] {
	data, desc, err := s.loc.read(s.name)
	if err != nil {
		return Invalid[Node](Failure{
			Kind:   ResourceNotFound,
			Origin: desc,
			Detail: fmt.Sprintf("cannot read resource: %v", err),
		})
	}
	ext := normalizeExt(filepath.Ext(s.name))
	if ext == "" {
		return Invalid[Node](Failure{
			Kind:   ParserNotFound,
			Origin: desc,
			Detail: "file has no extension to select a parser",
		})
	}
	parser, ok := ctx.Parser(ext)
	if !ok {
		return Invalid[Node](Failure{
			Kind:   ParserNotFound,
			Origin: desc,
			Detail: fmt.Sprintf("no parser registered for extension %q (have %s)", ext, strings.Join(ctx.Extensions(), ", ")),
		})
	}
	return parser.Parse(data, desc)
}
