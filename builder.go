// File: hoplite/builder.go
package hoplite

import "io/fs"

// Fluent configuration of a Loader. Every method copies the receiver,
// applies one change and returns the copy, so chains read top to
// bottom and intermediate loaders stay usable:
//
//	base := hoplite.New().WithFiles("app.toml")
//	prod := base.WithFiles("prod.toml")   // base is unchanged
//
// Sources added with WithSources form the priority stack, highest
// first; file and resource sources always rank below them in the
// order added.

// WithSources replaces the source stack. The default env, override and
// user-settings sources are discarded, which is the way to build a
// fully deterministic loader for tests:
//
//	hoplite.New().WithSources() // files only
func (l *Loader) WithSources(sources ...PropertySource) *Loader {
	c := l.clone()
	c.sources = append([]PropertySource(nil), sources...)
	return c
}

// WithSource appends a source below the existing stack and above any
// files.
func (l *Loader) WithSource(source PropertySource) *Loader {
	c := l.clone()
	c.sources = append(c.sources, source)
	return c
}

// WithFiles appends disk files as sources. Files rank below the
// source stack and earlier files win over later ones, so list the
// specific file before the general one:
//
//	loader.WithFiles("prod.toml", "base.toml")
func (l *Loader) WithFiles(paths ...string) *Loader {
	c := l.clone()
	for _, p := range paths {
		c.files = append(c.files, FileSource(p))
	}
	return c
}

// WithResources appends files read from an fs.FS, typically an
// embed.FS holding configuration baked into the binary. Resources
// rank with files, in the order added.
func (l *Loader) WithResources(fsys fs.FS, names ...string) *Loader {
	c := l.clone()
	for _, n := range names {
		c.files = append(c.files, ResourceSource(fsys, n))
	}
	return c
}

// WithParser registers a parser for a file extension ahead of the
// built-ins, so registering "json" replaces the built-in JSON parser
// while "conf" adds a new format.
func (l *Loader) WithParser(ext string, p Parser) *Loader {
	c := l.clone()
	c.parsers = c.parsers.with(ext, p)
	return c
}

// WithDecoder registers decoders ahead of the built-ins. The first
// decoder whose Supports accepts a type wins, so a custom decoder for
// TypeString shadows the built-in string handling everywhere.
func (l *Loader) WithDecoder(decoders ...Decoder) *Loader {
	c := l.clone()
	c.decoders = append(append([]Decoder(nil), decoders...), c.decoders...)
	return c
}

// WithPreprocessor appends preprocessors to run over merged string
// leaves, in the order added:
//
//	loader.WithPreprocessor(hoplite.EnvExpand())
func (l *Loader) WithPreprocessor(procs ...Preprocessor) *Loader {
	c := l.clone()
	c.preprocs = append(c.preprocs, procs...)
	return c
}

// WithParamMapper registers key-spelling mappers ahead of the
// defaults (exact, snake_case, kebab-case, UPPER_SNAKE).
func (l *Loader) WithParamMapper(mappers ...ParamMapper) *Loader {
	c := l.clone()
	c.mappers = append(append([]ParamMapper(nil), mappers...), c.mappers...)
	return c
}

// WithTagName changes the struct tag consulted for field lookup
// names. The default is "config".
func (l *Loader) WithTagName(name string) *Loader {
	c := l.clone()
	if name != "" {
		c.tagName = name
	}
	return c
}
