// File: hoplite/loader.go
package hoplite

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// defaultTagName is the struct tag consulted for field lookup names.
const defaultTagName = "config"

// Loader assembles property sources, parsers, decoders, preprocessors
// and param mappers into one configuration pipeline. A load runs in a
// fixed order:
//
//  1. poll every source independently, accumulating failures;
//  2. merge the trees with Fallback, earlier sources winning;
//  3. run preprocessors over the merged string leaves;
//  4. decode the tree against the target's type description.
//
// Loaders are immutable: every With method returns a modified copy and
// the receiver is never changed, so a configured Loader is safe to
// share between goroutines and to fork for tests.
type Loader struct {
	sources  []PropertySource
	files    []PropertySource
	parsers  parserRegistry
	decoders []Decoder
	preprocs []Preprocessor
	mappers  []ParamMapper
	tagName  string
}

// New returns a Loader with the default stack: environment variables,
// --config.override. process arguments and the user settings file, in
// that priority order, ahead of any files added with WithFiles. The
// built-in parsers cover toml, yaml/yml, json and props/env files.
func New() *Loader {
	return &Loader{
		sources: []PropertySource{
			EnvSource(),
			OverridesSource(),
			UserSettingsSource(),
		},
		parsers: defaultParsers(),
		mappers: defaultMappers(),
		tagName: defaultTagName,
	}
}

// clone copies the loader and every slice it owns so a With method on
// the copy can never alias the original's backing arrays.
func (l *Loader) clone() *Loader {
	c := *l
	c.sources = append([]PropertySource(nil), l.sources...)
	c.files = append([]PropertySource(nil), l.files...)
	c.parsers = parserRegistry{entries: append([]parserEntry(nil), l.parsers.entries...)}
	c.decoders = append([]Decoder(nil), l.decoders...)
	c.preprocs = append([]Preprocessor(nil), l.preprocs...)
	c.mappers = append([]ParamMapper(nil), l.mappers...)
	return &c
}

// LoadNode polls every source, merges the results and applies the
// preprocessors, returning the final tree without decoding it. Source
// failures accumulate: a load with a missing file and a malformed file
// reports both.
func (l *Loader) LoadNode() Result[Node] {
	ctx := SourceContext{parsers: l.parsers}
	all := make([]PropertySource, 0, len(l.sources)+len(l.files))
	all = append(all, l.sources...)
	all = append(all, l.files...)
	results := make([]Result[Node], len(all))
	for i, src := range all {
		results[i] = src.Load(ctx)
	}
	return Map(Sequence(results), func(roots []Node) Node {
		return applyPreprocessors(mergeNodes(roots), l.preprocs)
	})
}

// Decode loads the tree and decodes it against an explicit type
// description. Most callers want Scan or LoadAs instead; Decode is
// the hook for callers that build Type values programmatically.
func (l *Loader) Decode(t Type) Result[any] {
	return l.decodeAt("", t)
}

func (l *Loader) decodeAt(path string, t Type) Result[any] {
	return FlatMap(l.LoadNode(), func(root Node) Result[any] {
		ctx := DecodeContext{
			registry: NewDecoderRegistry(l.decoders...),
			mappers:  l.mappers,
		}
		return ctx.Decode(root.At(path), t, path)
	})
}

// Scan loads the configuration into target, which must be a non-nil
// pointer. The target's type is described once with reflection, the
// tree is decoded against that description, and the decoded values are
// assigned in a single pass. All decode failures are collected into
// one *LoadError.
func (l *Loader) Scan(target any) error {
	return l.ScanAt("", target)
}

// ScanAt is Scan rooted at a dotted path, for loading one section of a
// larger document:
//
//	var db DatabaseConfig
//	err := loader.ScanAt("database", &db)
//
// Failure paths stay absolute so a bad value still reports its full
// location.
func (l *Loader) ScanAt(path string, target any) error {
	t, err := describeTarget(target, l.tagName)
	if err != nil {
		return err
	}
	res := l.decodeAt(path, t)
	if err := res.Err(); err != nil {
		return err
	}
	return materialize(res.Value(), target)
}

// materialize assigns the decoded value tree to target. The decode
// walk already produced exactly-typed values keyed by Go field name,
// so this pass only sets fields and converts integer widths; there is
// no weak typing and no string parsing left at this stage.
func materialize(value any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		ZeroFields: true,
	})
	if err != nil {
		return fmt.Errorf("cannot create decoder for %T: %w", target, err)
	}
	if err := dec.Decode(value); err != nil {
		return fmt.Errorf("cannot apply configuration to %T: %w", target, err)
	}
	return nil
}
