// File: hoplite/decode.go
package hoplite

import "fmt"

// Decoder converts one node into one Go value for a family of target
// types. Supports is consulted in registry order and the first match
// wins, so registering a custom decoder shadows the built-in for the
// same types. Composite decoders recurse through ctx.Decode rather
// than calling each other directly, which keeps custom decoders in the
// loop for nested values too.
type Decoder interface {
	Supports(t Type) bool
	Decode(node Node, t Type, ctx DecodeContext, path string) Result[any]
}

// DecoderRegistry resolves a target type to the first decoder that
// supports it.
type DecoderRegistry struct {
	decoders []Decoder
}

// NewDecoderRegistry builds a registry with custom decoders first and
// the built-ins after them.
func NewDecoderRegistry(custom ...Decoder) *DecoderRegistry {
	builtin := builtinDecoders()
	decoders := make([]Decoder, 0, len(custom)+len(builtin))
	decoders = append(decoders, custom...)
	decoders = append(decoders, builtin...)
	return &DecoderRegistry{decoders: decoders}
}

func builtinDecoders() []Decoder {
	return []Decoder{
		stringDecoder{},
		boolDecoder{},
		longDecoder{},
		doubleDecoder{},
		durationDecoder{},
		timeDecoder{},
		ipDecoder{},
		urlDecoder{},
		secretDecoder{},
		enumDecoder{},
		listDecoder{},
		mapDecoder{},
		optionalDecoder{},
		objectDecoder{},
	}
}

// Decoder returns the first decoder supporting t, or a NoDecoderFound
// failure located at path.
func (r *DecoderRegistry) Decoder(t Type, path, origin string) Result[Decoder] {
	for _, d := range r.decoders {
		if d.Supports(t) {
			return Valid(d)
		}
	}
	return Invalid[Decoder](Failure{
		Kind:   NoDecoderFound,
		Path:   path,
		Origin: origin,
		Detail: fmt.Sprintf("no decoder supports type %s", t.Name()),
	})
}

// DecodeContext carries the registry and param mappers through a
// decode walk. It is the recursion point for composite decoders.
type DecodeContext struct {
	registry *DecoderRegistry
	mappers  []ParamMapper
}

// Decode resolves a decoder for t and applies it to node. Resolution
// and application chain with FlatMap: without a decoder the node is
// never touched.
func (c DecodeContext) Decode(node Node, t Type, path string) Result[any] {
	return FlatMap(c.registry.Decoder(t, path, node.Origin()), func(d Decoder) Result[any] {
		return d.Decode(node, t, c, path)
	})
}

// Candidates exposes the param mapper candidates for a field name, for
// custom decoders that look up map keys themselves.
func (c DecodeContext) Candidates(name string) []string {
	return candidateKeys(name, c.mappers)
}

// conversionFailure builds the standard failure for a node whose shape
// cannot produce the wanted type.
func conversionFailure(node Node, path, want string) Failure {
	return Failure{
		Kind:   TypeConversion,
		Path:   path,
		Origin: node.Origin(),
		Detail: fmt.Sprintf("cannot convert %s to %s", node.describe(), want),
	}
}
