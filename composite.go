// File: hoplite/composite.go
package hoplite

import (
	"fmt"
	"strings"
)

// Composite decoders. Lists, maps and objects decode each child
// independently and combine the results with Sequence, so every bad
// leaf in a structure is reported, not just the first.

type listDecoder struct{}

func (listDecoder) Supports(t Type) bool { return t.Kind() == TypeList }

func (listDecoder) Decode(node Node, t Type, ctx DecodeContext, path string) Result[any] {
	elem := t.Elem()
	switch node.Kind() {
	case KindList:
		items := node.Items()
		results := make([]Result[any], len(items))
		for i, item := range items {
			results[i] = ctx.Decode(item, elem, indexPath(path, i))
		}
		return Map(Sequence(results), func(values []any) any { return values })
	case KindString:
		// Flat sources cannot write lists; a comma-separated string is
		// the conventional encoding, e.g. HOSTS=a,b,c.
		raw := node.StringVal()
		if raw == "" {
			return Valid[any]([]any{})
		}
		parts := strings.Split(raw, ",")
		results := make([]Result[any], len(parts))
		for i, part := range parts {
			item := StringNode(strings.TrimSpace(part), node.Origin())
			results[i] = ctx.Decode(item, elem, indexPath(path, i))
		}
		return Map(Sequence(results), func(values []any) any { return values })
	default:
		return Invalid[any](conversionFailure(node, path, t.Name()))
	}
}

type mapDecoder struct{}

func (mapDecoder) Supports(t Type) bool { return t.Kind() == TypeMap }

func (mapDecoder) Decode(node Node, t Type, ctx DecodeContext, path string) Result[any] {
	if node.Kind() != KindMap {
		return Invalid[any](conversionFailure(node, path, t.Name()))
	}
	keys := node.Keys()
	results := make([]Result[any], len(keys))
	for i, k := range keys {
		child, _ := node.Field(k)
		results[i] = ctx.Decode(child, t.Elem(), joinPath(path, k))
	}
	return Map(Sequence(results), func(values []any) any {
		out := make(map[string]any, len(values))
		for i, k := range keys {
			out[k] = values[i]
		}
		return out
	})
}

type optionalDecoder struct{}

func (optionalDecoder) Supports(t Type) bool { return t.Kind() == TypeOptional }

func (optionalDecoder) Decode(node Node, t Type, ctx DecodeContext, path string) Result[any] {
	switch node.Kind() {
	case KindUndefined, KindNull:
		return Valid[any](nil)
	default:
		return ctx.Decode(node, t.Elem(), path)
	}
}

type objectDecoder struct{}

func (objectDecoder) Supports(t Type) bool { return t.Kind() == TypeObject }

func (objectDecoder) Decode(node Node, t Type, ctx DecodeContext, path string) Result[any] {
	switch node.Kind() {
	case KindMap, KindUndefined:
		// An undefined node decodes like an empty map so an object made
		// entirely of defaulted and optional fields still materializes.
	default:
		return Invalid[any](conversionFailure(node, path, t.Name()))
	}

	fields := t.Fields()
	goNames := make([]string, len(fields))
	results := make([]Result[any], len(fields))
	for i, f := range fields {
		goNames[i] = f.GoName()
		fieldPath := joinPath(path, f.Name())
		child, found := lookupChild(node, f.Name(), ctx.mappers)
		def, hasDefault := f.Default()
		switch {
		case found:
			results[i] = ctx.Decode(child, f.Type(), fieldPath)
		case hasDefault:
			// Defaults run through the same decoder as real values, so
			// a malformed default fails with the same path precision.
			results[i] = ctx.Decode(def, f.Type(), fieldPath)
		case f.Type().Kind() == TypeOptional:
			results[i] = Valid[any](nil)
		default:
			results[i] = Invalid[any](Failure{
				Kind:   UnknownPropertyPath,
				Path:   fieldPath,
				Origin: node.Origin(),
				Detail: fmt.Sprintf("missing value for required field; tried keys: %s", strings.Join(ctx.Candidates(f.Name()), ", ")),
			})
		}
	}
	return Map(Sequence(results), func(values []any) any {
		out := make(map[string]any, len(values))
		for i, v := range values {
			out[goNames[i]] = v
		}
		return out
	})
}

// lookupChild tries each mapper candidate against a map node and
// returns the first present child. An explicitly undefined child
// counts as absent so defaults still apply.
func lookupChild(node Node, name string, mappers []ParamMapper) (Node, bool) {
	for _, key := range candidateKeys(name, mappers) {
		if child, ok := node.Field(key); ok && !child.IsUndefined() {
			return child, true
		}
	}
	return Node{}, false
}
