// File: hoplite/parser_yaml.go
package hoplite

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// yamlParser parses YAML documents by walking the yaml.Node AST
// directly. Decoding into map[string]any would lose document order;
// the AST keeps mapping entries in source order and resolves anchors
// and aliases for us.
type yamlParser struct{}

func (yamlParser) Parse(data []byte, origin string) Result[Node] {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Invalid[Node](Failure{
			Kind:   ParseFailure,
			Origin: origin,
			Detail: fmt.Sprintf("invalid YAML: %v", err),
		})
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Valid(UndefinedNode(origin))
	}
	return yamlNode(doc.Content[0], origin)
}

func yamlNode(n *yaml.Node, origin string) Result[Node] {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Valid(UndefinedNode(origin))
		}
		return yamlNode(n.Content[0], origin)
	case yaml.AliasNode:
		return yamlNode(n.Alias, origin)
	case yaml.MappingNode:
		entries := make([]MapEntry, 0, len(n.Content)/2)
		var failures []Failure
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			child := yamlNode(n.Content[i+1], origin)
			if !child.IsValid() {
				failures = append(failures, child.Failures()...)
				continue
			}
			entries = append(entries, Entry(key, child.Value()))
		}
		if len(failures) > 0 {
			return Invalid[Node](failures...)
		}
		return Valid(MapNode(origin, entries...))
	case yaml.SequenceNode:
		results := make([]Result[Node], len(n.Content))
		for i, item := range n.Content {
			results[i] = yamlNode(item, origin)
		}
		return Map(Sequence(results), func(items []Node) Node {
			return ListNode(origin, items...)
		})
	case yaml.ScalarNode:
		return Valid(yamlScalar(n, origin))
	default:
		return Invalid[Node](Failure{
			Kind:   ParseFailure,
			Origin: origin,
			Detail: fmt.Sprintf("unsupported YAML node kind %d at line %d", n.Kind, n.Line),
		})
	}
}

// yamlScalar maps a resolved scalar tag to a node. Scalars whose tag
// promises a number but whose text does not parse fall back to string
// rather than failing the whole document.
func yamlScalar(n *yaml.Node, origin string) Node {
	switch n.Tag {
	case "!!null":
		return NullNode(origin)
	case "!!bool":
		if b, err := strconv.ParseBool(n.Value); err == nil {
			return BoolNode(b, origin)
		}
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return LongNode(i, origin)
		}
	case "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return DoubleNode(f, origin)
		}
	}
	return StringNode(n.Value, origin)
}
