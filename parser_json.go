// File: hoplite/parser_json.go
package hoplite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// jsonParser parses JSON documents with a streaming token walk.
// encoding/json's map decoding both randomizes key order and turns
// every number into float64; the token walk keeps object order and,
// with UseNumber, lets integers stay integers.
type jsonParser struct{}

func (jsonParser) Parse(data []byte, origin string) Result[Node] {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := jsonValue(dec, origin)
	if err == io.EOF {
		return Valid(UndefinedNode(origin))
	}
	if err != nil {
		return Invalid[Node](jsonFailure(origin, err))
	}
	if dec.More() {
		return Invalid[Node](Failure{
			Kind:   ParseFailure,
			Origin: origin,
			Detail: "invalid JSON: trailing data after document",
		})
	}
	return Valid(root)
}

func jsonValue(dec *json.Decoder, origin string) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return Node{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var entries []MapEntry
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Node{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Node{}, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				child, err := jsonValue(dec, origin)
				if err != nil {
					return Node{}, err
				}
				entries = append(entries, Entry(key, child))
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Node{}, err
			}
			return MapNode(origin, entries...), nil
		case '[':
			var items []Node
			for dec.More() {
				item, err := jsonValue(dec, origin)
				if err != nil {
					return Node{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Node{}, err
			}
			return ListNode(origin, items...), nil
		default:
			return Node{}, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return StringNode(t, origin), nil
	case bool:
		return BoolNode(t, origin), nil
	case json.Number:
		if !strings.ContainsAny(t.String(), ".eE") {
			if i, err := t.Int64(); err == nil {
				return LongNode(i, origin), nil
			}
		}
		f, err := t.Float64()
		if err != nil {
			return Node{}, fmt.Errorf("invalid number %q", t.String())
		}
		return DoubleNode(f, origin), nil
	case nil:
		return NullNode(origin), nil
	default:
		return Node{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func jsonFailure(origin string, err error) Failure {
	if err == io.ErrUnexpectedEOF {
		return Failure{Kind: ParseFailure, Origin: origin, Detail: "invalid JSON: unexpected end of document"}
	}
	return Failure{Kind: ParseFailure, Origin: origin, Detail: fmt.Sprintf("invalid JSON: %v", err)}
}
