// File: hoplite/parser_props.go
package hoplite

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

// propsParser parses java-style property / dotenv files: KEY=value
// lines with #-comments, quoting and blank lines per dotenv rules.
// Dotted keys nest, so "server.port=8080" lands at server.port in the
// tree. godotenv returns an unordered map, so keys are sorted to give
// the source a stable document order.
type propsParser struct{}

func (propsParser) Parse(data []byte, origin string) Result[Node] {
	values, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return Invalid[Node](Failure{
			Kind:   ParseFailure,
			Origin: origin,
			Detail: fmt.Sprintf("invalid properties: %v", err),
		})
	}
	if len(values) == 0 {
		return Valid(UndefinedNode(origin))
	}
	keys := sortedKeys(values)
	pairs := make([]pathValue, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, pathValue{
			path: strings.Split(k, "."),
			node: StringNode(values[k], origin),
		})
	}
	return Valid(nestedNode(origin, pairs))
}
