// File: hoplite/parser_toml.go
package hoplite

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// tomlParser parses TOML documents. BurntSushi decodes into plain Go
// maps whose iteration order is random, so the decoder's MetaData key
// list is used to restore document order in the resulting map nodes.
type tomlParser struct{}

func (tomlParser) Parse(data []byte, origin string) Result[Node] {
	var raw map[string]any
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Invalid[Node](Failure{
			Kind:   ParseFailure,
			Origin: origin,
			Detail: fmt.Sprintf("invalid TOML: %v", err),
		})
	}
	if len(raw) == 0 {
		return Valid(UndefinedNode(origin))
	}
	rank := make(map[string]int)
	for i, key := range meta.Keys() {
		for j := 1; j <= len(key); j++ {
			p := strings.Join(key[:j], "\x00")
			if _, seen := rank[p]; !seen {
				rank[p] = i
			}
		}
	}
	return Valid(tomlNode(raw, "", rank, origin))
}

func tomlNode(v any, prefix string, rank map[string]int, origin string) Node {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.SliceStable(keys, func(a, b int) bool {
			ra, rb := tomlRank(rank, prefix, keys[a]), tomlRank(rank, prefix, keys[b])
			if ra != rb {
				return ra < rb
			}
			return keys[a] < keys[b]
		})
		entries := make([]MapEntry, 0, len(keys))
		for _, k := range keys {
			child := prefix + k + "\x00"
			entries = append(entries, Entry(k, tomlNode(t[k], child, rank, origin)))
		}
		return MapNode(origin, entries...)
	case []map[string]any:
		items := make([]Node, len(t))
		for i, m := range t {
			items[i] = tomlNode(m, prefix, rank, origin)
		}
		return ListNode(origin, items...)
	case []any:
		items := make([]Node, len(t))
		for i, item := range t {
			items[i] = tomlNode(item, prefix, rank, origin)
		}
		return ListNode(origin, items...)
	case bool:
		return BoolNode(t, origin)
	case int64:
		return LongNode(t, origin)
	case float64:
		return DoubleNode(t, origin)
	case string:
		return StringNode(t, origin)
	case time.Time:
		return StringNode(t.Format(time.RFC3339), origin)
	case nil:
		return NullNode(origin)
	default:
		return StringNode(fmt.Sprintf("%v", t), origin)
	}
}

func tomlRank(rank map[string]int, prefix, key string) int {
	if r, ok := rank[prefix+key]; ok {
		return r
	}
	return math.MaxInt
}
