// File: hoplite/leaf.go
package hoplite

import (
	"fmt"
	"math"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Leaf decoders. Scalar targets accept their own node kind plus, for
// everything except string, a string node that parses cleanly: flat
// sources like environment variables can only produce strings, and
// "8080" is an unambiguous long. The string target itself stays
// strict, so a long node 42 against a string field is a conversion
// failure instead of a silent stringification.

type stringDecoder struct{}

func (stringDecoder) Supports(t Type) bool { return t.Kind() == TypeString }

func (stringDecoder) Decode(node Node, _ Type, _ DecodeContext, path string) Result[any] {
	if node.Kind() == KindString {
		return Valid[any](node.StringVal())
	}
	return Invalid[any](conversionFailure(node, path, "string"))
}

type boolDecoder struct{}

func (boolDecoder) Supports(t Type) bool { return t.Kind() == TypeBool }

func (boolDecoder) Decode(node Node, _ Type, _ DecodeContext, path string) Result[any] {
	switch node.Kind() {
	case KindBool:
		return Valid[any](node.BoolVal())
	case KindString:
		if b, err := strconv.ParseBool(node.StringVal()); err == nil {
			return Valid[any](b)
		}
	}
	return Invalid[any](conversionFailure(node, path, "bool"))
}

type longDecoder struct{}

func (longDecoder) Supports(t Type) bool { return t.Kind() == TypeLong }

func (longDecoder) Decode(node Node, _ Type, _ DecodeContext, path string) Result[any] {
	switch node.Kind() {
	case KindLong:
		return Valid[any](node.LongVal())
	case KindDouble:
		f := node.DoubleVal()
		if f == math.Trunc(f) && f >= math.MinInt64 && f <= math.MaxInt64 {
			return Valid[any](int64(f))
		}
	case KindString:
		// Base 0 auto-detects 0x / 0o / 0b prefixes.
		if i, err := strconv.ParseInt(node.StringVal(), 0, 64); err == nil {
			return Valid[any](i)
		}
	}
	return Invalid[any](conversionFailure(node, path, "long"))
}

type doubleDecoder struct{}

func (doubleDecoder) Supports(t Type) bool { return t.Kind() == TypeDouble }

func (doubleDecoder) Decode(node Node, _ Type, _ DecodeContext, path string) Result[any] {
	switch node.Kind() {
	case KindDouble:
		return Valid[any](node.DoubleVal())
	case KindLong:
		return Valid[any](float64(node.LongVal()))
	case KindString:
		if f, err := strconv.ParseFloat(node.StringVal(), 64); err == nil {
			return Valid[any](f)
		}
	}
	return Invalid[any](conversionFailure(node, path, "double"))
}

type durationDecoder struct{}

func (durationDecoder) Supports(t Type) bool { return t.Kind() == TypeDuration }

func (durationDecoder) Decode(node Node, _ Type, _ DecodeContext, path string) Result[any] {
	if node.Kind() == KindString {
		if d, err := time.ParseDuration(node.StringVal()); err == nil {
			return Valid[any](d)
		}
	}
	return Invalid[any](conversionFailure(node, path, `duration (e.g. "1500ms")`))
}

type timeDecoder struct{}

func (timeDecoder) Supports(t Type) bool { return t.Kind() == TypeTime }

func (timeDecoder) Decode(node Node, _ Type, _ DecodeContext, path string) Result[any] {
	if node.Kind() == KindString {
		if ts, err := time.Parse(time.RFC3339, node.StringVal()); err == nil {
			return Valid[any](ts)
		}
	}
	return Invalid[any](conversionFailure(node, path, "RFC 3339 time"))
}

// maxIPLen and maxURLLen bound attacker-controlled input before it
// reaches the parsers. 45 bytes covers the longest textual IPv6 form.
const (
	maxIPLen  = 45
	maxURLLen = 2048
)

type ipDecoder struct{}

func (ipDecoder) Supports(t Type) bool { return t.Kind() == TypeIP }

func (ipDecoder) Decode(node Node, _ Type, _ DecodeContext, path string) Result[any] {
	if node.Kind() != KindString {
		return Invalid[any](conversionFailure(node, path, "IP address"))
	}
	s := node.StringVal()
	if len(s) > maxIPLen {
		return Invalid[any](Failure{
			Kind:   TypeConversion,
			Path:   path,
			Origin: node.Origin(),
			Detail: fmt.Sprintf("invalid IP length: %d", len(s)),
		})
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return Invalid[any](Failure{
			Kind:   TypeConversion,
			Path:   path,
			Origin: node.Origin(),
			Detail: fmt.Sprintf("invalid IP address: %s", s),
		})
	}
	return Valid[any](ip)
}

type urlDecoder struct{}

func (urlDecoder) Supports(t Type) bool { return t.Kind() == TypeURL }

func (urlDecoder) Decode(node Node, _ Type, _ DecodeContext, path string) Result[any] {
	if node.Kind() != KindString {
		return Invalid[any](conversionFailure(node, path, "URL"))
	}
	s := node.StringVal()
	if len(s) > maxURLLen {
		return Invalid[any](Failure{
			Kind:   TypeConversion,
			Path:   path,
			Origin: node.Origin(),
			Detail: fmt.Sprintf("URL too long: %d bytes", len(s)),
		})
	}
	u, err := url.Parse(s)
	if err != nil {
		return Invalid[any](Failure{
			Kind:   TypeConversion,
			Path:   path,
			Origin: node.Origin(),
			Detail: fmt.Sprintf("invalid URL: %v", err),
		})
	}
	return Valid[any](u)
}

type secretDecoder struct{}

func (secretDecoder) Supports(t Type) bool { return t.Kind() == TypeSecret }

func (secretDecoder) Decode(node Node, _ Type, _ DecodeContext, path string) Result[any] {
	if node.Kind() == KindString {
		return Valid[any](Secret(node.StringVal()))
	}
	return Invalid[any](conversionFailure(node, path, "secret"))
}

type enumDecoder struct{}

func (enumDecoder) Supports(t Type) bool { return t.Kind() == TypeEnum }

func (enumDecoder) Decode(node Node, t Type, _ DecodeContext, path string) Result[any] {
	text, ok := scalarText(node)
	if !ok {
		return Invalid[any](conversionFailure(node, path, "enum "+t.Name()))
	}
	for _, c := range t.Constants() {
		if text == c {
			return Valid[any](text)
		}
	}
	return Invalid[any](Failure{
		Kind:   InvalidEnumConstant,
		Path:   path,
		Origin: node.Origin(),
		Detail: fmt.Sprintf("%q is not a constant of enum %s (expected one of: %s)", text, t.Name(), describeConstants(t.Constants())),
	})
}

// scalarText renders any scalar node as the text an enum constant is
// matched against.
func scalarText(node Node) (string, bool) {
	switch node.Kind() {
	case KindString:
		return node.StringVal(), true
	case KindBool:
		return strconv.FormatBool(node.BoolVal()), true
	case KindLong:
		return strconv.FormatInt(node.LongVal(), 10), true
	case KindDouble:
		return strconv.FormatFloat(node.DoubleVal(), 'g', -1, 64), true
	default:
		return "", false
	}
}
