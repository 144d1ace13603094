// File: hoplite/decode_test.go
package hoplite

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDecodeContext builds a decode context the way decodeAt does,
// with optional custom decoders ahead of the built-ins.
func testDecodeContext(custom ...Decoder) DecodeContext {
	return DecodeContext{registry: NewDecoderRegistry(custom...), mappers: defaultMappers()}
}

// TestStringDecoder tests that string targets only accept string nodes
func TestStringDecoder(t *testing.T) {
	ctx := testDecodeContext()

	t.Run("StringNode", func(t *testing.T) {
		res := ctx.Decode(StringNode("api", "config.toml"), StringType(), "name")
		require.True(t, res.IsValid())
		assert.Equal(t, "api", res.Value())
	})

	t.Run("LongNodeFails", func(t *testing.T) {
		res := ctx.Decode(LongNode(42, "config.toml"), StringType(), "server.name")
		require.False(t, res.IsValid())
		failures := res.Failures()
		require.Len(t, failures, 1)
		assert.Equal(t, TypeConversion, failures[0].Kind)
		assert.Equal(t, "server.name", failures[0].Path)
		assert.Equal(t, "config.toml", failures[0].Origin)
		assert.Equal(t, "cannot convert long 42 to string", failures[0].Detail)
	})

	t.Run("BoolNodeFails", func(t *testing.T) {
		res := ctx.Decode(BoolNode(true, "env"), StringType(), "flag")
		require.False(t, res.IsValid())
		assert.Equal(t, "cannot convert bool true to string", res.Failures()[0].Detail)
	})
}

// TestBoolDecoder tests boolean decoding from bool and string nodes
func TestBoolDecoder(t *testing.T) {
	ctx := testDecodeContext()

	tests := []struct {
		name  string
		node  Node
		want  bool
		valid bool
	}{
		{"BoolTrue", BoolNode(true, "f"), true, true},
		{"BoolFalse", BoolNode(false, "f"), false, true},
		{"StringTrue", StringNode("true", "env"), true, true},
		{"StringFalse", StringNode("false", "env"), false, true},
		{"StringOne", StringNode("1", "env"), true, true},
		{"StringYes", StringNode("yes", "env"), false, false},
		{"Long", LongNode(1, "f"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ctx.Decode(tt.node, BoolType(), "debug")
			if !tt.valid {
				require.False(t, res.IsValid())
				assert.Equal(t, TypeConversion, res.Failures()[0].Kind)
				return
			}
			require.True(t, res.IsValid())
			assert.Equal(t, tt.want, res.Value())
		})
	}
}

// TestLongDecoder tests integer decoding including string and double forms
func TestLongDecoder(t *testing.T) {
	ctx := testDecodeContext()

	tests := []struct {
		name  string
		node  Node
		want  int64
		valid bool
	}{
		{"Long", LongNode(42, "f"), 42, true},
		{"IntegralDouble", DoubleNode(3.0, "f"), 3, true},
		{"FractionalDouble", DoubleNode(2.5, "f"), 0, false},
		{"DecimalString", StringNode("42", "env"), 42, true},
		{"NegativeString", StringNode("-7", "env"), -7, true},
		{"HexString", StringNode("0xFF", "env"), 255, true},
		{"OctalString", StringNode("0o17", "env"), 15, true},
		{"WordString", StringNode("old", "config.toml"), 0, false},
		{"Bool", BoolNode(true, "f"), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ctx.Decode(tt.node, LongType(), "port")
			if !tt.valid {
				require.False(t, res.IsValid())
				return
			}
			require.True(t, res.IsValid())
			assert.Equal(t, tt.want, res.Value())
		})
	}

	t.Run("FailureMessage", func(t *testing.T) {
		res := ctx.Decode(StringNode("old", "config.toml"), LongType(), "server.port")
		require.False(t, res.IsValid())
		f := res.Failures()[0]
		assert.Equal(t, `cannot convert string "old" to long`, f.Detail)
		assert.Equal(t, "server.port: cannot convert string \"old\" to long (from config.toml)", f.Error())
	})
}

// TestDoubleDecoder tests float decoding from double, long and string nodes
func TestDoubleDecoder(t *testing.T) {
	ctx := testDecodeContext()

	res := ctx.Decode(DoubleNode(2.5, "f"), DoubleType(), "ratio")
	require.True(t, res.IsValid())
	assert.Equal(t, 2.5, res.Value())

	res = ctx.Decode(LongNode(2, "f"), DoubleType(), "ratio")
	require.True(t, res.IsValid())
	assert.Equal(t, 2.0, res.Value())

	res = ctx.Decode(StringNode("2.5", "env"), DoubleType(), "ratio")
	require.True(t, res.IsValid())
	assert.Equal(t, 2.5, res.Value())

	res = ctx.Decode(StringNode("fast", "env"), DoubleType(), "ratio")
	require.False(t, res.IsValid())
	assert.Equal(t, `cannot convert string "fast" to double`, res.Failures()[0].Detail)
}

// TestDurationDecoder tests that durations parse from strings only
func TestDurationDecoder(t *testing.T) {
	ctx := testDecodeContext()

	t.Run("Valid", func(t *testing.T) {
		res := ctx.Decode(StringNode("1500ms", "config.toml"), DurationType(), "timeout")
		require.True(t, res.IsValid())
		assert.Equal(t, 1500*time.Millisecond, res.Value())

		res = ctx.Decode(StringNode("2h45m", "config.toml"), DurationType(), "timeout")
		require.True(t, res.IsValid())
		assert.Equal(t, 2*time.Hour+45*time.Minute, res.Value())
	})

	t.Run("BareNumberFails", func(t *testing.T) {
		// A unitless long is ambiguous: seconds, millis, nanos?
		res := ctx.Decode(LongNode(1500, "config.toml"), DurationType(), "timeout")
		require.False(t, res.IsValid())
		assert.Equal(t, `cannot convert long 1500 to duration (e.g. "1500ms")`, res.Failures()[0].Detail)
	})

	t.Run("Malformed", func(t *testing.T) {
		res := ctx.Decode(StringNode("fast", "env"), DurationType(), "timeout")
		require.False(t, res.IsValid())
		assert.Equal(t, TypeConversion, res.Failures()[0].Kind)
	})
}

// TestTimeDecoder tests RFC 3339 timestamp decoding
func TestTimeDecoder(t *testing.T) {
	ctx := testDecodeContext()

	res := ctx.Decode(StringNode("2024-06-01T12:30:00Z", "config.yaml"), TimeType(), "starts")
	require.True(t, res.IsValid())
	got, ok := res.Value().(time.Time)
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)))

	res = ctx.Decode(StringNode("June 1st", "config.yaml"), TimeType(), "starts")
	require.False(t, res.IsValid())
	assert.Equal(t, `cannot convert string "June 1st" to RFC 3339 time`, res.Failures()[0].Detail)

	res = ctx.Decode(LongNode(1717242600, "config.yaml"), TimeType(), "starts")
	require.False(t, res.IsValid())
}

// TestIPDecoder tests IP address decoding and its input guards
func TestIPDecoder(t *testing.T) {
	ctx := testDecodeContext()

	t.Run("IPv4", func(t *testing.T) {
		res := ctx.Decode(StringNode("192.168.1.100", "env"), IPType(), "bind")
		require.True(t, res.IsValid())
		ip, ok := res.Value().(net.IP)
		require.True(t, ok)
		assert.Equal(t, "192.168.1.100", ip.String())
	})

	t.Run("IPv6", func(t *testing.T) {
		res := ctx.Decode(StringNode("::1", "env"), IPType(), "bind")
		require.True(t, res.IsValid())
		assert.Equal(t, "::1", res.Value().(net.IP).String())
	})

	t.Run("Invalid", func(t *testing.T) {
		res := ctx.Decode(StringNode("not-an-ip", "env"), IPType(), "bind")
		require.False(t, res.IsValid())
		assert.Equal(t, "invalid IP address: not-an-ip", res.Failures()[0].Detail)
	})

	t.Run("TooLong", func(t *testing.T) {
		res := ctx.Decode(StringNode(strings.Repeat("1", 46), "env"), IPType(), "bind")
		require.False(t, res.IsValid())
		assert.Equal(t, "invalid IP length: 46", res.Failures()[0].Detail)
	})

	t.Run("NonString", func(t *testing.T) {
		res := ctx.Decode(LongNode(2130706433, "f"), IPType(), "bind")
		require.False(t, res.IsValid())
		assert.Equal(t, "cannot convert long 2130706433 to IP address", res.Failures()[0].Detail)
	})
}

// TestURLDecoder tests URL decoding and its length guard
func TestURLDecoder(t *testing.T) {
	ctx := testDecodeContext()

	t.Run("Valid", func(t *testing.T) {
		res := ctx.Decode(StringNode("https://api.example.com:8443/v1", "config.toml"), URLType(), "endpoint")
		require.True(t, res.IsValid())
		u, ok := res.Value().(*url.URL)
		require.True(t, ok)
		assert.Equal(t, "https://api.example.com:8443/v1", u.String())
		assert.Equal(t, "api.example.com:8443", u.Host)
	})

	t.Run("TooLong", func(t *testing.T) {
		long := "https://example.com/" + strings.Repeat("a", maxURLLen)
		res := ctx.Decode(StringNode(long, "config.toml"), URLType(), "endpoint")
		require.False(t, res.IsValid())
		assert.Equal(t, fmt.Sprintf("URL too long: %d bytes", len(long)), res.Failures()[0].Detail)
	})

	t.Run("ControlCharacter", func(t *testing.T) {
		res := ctx.Decode(StringNode("http://example.com/\x00", "config.toml"), URLType(), "endpoint")
		require.False(t, res.IsValid())
		assert.Contains(t, res.Failures()[0].Detail, "invalid URL")
	})
}

// TestSecretDecoder tests that secrets decode and stay masked when printed
func TestSecretDecoder(t *testing.T) {
	ctx := testDecodeContext()

	res := ctx.Decode(StringNode("hunter2", "env"), SecretType(), "db.password")
	require.True(t, res.IsValid())
	sec, ok := res.Value().(Secret)
	require.True(t, ok)

	assert.Equal(t, "hunter2", sec.Reveal())
	assert.Equal(t, "*****", fmt.Sprint(sec))
	assert.Equal(t, "*****", fmt.Sprintf("%v", sec))
	assert.Equal(t, `hoplite.Secret("*****")`, fmt.Sprintf("%#v", sec))

	masked, err := sec.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "*****", string(masked))

	res = ctx.Decode(LongNode(42, "f"), SecretType(), "db.password")
	require.False(t, res.IsValid())
}

// TestEnumDecoder tests exact constant matching and the failure message
func TestEnumDecoder(t *testing.T) {
	ctx := testDecodeContext()
	color := EnumOf("Color", "RED", "GREEN", "BLUE")

	t.Run("Match", func(t *testing.T) {
		res := ctx.Decode(StringNode("GREEN", "config.yaml"), color, "theme")
		require.True(t, res.IsValid())
		assert.Equal(t, "GREEN", res.Value())
	})

	t.Run("NoMatch", func(t *testing.T) {
		res := ctx.Decode(StringNode("YELLOW", "config.yaml"), color, "theme")
		require.False(t, res.IsValid())
		f := res.Failures()[0]
		assert.Equal(t, InvalidEnumConstant, f.Kind)
		assert.Equal(t, "theme", f.Path)
		assert.Equal(t, `"YELLOW" is not a constant of enum Color (expected one of: RED, GREEN, BLUE)`, f.Detail)
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		res := ctx.Decode(StringNode("green", "config.yaml"), color, "theme")
		require.False(t, res.IsValid())
		assert.Equal(t, InvalidEnumConstant, res.Failures()[0].Kind)
	})

	t.Run("ScalarStringifies", func(t *testing.T) {
		// Unquoted YAML like `level: 2` arrives as a long node; the enum
		// matches its textual form.
		level := EnumOf("Level", "1", "2", "3")
		res := ctx.Decode(LongNode(2, "config.yaml"), level, "level")
		require.True(t, res.IsValid())
		assert.Equal(t, "2", res.Value())
	})

	t.Run("NonScalar", func(t *testing.T) {
		res := ctx.Decode(MapNode("config.yaml"), color, "theme")
		require.False(t, res.IsValid())
		assert.Equal(t, TypeConversion, res.Failures()[0].Kind)
		assert.Equal(t, "cannot convert map to enum Color", res.Failures()[0].Detail)
	})
}

// TestListDecoder tests element decoding, index paths and comma splitting
func TestListDecoder(t *testing.T) {
	ctx := testDecodeContext()

	t.Run("Elements", func(t *testing.T) {
		node := ListNode("config.toml", LongNode(80, "config.toml"), LongNode(443, "config.toml"))
		res := ctx.Decode(node, ListOf(LongType()), "ports")
		require.True(t, res.IsValid())
		assert.Equal(t, []any{int64(80), int64(443)}, res.Value())
	})

	t.Run("BadElementsKeepIndexes", func(t *testing.T) {
		node := ListNode("config.toml",
			StringNode("a", "config.toml"),
			LongNode(42, "config.toml"),
			StringNode("b", "config.toml"),
		)
		res := ctx.Decode(node, ListOf(LongType()), "hosts")
		require.False(t, res.IsValid())
		failures := res.Failures()
		require.Len(t, failures, 2)
		assert.Equal(t, "hosts[0]", failures[0].Path)
		assert.Equal(t, "hosts[2]", failures[1].Path)
	})

	t.Run("CommaSplit", func(t *testing.T) {
		res := ctx.Decode(StringNode("a, b,c", "env"), ListOf(StringType()), "tags")
		require.True(t, res.IsValid())
		assert.Equal(t, []any{"a", "b", "c"}, res.Value())
	})

	t.Run("CommaSplitTypedElements", func(t *testing.T) {
		res := ctx.Decode(StringNode("80,443", "env"), ListOf(LongType()), "ports")
		require.True(t, res.IsValid())
		assert.Equal(t, []any{int64(80), int64(443)}, res.Value())
	})

	t.Run("EmptyString", func(t *testing.T) {
		res := ctx.Decode(StringNode("", "env"), ListOf(StringType()), "tags")
		require.True(t, res.IsValid())
		assert.Equal(t, []any{}, res.Value())
	})

	t.Run("NonList", func(t *testing.T) {
		res := ctx.Decode(LongNode(80, "f"), ListOf(LongType()), "ports")
		require.False(t, res.IsValid())
		assert.Equal(t, "cannot convert long 80 to []long", res.Failures()[0].Detail)
	})
}

// TestMapDecoder tests value decoding under each key
func TestMapDecoder(t *testing.T) {
	ctx := testDecodeContext()

	t.Run("Values", func(t *testing.T) {
		node := MapNode("config.toml",
			Entry("read", LongNode(10, "config.toml")),
			Entry("write", LongNode(5, "config.toml")),
		)
		res := ctx.Decode(node, MapOf(LongType()), "limits")
		require.True(t, res.IsValid())
		assert.Equal(t, map[string]any{"read": int64(10), "write": int64(5)}, res.Value())
	})

	t.Run("BadValueKeepsKeyPath", func(t *testing.T) {
		node := MapNode("config.toml",
			Entry("a", LongNode(1, "config.toml")),
			Entry("b", StringNode("x", "config.toml")),
			Entry("c", StringNode("y", "config.toml")),
		)
		res := ctx.Decode(node, MapOf(LongType()), "limits")
		require.False(t, res.IsValid())
		failures := res.Failures()
		require.Len(t, failures, 2)
		assert.Equal(t, "limits.b", failures[0].Path)
		assert.Equal(t, "limits.c", failures[1].Path)
	})

	t.Run("NonMap", func(t *testing.T) {
		res := ctx.Decode(StringNode("a=1", "env"), MapOf(LongType()), "limits")
		require.False(t, res.IsValid())
		assert.Equal(t, `cannot convert string "a=1" to map[string]long`, res.Failures()[0].Detail)
	})
}

// TestOptionalDecoder tests that null and undefined become nil
func TestOptionalDecoder(t *testing.T) {
	ctx := testDecodeContext()
	typ := Optional(LongType())

	res := ctx.Decode(NullNode("config.yaml"), typ, "limit")
	require.True(t, res.IsValid())
	assert.Nil(t, res.Value())

	res = ctx.Decode(UndefinedNode(""), typ, "limit")
	require.True(t, res.IsValid())
	assert.Nil(t, res.Value())

	res = ctx.Decode(LongNode(9, "config.yaml"), typ, "limit")
	require.True(t, res.IsValid())
	assert.Equal(t, int64(9), res.Value())

	res = ctx.Decode(StringNode("old", "config.yaml"), typ, "limit")
	require.False(t, res.IsValid())
	assert.Equal(t, TypeConversion, res.Failures()[0].Kind)
}

// TestObjectDecoder tests field lookup, defaults and failure accumulation
func TestObjectDecoder(t *testing.T) {
	ctx := testDecodeContext()

	t.Run("AllFieldsPresent", func(t *testing.T) {
		person := ObjectOf("Person",
			FieldOf("name", StringType()).WithGoName("Name"),
			FieldOf("age", LongType()).WithGoName("Age"),
		)
		node := MapNode("config.toml",
			Entry("name", StringNode("jane", "config.toml")),
			Entry("age", LongNode(40, "config.toml")),
		)
		res := ctx.Decode(node, person, "")
		require.True(t, res.IsValid())
		assert.Equal(t, map[string]any{"Name": "jane", "Age": int64(40)}, res.Value())
	})

	t.Run("AccumulatesAcrossFields", func(t *testing.T) {
		person := ObjectOf("Person",
			FieldOf("name", StringType()),
			FieldOf("age", LongType()),
		)
		node := MapNode("config.toml",
			Entry("name", LongNode(42, "config.toml")),
			Entry("age", StringNode("old", "config.toml")),
		)
		res := ctx.Decode(node, person, "")
		require.False(t, res.IsValid())
		failures := res.Failures()
		require.Len(t, failures, 2)
		assert.Equal(t, "name", failures[0].Path)
		assert.Equal(t, "cannot convert long 42 to string", failures[0].Detail)
		assert.Equal(t, "age", failures[1].Path)
		assert.Equal(t, `cannot convert string "old" to long`, failures[1].Detail)
	})

	t.Run("DefaultFillsAbsent", func(t *testing.T) {
		obj := ObjectOf("Client",
			FieldOf("retries", LongType()).WithDefault(StringNode("3", "default")),
		)
		res := ctx.Decode(MapNode("config.toml"), obj, "")
		require.True(t, res.IsValid())
		assert.Equal(t, map[string]any{"retries": int64(3)}, res.Value())
	})

	t.Run("PresentValueBeatsDefault", func(t *testing.T) {
		obj := ObjectOf("Client",
			FieldOf("retries", LongType()).WithDefault(StringNode("3", "default")),
		)
		node := MapNode("config.toml", Entry("retries", LongNode(7, "config.toml")))
		res := ctx.Decode(node, obj, "")
		require.True(t, res.IsValid())
		assert.Equal(t, map[string]any{"retries": int64(7)}, res.Value())
	})

	t.Run("BadDefaultReportsFieldPath", func(t *testing.T) {
		obj := ObjectOf("Client",
			FieldOf("retries", LongType()).WithDefault(StringNode("many", "default")),
		)
		res := ctx.Decode(MapNode("config.toml"), obj, "client")
		require.False(t, res.IsValid())
		f := res.Failures()[0]
		assert.Equal(t, "client.retries", f.Path)
		assert.Equal(t, "default", f.Origin)
	})

	t.Run("OptionalAbsentIsNil", func(t *testing.T) {
		obj := ObjectOf("Server",
			FieldOf("motd", Optional(StringType())).WithGoName("Motd"),
		)
		res := ctx.Decode(MapNode("config.toml"), obj, "")
		require.True(t, res.IsValid())
		assert.Equal(t, map[string]any{"Motd": nil}, res.Value())
	})

	t.Run("RequiredAbsentFails", func(t *testing.T) {
		obj := ObjectOf("Server", FieldOf("host", StringType()))
		res := ctx.Decode(MapNode("config.toml"), obj, "server")
		require.False(t, res.IsValid())
		f := res.Failures()[0]
		assert.Equal(t, UnknownPropertyPath, f.Kind)
		assert.Equal(t, "server.host", f.Path)
		assert.Equal(t, "missing value for required field; tried keys: host, HOST", f.Detail)
	})

	t.Run("MapperCandidatesMatch", func(t *testing.T) {
		obj := ObjectOf("Server",
			FieldOf("ListenAddr", StringType()).WithGoName("ListenAddr"),
		)
		for _, key := range []string{"ListenAddr", "listen_addr", "listen-addr", "LISTEN_ADDR"} {
			node := MapNode("config.toml", Entry(key, StringNode(":8080", "config.toml")))
			res := ctx.Decode(node, obj, "")
			require.True(t, res.IsValid(), "key %s", key)
			assert.Equal(t, map[string]any{"ListenAddr": ":8080"}, res.Value())
		}
	})

	t.Run("UndefinedDecodesLikeEmptyMap", func(t *testing.T) {
		obj := ObjectOf("Client",
			FieldOf("retries", LongType()).WithDefault(StringNode("3", "default")),
			FieldOf("motd", Optional(StringType())),
		)
		res := ctx.Decode(UndefinedNode(""), obj, "")
		require.True(t, res.IsValid())
		assert.Equal(t, map[string]any{"retries": int64(3), "motd": nil}, res.Value())
	})

	t.Run("UndefinedChildCountsAsAbsent", func(t *testing.T) {
		obj := ObjectOf("Client",
			FieldOf("retries", LongType()).WithDefault(StringNode("3", "default")),
		)
		node := MapNode("config.toml", Entry("retries", UndefinedNode("")))
		res := ctx.Decode(node, obj, "")
		require.True(t, res.IsValid())
		assert.Equal(t, map[string]any{"retries": int64(3)}, res.Value())
	})

	t.Run("NonMapFails", func(t *testing.T) {
		obj := ObjectOf("Server", FieldOf("host", StringType()))
		res := ctx.Decode(StringNode("localhost", "env"), obj, "server")
		require.False(t, res.IsValid())
		assert.Equal(t, `cannot convert string "localhost" to Server`, res.Failures()[0].Detail)
	})

	t.Run("NestedObjectPaths", func(t *testing.T) {
		tls := ObjectOf("TLS", FieldOf("cert", StringType()))
		server := ObjectOf("Server", FieldOf("tls", tls).WithGoName("TLS"))
		node := MapNode("config.toml",
			Entry("tls", MapNode("config.toml",
				Entry("cert", LongNode(1, "config.toml")),
			)),
		)
		res := ctx.Decode(node, server, "server")
		require.False(t, res.IsValid())
		assert.Equal(t, "server.tls.cert", res.Failures()[0].Path)
	})
}

// TestNoDecoderFound tests the failure when a registry has no match
func TestNoDecoderFound(t *testing.T) {
	ctx := DecodeContext{registry: &DecoderRegistry{}, mappers: defaultMappers()}

	res := ctx.Decode(StringNode("x", "env"), StringType(), "name")
	require.False(t, res.IsValid())
	f := res.Failures()[0]
	assert.Equal(t, NoDecoderFound, f.Kind)
	assert.Equal(t, "name", f.Path)
	assert.Equal(t, "no decoder supports type string", f.Detail)
}

// prefixDecoder is a custom string decoder used by the priority test.
type prefixDecoder struct{}

func (prefixDecoder) Supports(t Type) bool { return t.Kind() == TypeString }

func (prefixDecoder) Decode(node Node, _ Type, _ DecodeContext, path string) Result[any] {
	if node.Kind() != KindString {
		return Invalid[any](conversionFailure(node, path, "string"))
	}
	return Valid[any]("custom:" + node.StringVal())
}

// TestCustomDecoderPriority tests that custom decoders shadow built-ins
// and are consulted by composite decoders for nested values
func TestCustomDecoderPriority(t *testing.T) {
	ctx := testDecodeContext(prefixDecoder{})

	res := ctx.Decode(StringNode("x", "env"), StringType(), "name")
	require.True(t, res.IsValid())
	assert.Equal(t, "custom:x", res.Value())

	node := ListNode("config.toml",
		StringNode("a", "config.toml"),
		StringNode("b", "config.toml"),
	)
	res = ctx.Decode(node, ListOf(StringType()), "tags")
	require.True(t, res.IsValid())
	assert.Equal(t, []any{"custom:a", "custom:b"}, res.Value())
}
