// File: hoplite/typedesc.go
package hoplite

import "strings"

// TypeKind enumerates the target shapes the decode walk understands.
type TypeKind uint8

const (
	TypeString TypeKind = iota
	TypeBool
	TypeLong
	TypeDouble
	TypeDuration
	TypeTime
	TypeIP
	TypeURL
	TypeSecret
	TypeEnum
	TypeList
	TypeMap
	TypeObject
	TypeOptional
)

// Type describes a decode target ahead of time: what shape it is, and
// for containers and objects, what it contains. Decoders dispatch on
// these descriptions instead of inspecting Go types mid-walk; the only
// reflection in the package happens once, in describeType, before
// decoding starts.
//
// Types are immutable values built with the *Of constructors or
// derived from a struct by describeType.
type Type struct {
	kind      TypeKind
	name      string
	constants []string
	elem      *Type
	fields    []Field
}

// Kind reports the target shape.
func (t Type) Kind() TypeKind { return t.kind }

// Name returns the display name used in failure messages, e.g.
// "string", "Color" or "[]long".
func (t Type) Name() string { return t.name }

// String implements fmt.Stringer.
func (t Type) String() string { return t.name }

// Elem returns the element type of a list, the value type of a map,
// or the inner type of an optional.
func (t Type) Elem() Type {
	if t.elem == nil {
		return Type{}
	}
	return *t.elem
}

// Fields returns an object's fields in declaration order. The
// returned slice must not be modified.
func (t Type) Fields() []Field { return t.fields }

// Constants returns an enum's permitted constants in declaration
// order. The returned slice must not be modified.
func (t Type) Constants() []string { return t.constants }

// StringType describes a plain string target.
func StringType() Type { return Type{kind: TypeString, name: "string"} }

// BoolType describes a boolean target.
func BoolType() Type { return Type{kind: TypeBool, name: "bool"} }

// LongType describes a 64-bit integer target.
func LongType() Type { return Type{kind: TypeLong, name: "long"} }

// DoubleType describes a floating-point target.
func DoubleType() Type { return Type{kind: TypeDouble, name: "double"} }

// DurationType describes a time.Duration target parsed from strings
// like "1500ms".
func DurationType() Type { return Type{kind: TypeDuration, name: "duration"} }

// TimeType describes a time.Time target parsed from RFC 3339 strings.
func TimeType() Type { return Type{kind: TypeTime, name: "time"} }

// IPType describes a net.IP target.
func IPType() Type { return Type{kind: TypeIP, name: "IP address"} }

// URLType describes a *url.URL target.
func URLType() Type { return Type{kind: TypeURL, name: "URL"} }

// SecretType describes a Secret target, a string masked when printed.
func SecretType() Type { return Type{kind: TypeSecret, name: "secret"} }

// EnumOf describes a closed set of string constants. Matching is
// exact and case-sensitive.
func EnumOf(name string, constants ...string) Type {
	return Type{kind: TypeEnum, name: name, constants: constants}
}

// ListOf describes a slice of elem.
func ListOf(elem Type) Type {
	return Type{kind: TypeList, name: "[]" + elem.name, elem: &elem}
}

// MapOf describes a string-keyed map of value.
func MapOf(value Type) Type {
	return Type{kind: TypeMap, name: "map[string]" + value.name, elem: &value}
}

// Optional describes a value that may be absent. Absent and null
// decode to nil instead of failing.
func Optional(inner Type) Type {
	return Type{kind: TypeOptional, name: "*" + inner.name, elem: &inner}
}

// ObjectOf describes a struct-like target with named fields.
func ObjectOf(name string, fields ...Field) Type {
	return Type{kind: TypeObject, name: name, fields: fields}
}

// Field is one named slot of an object type: the lookup name used
// against the node tree, the Go field name used when materializing,
// the field's own type, and an optional default node decoded when no
// source provides a value.
type Field struct {
	name   string
	goName string
	typ    Type
	def    *Node
}

// FieldOf declares an object field. The lookup name doubles as the
// materialization key until WithGoName overrides it.
func FieldOf(name string, t Type) Field {
	return Field{name: name, goName: name, typ: t}
}

// WithDefault returns a copy carrying a default node. The default is
// decoded through the same decoder as a real value, so a bad default
// fails with the same precision.
func (f Field) WithDefault(n Node) Field {
	f.def = &n
	return f
}

// WithGoName returns a copy whose materialized key is goName.
func (f Field) WithGoName(goName string) Field {
	f.goName = goName
	return f
}

// Name returns the lookup name.
func (f Field) Name() string { return f.name }

// GoName returns the materialization key.
func (f Field) GoName() string { return f.goName }

// Type returns the field's type description.
func (f Field) Type() Type { return f.typ }

// Default returns the default node when one is declared.
func (f Field) Default() (Node, bool) {
	if f.def == nil {
		return Node{}, false
	}
	return *f.def, true
}

// describeConstants renders an enum's constants for failure messages.
func describeConstants(constants []string) string {
	return strings.Join(constants, ", ")
}
