// File: hoplite/describe.go
package hoplite

import (
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strings"
	"time"
)

// describe.go is the only reflective code in the package. It runs once
// per Scan target, before any decoding, and turns a Go type into the
// explicit Type description the decode walk consumes. Struct tags:
//
//	Port    int           `config:"port"`          // lookup name
//	Retries int           `config:"retries" default:"3"`
//	Color   string        `config:"color" enum:"RED,GREEN,BLUE"`
//	Skip    string        `config:"-"`              // ignored
//	Debug   *bool                                   // pointer = optional
//
// The tag name defaults to "config" and follows the loader's
// WithTagName setting.

var (
	typeOfDuration = reflect.TypeOf(time.Duration(0))
	typeOfTime     = reflect.TypeOf(time.Time{})
	typeOfIP       = reflect.TypeOf(net.IP(nil))
	typeOfURL      = reflect.TypeOf(url.URL{})
	typeOfSecret   = reflect.TypeOf(Secret(""))
)

// describeType derives the Type description for rt. Special leaf
// types are matched before kinds: time.Duration is an int64 kind and
// net.IP a byte slice, so kind switches alone would misfile them.
func describeType(rt reflect.Type, tagName string) (Type, error) {
	switch rt {
	case typeOfDuration:
		return DurationType(), nil
	case typeOfTime:
		return TimeType(), nil
	case typeOfIP:
		return IPType(), nil
	case typeOfURL:
		return URLType(), nil
	case typeOfSecret:
		return SecretType(), nil
	}

	switch rt.Kind() {
	case reflect.Bool:
		return BoolType(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return LongType(), nil
	case reflect.Float32, reflect.Float64:
		return DoubleType(), nil
	case reflect.String:
		return StringType(), nil
	case reflect.Slice, reflect.Array:
		elem, err := describeType(rt.Elem(), tagName)
		if err != nil {
			return Type{}, err
		}
		return ListOf(elem), nil
	case reflect.Map:
		if rt.Key().Kind() != reflect.String {
			return Type{}, fmt.Errorf("cannot describe %s: map keys must be strings", rt)
		}
		value, err := describeType(rt.Elem(), tagName)
		if err != nil {
			return Type{}, err
		}
		return MapOf(value), nil
	case reflect.Ptr:
		inner, err := describeType(rt.Elem(), tagName)
		if err != nil {
			return Type{}, err
		}
		return Optional(inner), nil
	case reflect.Struct:
		return describeStruct(rt, tagName)
	default:
		return Type{}, fmt.Errorf("cannot describe %s: unsupported kind %s", rt, rt.Kind())
	}
}

// describeStruct builds an object description from a struct type's
// exported fields, in declaration order.
func describeStruct(rt reflect.Type, tagName string) (Type, error) {
	name := rt.Name()
	if name == "" {
		name = "object"
	}
	fields := make([]Field, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		field, skip, err := describeField(sf, tagName)
		if err != nil {
			return Type{}, fmt.Errorf("field %s.%s: %w", name, sf.Name, err)
		}
		if skip {
			continue
		}
		fields = append(fields, field)
	}
	return ObjectOf(name, fields...), nil
}

func describeField(sf reflect.StructField, tagName string) (Field, bool, error) {
	lookup := sf.Name
	if tag, ok := sf.Tag.Lookup(tagName); ok {
		parts := strings.Split(tag, ",")
		if parts[0] == "-" {
			return Field{}, true, nil
		}
		if parts[0] != "" {
			lookup = parts[0]
		}
	}

	ft, err := describeType(sf.Type, tagName)
	if err != nil {
		return Field{}, false, err
	}

	if constants, ok := sf.Tag.Lookup("enum"); ok {
		ft, err = enumOverlay(ft, sf, constants)
		if err != nil {
			return Field{}, false, err
		}
	}

	field := FieldOf(lookup, ft).WithGoName(sf.Name)
	if def, ok := sf.Tag.Lookup("default"); ok {
		field = field.WithDefault(StringNode(def, "default"))
	}
	return field, false, nil
}

// enumOverlay narrows a string-shaped field to the closed constant set
// from its enum tag. Pointers keep their optionality.
func enumOverlay(ft Type, sf reflect.StructField, constants string) (Type, error) {
	split := strings.Split(constants, ",")
	for i := range split {
		split[i] = strings.TrimSpace(split[i])
	}
	enumName := sf.Type.Name()
	if sf.Type.Kind() == reflect.Ptr {
		enumName = sf.Type.Elem().Name()
	}
	if enumName == "" || enumName == "string" {
		enumName = sf.Name
	}
	switch {
	case ft.Kind() == TypeString:
		return EnumOf(enumName, split...), nil
	case ft.Kind() == TypeOptional && ft.Elem().Kind() == TypeString:
		return Optional(EnumOf(enumName, split...)), nil
	default:
		return Type{}, fmt.Errorf("enum tag requires a string field, have %s", ft.Name())
	}
}

// describeTarget validates a Scan destination and describes its
// element type. The destination must be a non-nil pointer.
func describeTarget(target any, tagName string) (Type, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return Type{}, fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}
	return describeType(rv.Type().Elem(), tagName)
}
