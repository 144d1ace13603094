// File: hoplite/failure.go
package hoplite

import (
	"fmt"
	"strings"
)

// FailureKind classifies a configuration failure. Reporting code can
// group or filter on the kind without parsing message text.
type FailureKind uint8

const (
	// TypeConversion: a node's shape cannot produce the requested type,
	// e.g. a string "old" where a long is needed.
	TypeConversion FailureKind = iota
	// InvalidEnumConstant: a value matched none of an enum's constants.
	InvalidEnumConstant
	// UnknownPropertyPath: a required field had no value in any source
	// and no default.
	UnknownPropertyPath
	// ParserNotFound: no parser is registered for a file extension.
	ParserNotFound
	// ResourceNotFound: a named file or resource could not be read.
	ResourceNotFound
	// ParseFailure: a parser rejected the bytes it was given.
	ParseFailure
	// NoDecoderFound: no registered decoder supports a target type.
	NoDecoderFound
)

// String returns the kind's display name.
func (k FailureKind) String() string {
	switch k {
	case TypeConversion:
		return "type conversion"
	case InvalidEnumConstant:
		return "invalid enum constant"
	case UnknownPropertyPath:
		return "unknown property path"
	case ParserNotFound:
		return "parser not found"
	case ResourceNotFound:
		return "resource not found"
	case ParseFailure:
		return "parse failure"
	case NoDecoderFound:
		return "no decoder found"
	default:
		return "failure"
	}
}

// Failure is one config error: what went wrong (Kind), where in the
// target structure (Path, dotted with [i] indexes, "" at the root),
// which source produced the offending value (Origin, "" when no source
// is involved), and a human-readable Detail.
type Failure struct {
	Kind   FailureKind
	Path   string
	Origin string
	Detail string
}

// Error renders the failure as a single line:
//
//	server.port: cannot convert string "old" to long (from config.toml)
func (f Failure) Error() string {
	var sb strings.Builder
	if f.Path != "" {
		sb.WriteString(f.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(f.Detail)
	if f.Origin != "" {
		sb.WriteString(" (from ")
		sb.WriteString(f.Origin)
		sb.WriteByte(')')
	}
	return sb.String()
}

// LoadError aggregates every failure found during a load. Failures
// keep encounter order so the report reads in document order.
type LoadError struct {
	Failures []Failure
}

// Error renders a multi-line report, one failure per line.
func (e *LoadError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid configuration (%d %s):", len(e.Failures), plural(len(e.Failures), "error"))
	for _, f := range e.Failures {
		sb.WriteString("\n  - ")
		sb.WriteString(f.Error())
	}
	return sb.String()
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
