// File: hoplite/result.go
package hoplite

// Result is the two-state outcome of any load or decode step: either a
// value, or one or more failures. There is no third state and no
// partially-valid value.
//
// Two composition disciplines apply and stay textually distinct at
// every call site:
//
//   - dependent steps (the next step needs the previous value) chain
//     with Map/FlatMap and short-circuit on the first invalid result;
//   - independent steps (sibling fields, sibling sources) combine with
//     Sequence/Combine and accumulate every failure, so one bad field
//     never hides another.
type Result[A any] struct {
	value    A
	failures []Failure
}

// Valid wraps a successfully produced value.
func Valid[A any](value A) Result[A] {
	return Result[A]{value: value}
}

// Invalid wraps one or more failures. At least one failure is
// required: an invalid result with nothing to report is a bug.
func Invalid[A any](failures ...Failure) Result[A] {
	if len(failures) == 0 {
		panic("hoplite: Invalid requires at least one failure")
	}
	return Result[A]{failures: failures}
}

// IsValid reports whether the result holds a value.
func (r Result[A]) IsValid() bool { return len(r.failures) == 0 }

// Value returns the held value, or the zero value when invalid.
func (r Result[A]) Value() A { return r.value }

// Failures returns the accumulated failures in encounter order, nil
// when valid.
func (r Result[A]) Failures() []Failure { return r.failures }

// Err converts the result to the error domain: nil when valid,
// a *LoadError carrying every failure otherwise.
func (r Result[A]) Err() error {
	if r.IsValid() {
		return nil
	}
	return &LoadError{Failures: r.failures}
}

// Map transforms the value of a valid result. Failures pass through
// untouched. Map and FlatMap are package functions rather than methods
// because Go methods cannot introduce new type parameters.
func Map[A, B any](r Result[A], fn func(A) B) Result[B] {
	if !r.IsValid() {
		return Invalid[B](r.failures...)
	}
	return Valid(fn(r.value))
}

// FlatMap chains a dependent step: fn runs only when r is valid, and
// the first invalid result short-circuits the chain.
func FlatMap[A, B any](r Result[A], fn func(A) Result[B]) Result[B] {
	if !r.IsValid() {
		return Invalid[B](r.failures...)
	}
	return fn(r.value)
}

// Sequence combines independent results: valid only when every input
// is valid, otherwise invalid with the union of all failures in input
// order. It never stops at the first failure.
func Sequence[A any](results []Result[A]) Result[[]A] {
	values := make([]A, 0, len(results))
	var failures []Failure
	for _, r := range results {
		if r.IsValid() {
			values = append(values, r.value)
		} else {
			failures = append(failures, r.failures...)
		}
	}
	if len(failures) > 0 {
		return Invalid[[]A](failures...)
	}
	return Valid(values)
}

// Combine merges two independent results with fn, accumulating the
// failures of both when either is invalid.
func Combine[A, B, C any](a Result[A], b Result[B], fn func(A, B) C) Result[C] {
	if a.IsValid() && b.IsValid() {
		return Valid(fn(a.value, b.value))
	}
	failures := make([]Failure, 0, len(a.failures)+len(b.failures))
	failures = append(failures, a.failures...)
	failures = append(failures, b.failures...)
	return Invalid[C](failures...)
}
