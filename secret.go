// File: hoplite/secret.go
package hoplite

// Secret is a string that masks itself when printed, logged or
// JSON-encoded, so passwords and API keys do not leak through debug
// output. Use Reveal to read the actual value at the point of use.
type Secret string

const secretMask = "*****"

// String implements fmt.Stringer with a fixed mask.
func (Secret) String() string { return secretMask }

// GoString masks %#v output as well.
func (Secret) GoString() string { return `hoplite.Secret("` + secretMask + `")` }

// MarshalText masks the value in any text-based encoding.
func (Secret) MarshalText() ([]byte, error) { return []byte(secretMask), nil }

// Reveal returns the underlying value.
func (s Secret) Reveal() string { return string(s) }
