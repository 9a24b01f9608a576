package core

// Secret wraps a sensitive string value, such as an API key, and
// shields it from accidental logging or serialization. String(),
// GoString(), and the JSON and text marshalers all emit a redacted
// placeholder; the real value is only reachable through Expose().
//
// Example:
//
//	key := NewSecret("AIzaSyExample")
//	fmt.Println(key)         // prints: [REDACTED]
//	fmt.Printf("%#v", key)   // prints: core.Secret{[REDACTED]}
//	key.Expose()             // returns: "AIzaSyExample"
type Secret struct {
	value string
}

// NewSecret creates a new Secret from a string value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Expose returns the actual secret value. Call it only at the point of
// use, such as building a request URL, and never log the result.
func (s Secret) Expose() string {
	return s.value
}

// IsEmpty reports whether the secret holds no value.
func (s Secret) IsEmpty() bool {
	return s.value == ""
}

// String returns a redacted placeholder.
// Implements fmt.Stringer.
func (s Secret) String() string {
	return "[REDACTED]"
}

// GoString returns a redacted placeholder for %#v formatting.
// Implements fmt.GoStringer.
func (s Secret) GoString() string {
	return "core.Secret{[REDACTED]}"
}

// MarshalJSON returns a redacted JSON string in place of the value.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"[REDACTED]"`), nil
}

// MarshalText returns a redacted text representation, covering YAML
// and other text-based encoders.
// Implements encoding.TextMarshaler.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte("[REDACTED]"), nil
}
