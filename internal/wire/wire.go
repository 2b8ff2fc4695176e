// Package wire is the single normalization boundary between the snake_case
// API payload convention and the camelCase convention used internally. Key
// transformation is recursive over objects and arrays, preserves array order
// and leaves primitives and separator-free keys untouched.
package wire

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// ToInternal converts every object key in a decoded JSON value from
// snake_case to camelCase. Idempotent for already-internal input.
func ToInternal(v any) any {
	return mapKeys(v, camelKey)
}

// ToWire converts every object key in a decoded JSON value from camelCase to
// snake_case. Inverse of ToInternal for values with a consistent convention.
func ToWire(v any) any {
	return mapKeys(v, snakeKey)
}

// DecodeInternal unmarshals a wire payload, normalizes its keys to the
// internal convention and decodes the result into out.
func DecodeInternal(data []byte, out any) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	normalized, err := json.Marshal(ToInternal(raw))
	if err != nil {
		return fmt.Errorf("remarshal payload: %w", err)
	}
	if err := json.Unmarshal(normalized, out); err != nil {
		return fmt.Errorf("decode normalized payload: %w", err)
	}
	return nil
}

// EncodeWire marshals v and converts its keys to the wire convention.
func EncodeWire(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("reparse payload: %w", err)
	}
	out, err := json.Marshal(ToWire(raw))
	if err != nil {
		return nil, fmt.Errorf("encode wire payload: %w", err)
	}
	return out, nil
}

func mapKeys(v any, transform func(string) string) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[transform(k)] = mapKeys(item, transform)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = mapKeys(item, transform)
		}
		return out
	default:
		return v
	}
}

// camelKey converts snake_case to camelCase. Keys without underscores pass
// through unchanged.
func camelKey(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.Grow(len(s))
	wrote := false
	for _, p := range parts {
		if p == "" {
			continue
		}
		if !wrote {
			b.WriteString(p)
			wrote = true
			continue
		}
		r := []rune(p)
		b.WriteRune(unicode.ToUpper(r[0]))
		b.WriteString(string(r[1:]))
	}
	if !wrote {
		return s
	}
	return b.String()
}

// snakeKey converts camelCase to snake_case. Keys without upper-case runes
// pass through unchanged.
func snakeKey(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
