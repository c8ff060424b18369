// Package validate turns raw, untyped payloads into typed, constrained values
// or a per-field error map. Schemas are data: a list of field rules evaluated
// uniformly by one engine, so every violation is collected before returning.
package validate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Errors maps field name to its violation messages. A nil or empty map means
// the payload is valid.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Any() bool {
	return len(e) > 0
}

// Constraint inspects one present field value and returns a violation message,
// or "" when the value passes.
type Constraint func(value any) string

// Field declares the rules for one payload key.
type Field struct {
	Name        string
	Required    bool
	Constraints []Constraint
}

// CrossCheck runs after all field rules with the full payload in view.
type CrossCheck func(raw map[string]any, errs Errors)

// Schema is an ordered set of field rules plus cross-field checks.
type Schema struct {
	Fields      []Field
	CrossChecks []CrossCheck
}

// Validate evaluates every rule against raw. Keys not declared in the schema
// are ignored.
func (s Schema) Validate(raw map[string]any) Errors {
	errs := Errors{}
	for _, f := range s.Fields {
		v, ok := raw[f.Name]
		if !ok {
			if f.Required {
				errs.Add(f.Name, "this field is required")
			}
			continue
		}
		for _, check := range f.Constraints {
			if msg := check(v); msg != "" {
				errs.Add(f.Name, msg)
			}
		}
	}
	for _, check := range s.CrossChecks {
		check(raw, errs)
	}
	return errs
}

// StringLength requires a string value of min..max runes.
func StringLength(min, max int) Constraint {
	return func(v any) string {
		s, ok := v.(string)
		if !ok {
			return "must be a string"
		}
		n := utf8.RuneCountInString(s)
		if n < min || n > max {
			return fmt.Sprintf("must be between %d and %d characters", min, max)
		}
		return ""
	}
}

// Boolean requires a JSON boolean.
func Boolean() Constraint {
	return func(v any) string {
		if _, ok := v.(bool); !ok {
			return "must be a boolean"
		}
		return ""
	}
}

// NullableInt accepts null or an integral JSON number.
func NullableInt() Constraint {
	return func(v any) string {
		if v == nil {
			return ""
		}
		f, ok := v.(float64)
		if !ok || f != float64(int(f)) {
			return "must be an integer or null"
		}
		return ""
	}
}

// NormalizeText trims surrounding whitespace and uppercases the first rune,
// preserving the case of the remainder. Applied exactly once, before any
// length or charset rule runs.
func NormalizeText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
