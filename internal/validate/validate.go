// Package validate checks single values against small sets of optional
// constraints. It backs the intake form and the check command.
//
// Rules combine with AND semantics: every applicable constraint must
// hold. Constraints that do not apply to the value's runtime type are
// skipped silently, never reported as errors. Checking has no side
// effects and cannot fail.
package validate

import (
	"fmt"
	"strings"
)

// Rules is an unordered set of optional constraints evaluated against
// one value. The zero value accepts everything.
type Rules struct {
	// Required passes when the trimmed string form of the value is
	// non-empty. Numbers are formatted first, so 0 passes required and
	// must be caught by Min instead.
	Required bool

	// MinLength and MaxLength bound the raw string length. They apply
	// only when the value is a string.
	MinLength *int
	MaxLength *int

	// Min and Max are inclusive numeric bounds. They apply only when
	// the value is a number.
	Min *float64
	Max *float64
}

// Check reports whether value satisfies every applicable rule.
func Check(value any, rules Rules) bool {
	if rules.Required {
		if len(strings.TrimSpace(stringify(value))) == 0 {
			return false
		}
	}

	if s, ok := value.(string); ok {
		if rules.MinLength != nil && len(s) < *rules.MinLength {
			return false
		}
		if rules.MaxLength != nil && len(s) > *rules.MaxLength {
			return false
		}
	}

	if n, ok := numeric(value); ok {
		if rules.Min != nil && n < *rules.Min {
			return false
		}
		if rules.Max != nil && n > *rules.Max {
			return false
		}
	}

	return true
}

// Ptr returns a pointer to v. Convenient for rule literals.
func Ptr[T any](v T) *T { return &v }

func stringify(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// numeric widens the numeric types produced by the form and the CLI.
func numeric(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
