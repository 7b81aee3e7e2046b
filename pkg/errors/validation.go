package errors

import (
	"math"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ValidateFinite rejects NaN and infinite values. Every finite value is
// accepted, including negative or otherwise degenerate ones.
func ValidateFinite(field string, v float64) error {
	if math.IsNaN(v) {
		return New(ErrCodeInvalidInput, "%s is NaN", field)
	}
	if math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s is infinite", field)
	}
	return nil
}

// ValidateHexColor checks that s is a "#rrggbb" colour.
func ValidateHexColor(s string) error {
	if s == "" {
		return New(ErrCodeInvalidInput, "color cannot be empty")
	}
	if !strings.HasPrefix(s, "#") {
		return New(ErrCodeInvalidInput, "color %q must start with #", s)
	}
	if _, err := colorful.Hex(s); err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid color %q", s)
	}
	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed map[string]bool) error {
	if allowed[format] {
		return nil
	}
	names := make([]string, 0, len(allowed))
	for name := range allowed {
		names = append(names, name)
	}
	slices.Sort(names)
	return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(names, ", "))
}
