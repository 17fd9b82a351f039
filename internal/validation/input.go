// Package validation provides input validation utilities
package validation

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether email looks like local@domain.tld.
// Only the shape is checked: no whitespace, exactly one @ and a dot in the
// domain part.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsFalsy reports whether a decoded JSON value counts as absent: missing,
// null, false, zero or the empty string.
func IsFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case float64:
		return x == 0 || math.IsNaN(x)
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	default:
		return false
	}
}

// Text returns the string form of a scalar JSON value. Strings are returned
// as is and numbers in their shortest decimal form. Any other value yields
// ok == false.
func Text(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case json.Number:
		return x.String(), true
	default:
		return "", false
	}
}

// LooseID converts a JSON number or numeric string into a row id.
// Values that do not name a positive whole number yield 0, which never
// matches a stored row.
func LooseID(v any) uint {
	switch x := v.(type) {
	case float64:
		return idFromFloat(x)
	case json.Number:
		return ParseLooseID(x.String())
	case string:
		return ParseLooseID(x)
	default:
		return 0
	}
}

// ParseLooseID parses a path or body id such as "42", " 42 " or "42.0".
func ParseLooseID(s string) uint {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return uint(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return idFromFloat(f)
}

func idFromFloat(f float64) uint {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 || f != math.Trunc(f) || f > math.MaxUint32 {
		return 0
	}
	return uint(f)
}
