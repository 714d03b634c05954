// Package validation holds request parameter validation. Parameters are
// rejected at the HTTP boundary; core logic never sees an invalid value.
package validation

import "strconv"

// Hint bounds for the daily endpoint.
const (
	HintMin = 0
	HintMax = 4
)

// ParseHint parses the hint query parameter. An absent parameter means
// level 0. Non-integer or out-of-range values are invalid.
func ParseHint(raw string) (int, bool) {
	if raw == "" {
		return HintMin, true
	}
	hint, err := strconv.Atoi(raw)
	if err != nil || hint < HintMin || hint > HintMax {
		return 0, false
	}
	return hint, true
}

// ValidateCode checks that a path parameter is exactly three ASCII
// digits, the canonical form of every code in the hierarchy.
func ValidateCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
