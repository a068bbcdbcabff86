// Package phone normalizes destination numbers into E.164-like form.
package phone

import "strings"

// Normalize strips all whitespace from raw and ensures an international
// prefix: a leading "+" passes through unchanged, a leading "0" is replaced
// by countryCode, and anything else gets countryCode prepended verbatim.
// No plausibility check is made on the result; in particular a number that
// already carries a country code without "+" has countryCode prepended
// anyway ("353871234567" becomes "+353353871234567").
func Normalize(raw, countryCode string) string {
	stripped := strings.Join(strings.Fields(raw), "")

	switch {
	case strings.HasPrefix(stripped, "+"):
		return stripped
	case strings.HasPrefix(stripped, "0"):
		return countryCode + stripped[1:]
	default:
		return countryCode + stripped
	}
}
