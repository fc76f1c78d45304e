// Package phone canonicalizes Ugandan phone numbers into the
// international dialing format the MarzPay API expects.
package phone

import "strings"

// CountryPrefix is the Ugandan international dialing prefix.
const CountryPrefix = "256"

// Normalize strips every non-digit character and prefixes the national
// dialing code: "0759983853" and "+256 759 983-853" both become
// "256759983853". The result always starts with "256"; no length check
// is performed here, the remote API is authoritative for acceptance.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case strings.HasPrefix(digits, CountryPrefix):
		return digits
	case strings.HasPrefix(digits, "0"):
		return CountryPrefix + digits[1:]
	default:
		return CountryPrefix + digits
	}
}
