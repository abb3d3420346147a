// Package isbn validates ISBN-10, ISBN-13 and ISSN identifiers
// locally, so malformed lookups never reach the catalog API.
package isbn

import (
	"regexp"
	"strings"
)

var candidateRe = regexp.MustCompile(`[0-9][0-9Xx\- ]*[0-9Xx]|[0-9]`)

// Normalize strips hyphens and spaces and upper-cases the check digit.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ToUpper(s)
}

// Extract returns the first digit-bearing token in the text and
// whether one was found. Within an ISBN-intent message any digits are
// taken as an identifier attempt, so short junk like "12X" is still
// extracted and then rejected by IsValid rather than silently ignored.
// The token is normalized but NOT validated.
func Extract(text string) (string, bool) {
	m := candidateRe.FindString(text)
	if m == "" {
		return "", false
	}
	return Normalize(m), true
}

// IsValid reports whether the normalized identifier is a well-formed
// ISBN-10, ISBN-13 or ISSN, including its checksum.
func IsValid(s string) bool {
	s = Normalize(s)
	switch len(s) {
	case 8:
		return validISSN(s)
	case 10:
		return validISBN10(s)
	case 13:
		return validISBN13(s)
	default:
		return false
	}
}

func validISBN10(s string) bool {
	sum := 0
	for i, r := range s {
		var v int
		switch {
		case r >= '0' && r <= '9':
			v = int(r - '0')
		case r == 'X' && i == 9:
			v = 10
		default:
			return false
		}
		sum += v * (10 - i)
	}
	return sum%11 == 0
}

func validISBN13(s string) bool {
	sum := 0
	for i, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		v := int(r - '0')
		if i%2 == 1 {
			v *= 3
		}
		sum += v
	}
	return sum%10 == 0
}

func validISSN(s string) bool {
	sum := 0
	for i, r := range s {
		var v int
		switch {
		case r >= '0' && r <= '9':
			v = int(r - '0')
		case r == 'X' && i == 7:
			v = 10
		default:
			return false
		}
		sum += v * (8 - i)
	}
	return sum%11 == 0
}
