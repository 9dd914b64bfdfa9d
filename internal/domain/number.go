package domain

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseNumber coerces a raw line to a number, returning 0 for anything that
// is not one. Surrounding whitespace (including a trailing '\r' and a byte
// order mark) is ignored.
func ParseNumber(line string) float64 {
	s := trimLine(line)
	if s == "" {
		return 0
	}

	if v, ok := parseRadixInt(s); ok {
		return v
	}
	if !isDecimal(s) {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// trimLine strips whitespace and byte order marks from both ends of s
func trimLine(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// parseRadixInt handles 0x, 0o and 0b prefixed integers (unsigned only)
func parseRadixInt(s string) (float64, bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, false
	}

	var base int
	switch s[1] {
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	default:
		return 0, false
	}

	n, err := strconv.ParseUint(s[2:], base, 64)
	if err != nil {
		return 0, true
	}
	return float64(n), true
}

// isDecimal rejects the Go literal forms ParseFloat accepts beyond plain
// decimals: digit separators and signed or fractional hex.
func isDecimal(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	body := strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	if len(body) > 1 && body[0] == '0' && strings.ContainsRune("xXoObB", rune(body[1])) {
		return false
	}
	return true
}
