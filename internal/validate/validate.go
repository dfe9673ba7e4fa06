package validate

import (
	"strconv"
	"strings"
)

// ID parses a positive integer resource id (product/category/brand keys).
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Name validates a name filter: trims and bounds the length so LIKE queries
// stay cheap.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 100 {
		s = s[:100]
	}
	return s, true
}
