package catalog

import (
	"strconv"
	"strings"
)

// Coerce parses a raw column value as a decimal number. Blank and malformed
// values report false instead of an error so callers can filter them out the
// way the tools expect.
func Coerce(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatNumber renders a coerced value without a fixed precision, matching
// how prices and ratings are echoed back in tool answers.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
