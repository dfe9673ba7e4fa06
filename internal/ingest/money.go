package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

var currencyMarker = regexp.MustCompile(`R\$\s*`)

// ParseCurrency converts Brazilian-formatted money text ("R$ 1.234,56") to a
// float. Malformed or empty text yields 0, never an error: bad cells are data
// noise, not a reason to abort a run.
func ParseCurrency(value string) float64 {
	if strings.TrimSpace(value) == "" {
		return 0
	}
	cleaned := currencyMarker.ReplaceAllString(value, "")
	// Comma means BR decimal format: drop thousands dots, comma becomes the
	// decimal point. Without a comma the text is already dot-decimal and must
	// pass through untouched.
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return 0
	}
	return f
}

// ParsePercent converts "150%" or "12,5%" to a bare number (150, 12.5).
// Same zero-on-failure contract as ParseCurrency.
func ParsePercent(value string) float64 {
	if strings.TrimSpace(value) == "" {
		return 0
	}
	cleaned := strings.ReplaceAll(value, "%", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	f, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return 0
	}
	return f
}
