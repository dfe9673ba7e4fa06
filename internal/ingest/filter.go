package ingest

import (
	"strings"
	"unicode"
)

// Variant selects between the two vendor-export layouts. The full layout has
// a reliable id column; the simplified one does not and instead leans on the
// price column and known header prefixes to spot non-product rows.
type Variant string

const (
	VariantFull   Variant = "full"
	VariantSimple Variant = "simple"
)

// Section headers the simplified export interleaves with product rows.
var headerPrefixes = []string{"PRODUTOS", "COMEDOURO /", "CAIXAS"}

// Accept reports whether a raw row is a real product row. Header rows,
// blank separators, and malformed lines are rejected.
func (v Variant) Accept(row RawRow) bool {
	desc := strings.TrimSpace(row["description"])
	if desc == "" {
		return false
	}
	// Section headers carry no lower-case letters.
	if isUpperHeader(desc) {
		return false
	}
	switch v {
	case VariantSimple:
		if strings.TrimSpace(row["unit_price"]) == "" {
			return false
		}
		for _, p := range headerPrefixes {
			if strings.HasPrefix(desc, p) {
				return false
			}
		}
	default:
		if strings.TrimSpace(row["id"]) == "" {
			return false
		}
	}
	return true
}

// isUpperHeader reports whether s has at least one cased letter and none of
// them is lower-case.
func isUpperHeader(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
