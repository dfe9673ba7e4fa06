package ingest

import (
	"fmt"
	"io"
	"sort"
)

// priceBands are reported in this declared order.
var priceBands = []struct {
	label string
	upper float64 // exclusive; <0 means unbounded
}{
	{"0-10", 10},
	{"10-25", 25},
	{"25-50", 50},
	{"50+", -1},
}

type Summary struct {
	Total      int
	Categories map[string]int
	Brands     map[string]int
	Bands      map[string]int
}

// Summarize tallies the emitted records by category, brand, and price band
// for operator review.
func Summarize(records []ProductRecord) Summary {
	s := Summary{
		Categories: map[string]int{},
		Brands:     map[string]int{},
		Bands:      map[string]int{},
	}
	for _, r := range records {
		s.Total++
		s.Categories[r.Category]++
		s.Brands[r.Brand]++
		s.Bands[bandFor(r.Price)]++
	}
	return s
}

func bandFor(price float64) string {
	for _, b := range priceBands {
		if b.upper < 0 || price < b.upper {
			return b.label
		}
	}
	return priceBands[len(priceBands)-1].label
}

// Write prints the summary in a fixed layout: categories and brands in
// lexicographic order, price bands in declared order. Brand counts only
// exist in the full variant.
func (s Summary) Write(w io.Writer, variant Variant) {
	fmt.Fprintf(w, "Total de produtos: %d\n", s.Total)

	fmt.Fprintln(w, "\nCategorias:")
	for _, k := range sortedKeys(s.Categories) {
		fmt.Fprintf(w, "  %s: %d\n", k, s.Categories[k])
	}

	if variant == VariantFull {
		fmt.Fprintln(w, "\nMarcas:")
		for _, k := range sortedKeys(s.Brands) {
			fmt.Fprintf(w, "  %s: %d\n", k, s.Brands[k])
		}
	}

	fmt.Fprintln(w, "\nFaixas de preço:")
	for _, b := range priceBands {
		fmt.Fprintf(w, "  R$ %s: %d\n", b.label, s.Bands[b.label])
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
